package internal

import (
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	uerror "t0ast.cc/brave-alfred/util/error"
	uio "t0ast.cc/brave-alfred/util/io"
	ulog "t0ast.cc/brave-alfred/util/log"
)

var profilePathRE = regexp.MustCompile(
	"/" + regexp.QuoteMeta(ApplicationSupportPath) +
		"/(Default|Guest Profile|Profile [0-9]+)/" +
		regexp.QuoteMeta(PreferencesFile) + "$",
)

// Profile is a Brave profile as discovered on disk.
type Profile struct {
	Name string
	// DirectorySegment is the profile's directory below the application
	// support path, e.g. "Profile 2". It is empty for the incognito
	// pseudo profile.
	DirectorySegment string
}

// IncognitoProfile returns the pseudo profile used in private mode. It
// has no preferences file.
func IncognitoProfile() Profile {
	return Profile{Name: "Incognito"}
}

// ReadProfile reads the profile whose preferences file is at `path`. A
// missing or non-string "profile.name" yields an empty name. A name that
// is not valid UTF-8 is rejected since it could not be written out
// verbatim.
func ReadProfile(path string) (Profile, error) {
	match := profilePathRE.FindStringSubmatch(filepath.ToSlash(path))
	if match == nil {
		return Profile{}, uerror.StackTracef("%w: %s", ErrInvalidProfilePath, path)
	}

	content, err := uio.ReadAll(path)
	if err != nil {
		return Profile{}, uerror.WithStackTrace(err)
	}
	if !gjson.ValidBytes(content) {
		return Profile{}, uerror.StackTracef("%w: %s is not valid JSON", ErrInvalidPreferences, path)
	}
	preferences := gjson.ParseBytes(content)
	if !preferences.IsObject() {
		return Profile{}, uerror.StackTracef("%w: %s is not a JSON object", ErrInvalidPreferences, path)
	}

	var name string
	if nameResult := preferences.Get("profile.name"); nameResult.Type == gjson.String {
		name = nameResult.Str
	}
	if !utf8.ValidString(name) {
		return Profile{}, uerror.StackTracef("%w: profile name in %s is not valid UTF-8", ErrInvalidPreferences, path)
	}
	if name == "" {
		ulog.Warnf("Profile %s has no name", match[1])
	}

	return Profile{
		Name:             name,
		DirectorySegment: match[1],
	}, nil
}
