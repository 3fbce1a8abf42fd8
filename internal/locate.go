package internal

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	uerror "t0ast.cc/brave-alfred/util/error"
	uio "t0ast.cc/brave-alfred/util/io"
	ulog "t0ast.cc/brave-alfred/util/log"
)

// LocateProfiles returns the profiles found below `home`, sorted by
// name. In private mode only the incognito pseudo profile is returned
// and the file system is not touched.
//
// Any preferences file that cannot be read fails the whole operation.
func LocateProfiles(home string, mode Mode) ([]Profile, error) {
	if mode == ModePrivate {
		return []Profile{IncognitoProfile()}, nil
	}

	supportDir := filepath.Join(home, ApplicationSupportPath)
	supportDirExists, err := uio.DirExists(supportDir)
	if err != nil {
		return nil, uerror.WithStackTrace(err)
	}
	if !supportDirExists {
		ulog.Infof("No Brave application support directory at %s", supportDir)
		return []Profile{}, nil
	}

	dirEntries, err := os.ReadDir(supportDir)
	if err != nil {
		return nil, uerror.WithStackTrace(err)
	}

	// Entries come in lexical order, which decides between profiles of
	// the same name.
	profiles := []Profile{}
	for _, dirEntry := range dirEntries {
		profileDir := filepath.Join(supportDir, dirEntry.Name())
		path := filepath.Join(profileDir, PreferencesFile)
		if strings.Contains(path, systemProfileMarker) {
			ulog.Debugf("Skipping %s", path)
			continue
		}
		isDir, err := uio.DirExists(profileDir)
		if err != nil {
			return nil, uerror.WithStackTrace(err)
		}
		if !isDir {
			continue
		}
		preferencesExists, err := uio.FileExists(path)
		if err != nil {
			return nil, uerror.WithStackTrace(err)
		}
		if !preferencesExists {
			continue
		}
		ulog.Debugf("Found preferences file %s", path)
		profile, err := ReadProfile(path)
		if err != nil {
			return nil, uerror.WithStackTrace(err)
		}
		profiles = append(profiles, profile)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}
