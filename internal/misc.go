package internal

import "errors"

const (
	ApplicationSupportPath = "Library/Application Support/BraveSoftware/Brave-Browser"
	PreferencesFile        = "Preferences"

	DefaultExecutable = "/Applications/Brave Browser.app/Contents/MacOS/Brave Browser"
)

const systemProfileMarker = "System Profile"

var (
	ErrInvalidProfilePath = errors.New("Invalid profile path")
	ErrInvalidPreferences = errors.New("Invalid preferences file")
	ErrInvalidMode        = errors.New("Invalid mode")
)
