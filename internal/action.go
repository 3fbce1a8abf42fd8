package internal

import (
	"fmt"
	"strings"

	uerror "t0ast.cc/brave-alfred/util/error"
)

// Mode selects which kind of action is built for each profile.
type Mode string

const (
	ModeLaunch  Mode = "launch"
	ModePrivate Mode = "incognito"
)

// Validate returns ErrInvalidMode for modes other than ModeLaunch and
// ModePrivate.
func (m Mode) Validate() error {
	switch m {
	case ModeLaunch, ModePrivate:
		return nil
	default:
		return invalidModeError(m)
	}
}

func invalidModeError(m Mode) error {
	return uerror.WithExitCode(uerror.ExitCodeUsage,
		uerror.StackTracef("%w %q (expected %q or %q)", ErrInvalidMode, string(m), ModeLaunch, ModePrivate))
}

// Action is one Alfred script filter item.
type Action struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
}

// ActionBuilder turns profiles into actions for one invocation.
type ActionBuilder struct {
	Executable string
	// Param is an optional URL or search term, passed to the browser
	// before any flags.
	Param string
}

// Build returns the action for `profile` in `mode`.
func (b ActionBuilder) Build(profile Profile, mode Mode) (Action, error) {
	switch mode {
	case ModeLaunch:
		return b.launchAction(profile), nil
	case ModePrivate:
		action := b.launchAction(profile)
		action.Subtitle += " in private"
		action.Arg = b.invocation("--incognito")
		return action, nil
	default:
		return Action{}, invalidModeError(mode)
	}
}

// BuildAll builds one action per profile, keeping the order of
// `profiles`. An invalid mode is rejected even if `profiles` is empty.
func (b ActionBuilder) BuildAll(profiles []Profile, mode Mode) ([]Action, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	actions := make([]Action, 0, len(profiles))
	for _, profile := range profiles {
		action, err := b.Build(profile, mode)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func (b ActionBuilder) launchAction(profile Profile) Action {
	return Action{
		Title:    profile.Name,
		Subtitle: fmt.Sprintf("Open Brave Browser as %s", profile.Name),
		Arg:      b.invocation(`--profile-directory="` + profile.DirectorySegment + `"`),
	}
}

func (b ActionBuilder) invocation(flags string) string {
	executable := b.Executable
	if executable == "" {
		executable = DefaultExecutable
	}

	sb := strings.Builder{}
	sb.WriteString(`"` + executable + `" `)
	if b.Param != "" {
		sb.WriteString(`"` + b.Param + `" `)
	}
	sb.WriteString(flags)
	return sb.String()
}
