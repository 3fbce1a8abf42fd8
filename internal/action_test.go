package internal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"t0ast.cc/brave-alfred/internal"
	uerror "t0ast.cc/brave-alfred/util/error"
)

const testExecutable = "/Applications/Brave Browser.app/Contents/MacOS/Brave Browser"

var catWoman = internal.Profile{Name: "Cat Woman", DirectorySegment: "Profile 2"}

func TestBuild(t *testing.T) {
	testCases := []struct {
		desc string

		builder  internal.ActionBuilder
		profile  internal.Profile
		mode     internal.Mode
		expected internal.Action
	}{
		{
			desc: "Launch",

			builder: internal.ActionBuilder{Executable: testExecutable},
			profile: catWoman,
			mode:    internal.ModeLaunch,
			expected: internal.Action{
				Title:    "Cat Woman",
				Subtitle: "Open Brave Browser as Cat Woman",
				Arg:      `"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser" --profile-directory="Profile 2"`,
			},
		},
		{
			desc: "Launch with param",

			builder: internal.ActionBuilder{Executable: testExecutable, Param: "https://example.com"},
			profile: catWoman,
			mode:    internal.ModeLaunch,
			expected: internal.Action{
				Title:    "Cat Woman",
				Subtitle: "Open Brave Browser as Cat Woman",
				Arg:      `"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser" "https://example.com" --profile-directory="Profile 2"`,
			},
		},
		{
			desc: "Launch with default executable",

			builder: internal.ActionBuilder{},
			profile: internal.Profile{Name: "Person 1", DirectorySegment: "Default"},
			mode:    internal.ModeLaunch,
			expected: internal.Action{
				Title:    "Person 1",
				Subtitle: "Open Brave Browser as Person 1",
				Arg:      `"` + internal.DefaultExecutable + `" --profile-directory="Default"`,
			},
		},
		{
			desc: "Private",

			builder: internal.ActionBuilder{Executable: testExecutable},
			profile: internal.IncognitoProfile(),
			mode:    internal.ModePrivate,
			expected: internal.Action{
				Title:    "Incognito",
				Subtitle: "Open Brave Browser as Incognito in private",
				Arg:      `"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser" --incognito`,
			},
		},
		{
			desc: "Private with param",

			builder: internal.ActionBuilder{Executable: testExecutable, Param: "https://example.com"},
			profile: internal.IncognitoProfile(),
			mode:    internal.ModePrivate,
			expected: internal.Action{
				Title:    "Incognito",
				Subtitle: "Open Brave Browser as Incognito in private",
				Arg:      `"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser" "https://example.com" --incognito`,
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			action, err := tC.builder.Build(tC.profile, tC.mode)
			assert.NoError(t, err)
			assert.Equal(t, tC.expected, action)
		})
	}
}

func TestBuildPrivateSkipsProfileDirectory(t *testing.T) {
	action, err := internal.ActionBuilder{Executable: testExecutable}.Build(catWoman, internal.ModePrivate)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(action.Subtitle, " in private"))
	assert.Contains(t, action.Arg, "--incognito")
	assert.NotContains(t, action.Arg, "--profile-directory")
}

func TestBuildParamDirectlyAfterExecutable(t *testing.T) {
	for _, mode := range []internal.Mode{internal.ModeLaunch, internal.ModePrivate} {
		t.Run(string(mode), func(t *testing.T) {
			action, err := internal.ActionBuilder{Executable: testExecutable, Param: "https://example.com"}.Build(catWoman, mode)
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(action.Arg, `"`+testExecutable+`" "https://example.com" `))
		})
	}
}

func TestBuildInvalidMode(t *testing.T) {
	for _, mode := range []internal.Mode{"", "private", "Launch"} {
		t.Run(string(mode), func(t *testing.T) {
			_, err := internal.ActionBuilder{}.Build(catWoman, mode)
			assert.ErrorIs(t, err, internal.ErrInvalidMode)

			exitCode, hasExitCode := uerror.GetExitCode(err)
			assert.True(t, hasExitCode)
			assert.Equal(t, uerror.ExitCodeUsage, exitCode)
		})
	}
}

func TestBuildAll(t *testing.T) {
	profiles := []internal.Profile{
		{Name: "Batman", DirectorySegment: "Profile 1"},
		catWoman,
		{Name: "Person 1", DirectorySegment: "Default"},
	}

	actions, err := internal.ActionBuilder{Executable: testExecutable}.BuildAll(profiles, internal.ModeLaunch)
	assert.NoError(t, err)
	require.Len(t, actions, len(profiles))
	for i, profile := range profiles {
		assert.Equal(t, profile.Name, actions[i].Title)
		assert.Contains(t, actions[i].Arg, `--profile-directory="`+profile.DirectorySegment+`"`)
	}
}

func TestBuildAllInvalidModeWithoutProfiles(t *testing.T) {
	actions, err := internal.ActionBuilder{}.BuildAll(nil, "bogus")
	assert.ErrorIs(t, err, internal.ErrInvalidMode)
	assert.Nil(t, actions)
}
