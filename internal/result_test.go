package internal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"t0ast.cc/brave-alfred/internal"
)

func TestAssemble(t *testing.T) {
	actions := []internal.Action{
		{Title: "Zorro", Subtitle: "Open Brave Browser as Zorro", Arg: "z"},
		{Title: "Alice", Subtitle: "Open Brave Browser as Alice", Arg: "a"},
	}

	envelope := internal.Assemble(actions)
	assert.Equal(t, actions, envelope.Items, "Assemble must not reorder items")
}

func TestAssembleEmpty(t *testing.T) {
	content, err := json.Marshal(internal.Assemble(nil))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"items": []}`, string(content))
}

func TestEnvelopeJSON(t *testing.T) {
	content, err := json.Marshal(internal.Assemble([]internal.Action{
		{Title: "Cat Woman", Subtitle: "Open Brave Browser as Cat Woman", Arg: `"brave" --profile-directory="Profile 2"`},
	}))
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"items": [
			{
				"title": "Cat Woman",
				"subtitle": "Open Brave Browser as Cat Woman",
				"arg": "\"brave\" --profile-directory=\"Profile 2\""
			}
		]
	}`, string(content))
}
