package content

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	assert.Equal(t, "RUVA Backend is running", RootMessage().Message)
	assert.Equal(t, "Hello from the backend API!", HelloMessage().Message)
	assert.Equal(t, RootMessage(), RootMessage())
}

func TestPromptsShape(t *testing.T) {
	raw, err := json.Marshal(Prompts())
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))

	keys := make([]string, 0, len(got))
	for k, v := range got {
		keys = append(keys, k)
		assert.NotEmpty(t, strings.TrimSpace(v), k)
	}
	assert.ElementsMatch(t, []string{"face", "physique", "styling", "glowup"}, keys)
}

func TestPromptsStable(t *testing.T) {
	p := Prompts()
	assert.Equal(t, p, Prompts())
	assert.True(t, strings.HasPrefix(p.Face, "You are an expert in male lookmaxxing."))
	assert.True(t, strings.HasSuffix(p.Glowup, "Constraints: punchy, checklist style, under 180 words."))
	assert.Contains(t, p.Physique, "- Workout (D1–D7: sets x reps):\n")
	assert.Contains(t, p.Styling, "- Outfits (Mon–Sun, 1 line each):\n")
}
