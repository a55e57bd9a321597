package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A submission serialized without its associations preloaded must omit
// them entirely rather than ship zero-valued user/challenge objects.
func TestSubmissionJSONOmitsUnloadedAssociations(t *testing.T) {
	sub := Submission{
		UserID:      1,
		ChallengeID: 2,
		Status:      SubmissionPending,
	}

	raw, err := json.Marshal(sub)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "user")
	assert.NotContains(t, fields, "challenge")

	sub.Challenge = &Challenge{Title: "Recycle at Home"}
	raw, err = json.Marshal(sub)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "challenge")
}

func TestForumPostJSONOmitsUnloadedAuthor(t *testing.T) {
	post := ForumPost{UserID: 1, Title: "Composting tips", Content: "Start small."}

	raw, err := json.Marshal(post)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "user")
}
