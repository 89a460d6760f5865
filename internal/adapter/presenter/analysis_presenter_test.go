package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

func TestToAnalysisResponse_Shape(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	empty := ""
	a := &entities.Analysis{
		ID:           uuid.New(),
		TranscriptID: uuid.New(),
		Transcript:   &entities.Transcript{Text: "Alice: hi"},
		Title:        &empty,
		Sentiment:    entities.SentimentMixed,
		Provider:     "anthropic",
		Model:        "claude",
		CreatedAt:    created,
		ActionItems:  []entities.ActionItem{{ID: uuid.New(), Description: "Follow up", CreatedAt: created}},
	}

	b, err := json.Marshal(ToAnalysisResponse(a))
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &body))

	assert.NotContains(t, body, "title")
	assert.NotContains(t, body, "summary")
	assert.NotContains(t, body, "transcriptText")
	assert.Equal(t, "mixed", body["sentiment"])
	assert.Equal(t, []interface{}{}, body["keyDecisions"])

	items := body["actionItems"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Contains(t, item, "owner")
	assert.Nil(t, item["owner"])
	assert.NotContains(t, item, "createdAt")
}

func TestToAnalysisDetailResponse_IncludesTranscript(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	a := &entities.Analysis{
		ID:           uuid.New(),
		Transcript:   &entities.Transcript{Text: "Alice: hi"},
		Sentiment:    entities.SentimentNeutral,
		KeyDecisions: []entities.KeyDecision{{ID: uuid.New(), Decision: "Hire", CreatedAt: created}},
	}

	resp := ToAnalysisDetailResponse(a)
	require.NotNil(t, resp.TranscriptText)
	assert.Equal(t, "Alice: hi", *resp.TranscriptText)
	require.Len(t, resp.KeyDecisions, 1)
	assert.Equal(t, created, *resp.KeyDecisions[0].CreatedAt)
	assert.NotNil(t, resp.ActionItems)
}

func TestToListAnalysesResponse_Empty(t *testing.T) {
	resp := ToListAnalysesResponse(nil, 0)
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"analyses":[],"total":0}`, string(b))
}
