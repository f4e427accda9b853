package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		json     string
		want     Answer
		answered bool
	}{
		{`"yes"`, "yes", true},
		{`"  2-4 "`, "  2-4 ", true},
		{`"say \"hi\""`, `say "hi"`, true},
		{`""`, "", false},
		{`"   "`, "   ", false},
		{`50`, "50", true},
		{`12.50`, "12.50", true},
		{`-1`, "-1", true},
		{`0`, "", false},
		{`0.0`, "", false},
		{`true`, "true", true},
		{`false`, "", false},
		{`null`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			var a Answer
			require.NoError(t, json.Unmarshal([]byte(tt.json), &a))
			assert.Equal(t, tt.want, a)
			assert.Equal(t, tt.answered, a.Answered())
		})
	}
}

func TestAnswer_UnmarshalJSON_Unsupported(t *testing.T) {
	for in, kind := range map[string]string{`{"a":1}`: "object", `["yes"]`: "array"} {
		var a Answer
		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, json.Unmarshal([]byte(in), &a), &typeErr, in)
		assert.Equal(t, kind, typeErr.Value)
	}
}

func TestSurveyResponse_DecodeReportsField(t *testing.T) {
	var resp SurveyResponse
	err := json.Unmarshal([]byte(`{"timestamp":"t1","interested":{"answer":"yes"}}`), &resp)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "interested", typeErr.Field)
}

func TestSurveyResponse_Decode(t *testing.T) {
	body := `{"timestamp":"2024-01-01T00:00:00Z","interested":"yes","players":"2-4",` +
		`"duration":"30-60min","puzzle_percentage":50,"price":"20","created_at":"1999-01-01","extra":"ignored"}`

	var resp SurveyResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, SurveyResponse{
		Timestamp:        "2024-01-01T00:00:00Z",
		Interested:       "yes",
		Players:          "2-4",
		Duration:         "30-60min",
		PuzzlePercentage: "50",
		Price:            "20",
	}, resp)
}
