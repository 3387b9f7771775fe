package evalsrvc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sortify-ai/backend/evalsrvc"
)

const sampleTranscript = `Interview for Backend Developer at 2025-01-10 12:00:00

Interviewer: What are your strengths?

Candidate: I build reliable services.
[Score: 8/10 - Strong technical answer with good detail and accurate concepts.]

[Technical Accuracy: 4/5 | Completeness: 4/5 | Clarity: 4/5]

Interviewer: Explain database indexing.

Candidate: An index speeds up lookups.
[Score: 6/10 - Adequate technical understanding but lacks depth.]

[Technical Accuracy: 3/5 | Completeness: 3/5 | Clarity: 3/5]
`

func TestParseTranscriptScores(t *testing.T) {
	scores := evalsrvc.ParseTranscriptScores(sampleTranscript)
	assert.Equal(t, []int{8, 6}, scores)
}

func TestParseTranscriptScoresSkipsMalformedLines(t *testing.T) {
	transcript := "Score: eight/10\nScore: 7\n[Score: 9/10 - good]\n"
	assert.Equal(t, []int{9}, evalsrvc.ParseTranscriptScores(transcript))
}

func TestCalculateFinalScoreWeighting(t *testing.T) {
	// Weights 0.7 and 0.8: (8*0.7 + 6*0.8) / 2 = 5.2.
	assert.Equal(t, 5.2, evalsrvc.CalculateFinalScore(sampleTranscript))
}

func TestCalculateFinalScoreWeightCapsAtOne(t *testing.T) {
	transcript := ""
	for i := 0; i < 5; i++ {
		transcript += "[Score: 10/10 - great]\n"
	}
	// Weights 0.7 0.8 0.9 1.0 1.0: sum 44 / 5 = 8.8.
	assert.Equal(t, 8.8, evalsrvc.CalculateFinalScore(transcript))
}

func TestCalculateFinalScoreEmptyTranscript(t *testing.T) {
	assert.Equal(t, 0.0, evalsrvc.CalculateFinalScore("no scores here"))
}
