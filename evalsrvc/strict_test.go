package evalsrvc_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sortify-ai/backend/evalsrvc"
)

// failingGen simulates a flaky Gemini client.
type failingGen struct{}

func (failingGen) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("model unavailable")
}

// fixedGen returns a canned completion.
type fixedGen struct {
	text string
}

func (g fixedGen) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return g.text, nil
}

func TestStrictEvaluationBriefAnswer(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(nil)

	eval := srvc.EvaluateAnswer(context.Background(), "Explain pointers.", "I think so maybe")

	// Base 5, no technical terms, under 15 words costs 2.
	assert.Equal(t, 3, eval.Score)
	assert.Equal(t, 2, eval.TechnicalAccuracy)
	assert.Equal(t, 2, eval.Completeness)
	assert.Equal(t, 2, eval.Clarity)
	assert.NotEmpty(t, eval.Feedback)
}

func TestStrictEvaluationNonAnswer(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(nil)

	eval := srvc.EvaluateAnswer(context.Background(), "Explain pointers.", "not sure")

	// Brief and off-topic with zero technical content floors at 1.
	assert.Equal(t, 1, eval.Score)
	assert.Equal(t, 1, eval.TechnicalAccuracy)
}

func TestStrictEvaluationStrongAnswer(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(nil)

	answer := "A good algorithm must consider memory layout first. For example when I worked " +
		"with a large database I measured performance before touching anything, because premature " +
		"tuning hides real costs. My approach was to profile the hot path, then compare each candidate " +
		"change compared to the baseline, and only keep what helped. Careful testing of every pointer " +
		"heavy path caught two regressions early. To solve the remaining slowdown we reorganized the " +
		"records so the most commonly accessed fields shared a cache line, which cut misses by roughly " +
		"a third. The same discipline applies everywhere: measure, change one thing, measure again, " +
		"and keep notes so the next person understands the reasoning behind every decision that was " +
		"made along the way during the effort."

	eval := srvc.EvaluateAnswer(context.Background(), "How do you optimize data access?", answer)

	// Rich technical vocabulary, quality indicators and length max out.
	assert.Equal(t, 10, eval.Score)
	assert.Equal(t, 5, eval.TechnicalAccuracy)
	assert.Equal(t, 5, eval.Completeness)
	assert.Equal(t, 5, eval.Clarity)
}

func TestStrictEvaluationScoreClamped(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(nil)

	for _, answer := range []string{"", "no", strings.Repeat("word ", 200)} {
		eval := srvc.EvaluateAnswer(context.Background(), "q", answer)
		assert.GreaterOrEqual(t, eval.Score, 1)
		assert.LessOrEqual(t, eval.Score, 10)
		assert.GreaterOrEqual(t, eval.TechnicalAccuracy, 1)
		assert.LessOrEqual(t, eval.TechnicalAccuracy, 5)
	}
}

func TestEvaluateAnswerFallsBackWhenModelFails(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(failingGen{})

	eval := srvc.EvaluateAnswer(context.Background(), "Explain pointers.", "I think so maybe")

	// Same verdict the rule-based evaluator produces.
	assert.Equal(t, 3, eval.Score)
}

func TestEvaluateAnswerParsesModelJson(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(fixedGen{text: "```json\n" +
		`{"evaluation_score": 8, "evaluation_text": "solid", "technical_accuracy": 4, "completeness": 4, "clarity": 5}` +
		"\n```"})

	eval := srvc.EvaluateAnswer(context.Background(), "q", "a perfectly reasonable answer about algorithms")

	assert.Equal(t, 8, eval.Score)
	assert.Equal(t, "solid", eval.Feedback)
	assert.Equal(t, 4, eval.TechnicalAccuracy)
	assert.Equal(t, 5, eval.Clarity)
}

func TestEvaluateAnswerFallsBackOnGarbageJson(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(fixedGen{text: "I cannot evaluate this."})

	eval := srvc.EvaluateAnswer(context.Background(), "Explain pointers.", "not sure")

	assert.Equal(t, 1, eval.Score)
}
