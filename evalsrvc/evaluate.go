package evalsrvc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Evaluation is the verdict on a single candidate answer.
type Evaluation struct {
	Score             int    `json:"evaluation_score"`
	Feedback          string `json:"evaluation_text"`
	TechnicalAccuracy int    `json:"technical_accuracy"`
	Completeness      int    `json:"completeness"`
	Clarity           int    `json:"clarity"`

	// NormalizedAnswer has the STT corrections applied. It is what gets
	// logged to the transcript.
	NormalizedAnswer string `json:"normalized_answer,omitempty"`
}

// EvaluateAnswer scores an answer on a 1-10 scale. The Gemini path is
// preferred; on any failure the rule-based evaluator takes over so an
// interview never stalls on a flaky model.
func (s *EvalSrvc) EvaluateAnswer(ctx context.Context, question, answer string) Evaluation {
	if s.gen == nil {
		return s.evaluateStrict(question, answer)
	}

	normalized := NormalizeSpeechToText(answer)

	prompt := fmt.Sprintf(promptEvaluateAnswer, question, normalized)
	text, err := s.gen.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("gemini evaluation failed, falling back", "error", err)
		return s.evaluateStrict(question, answer)
	}

	eval, err := parseEvaluationJson(text)
	if err != nil {
		s.logger.Warn("gemini returned unparsable evaluation, falling back",
			"error", err)
		return s.evaluateStrict(question, answer)
	}

	if eval.Feedback == "" {
		eval.Feedback = feedbackForScore(eval.Score)
	}
	eval.NormalizedAnswer = normalized

	s.logger.Debug("answer evaluated",
		"score", eval.Score, "feedback", eval.Feedback)

	return *eval
}

// parseEvaluationJson decodes the model's JSON verdict, tolerating the
// markdown code fences Gemini likes to wrap JSON in.
func parseEvaluationJson(text string) (*Evaluation, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var eval Evaluation
	if err := json.Unmarshal([]byte(text), &eval); err != nil {
		return nil, fmt.Errorf("decode evaluation json: %w", err)
	}

	// missing fields get neutral defaults
	if eval.Score == 0 {
		eval.Score = 5
	}
	if eval.TechnicalAccuracy == 0 {
		eval.TechnicalAccuracy = 3
	}
	if eval.Completeness == 0 {
		eval.Completeness = 3
	}
	if eval.Clarity == 0 {
		eval.Clarity = 3
	}
	eval.Score = clamp(eval.Score, 1, 10)
	eval.TechnicalAccuracy = clamp(eval.TechnicalAccuracy, 1, 5)
	eval.Completeness = clamp(eval.Completeness, 1, 5)
	eval.Clarity = clamp(eval.Clarity, 1, 5)

	return &eval, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
