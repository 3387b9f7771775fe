package evalsrvc

import (
	"context"
	"fmt"
	"strings"
)

// GenerateFollowup asks Gemini for a contextual follow-up question on
// the current topic. Returns an empty string when no generator is
// configured or the result is unusable; callers fall back to their
// question pools.
func (s *EvalSrvc) GenerateFollowup(ctx context.Context, topic, difficulty string, followupCount int, lastQuestion, prevAnswer string) string {
	if s.gen == nil {
		return ""
	}

	prompt := fmt.Sprintf(promptFollowupQuestion,
		topic, lastQuestion, prevAnswer, topic, difficulty, followupCount)

	question, err := s.gen.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("follow-up generation failed", "error", err)
		return ""
	}

	question = strings.TrimSpace(question)
	if len(question) <= 10 { // basic sanity check
		return ""
	}
	return question
}
