package intervsrvc

import (
	"fmt"
	"time"

	"github.com/sortify-ai/backend/evalsrvc"
)

func transcriptHeader(role string, templateTitle string, mode Mode, startedAt time.Time) string {
	templateInfo := ""
	if templateTitle != "" {
		templateInfo = fmt.Sprintf(" (Template: %s)", templateTitle)
	}
	modeInfo := ""
	if mode == ModeDynamic {
		modeInfo = " (Dynamic Mode)"
	}
	return fmt.Sprintf("Interview for %s%s%s at %s\n\n",
		role, templateInfo, modeInfo, startedAt.Format("2006-01-02 15:04:05"))
}

// formatLogEntry renders one transcript line. Candidate entries carry
// the per-answer score so the final scoring pass can recover it later.
func formatLogEntry(role string, text string, eval *evalsrvc.Evaluation) string {
	if role == "user" {
		entry := fmt.Sprintf("Candidate: %s\n", text)
		if eval != nil {
			entry += fmt.Sprintf("[Score: %d/10 - %s]\n", eval.Score, eval.Feedback)
		}
		return entry + "\n"
	}
	return fmt.Sprintf("Interviewer: %s\n\n", text)
}

func formatEvalDetail(eval evalsrvc.Evaluation) string {
	return fmt.Sprintf("[Technical Accuracy: %d/5 | Completeness: %d/5 | Clarity: %d/5]\n",
		eval.TechnicalAccuracy, eval.Completeness, eval.Clarity)
}
