package evalsrvc

import (
	"context"
	"fmt"
	"strings"
)

// GenerateReport produces the end-of-interview Markdown report. The
// Gemini path writes a narrative evaluation; the fallback assembles a
// deterministic summary from the recorded scores.
func (s *EvalSrvc) GenerateReport(ctx context.Context, transcript string, finalScore float64) string {
	if s.gen == nil {
		return s.generateBasicReport(transcript, finalScore)
	}

	prompt := fmt.Sprintf(promptGenerateSummary, transcript, finalScore)
	report, err := s.gen.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("gemini report generation failed, falling back", "error", err)
		return s.generateBasicReport(transcript, finalScore)
	}

	report = strings.TrimSpace(report)
	if !strings.HasPrefix(report, "#") {
		report = fmt.Sprintf("# Interview Evaluation Report\n\n## Final Score: %.2f/10\n\n%s",
			finalScore, report)
	}

	return report
}

func (s *EvalSrvc) generateBasicReport(transcript string, finalScore float64) string {
	scores := ParseTranscriptScores(transcript)

	scoreAnalysis := "No scores recorded"
	if len(scores) > 0 {
		highest, lowest := scores[0], scores[0]
		parts := make([]string, len(scores))
		for i, score := range scores {
			if score > highest {
				highest = score
			}
			if score < lowest {
				lowest = score
			}
			parts[i] = fmt.Sprintf("%d", score)
		}
		scoreAnalysis = fmt.Sprintf(
			"- Number of questions: %d\n"+
				"- Average score: %.2f/10\n"+
				"- Highest score: %d/10\n"+
				"- Lowest score: %d/10\n"+
				"- Score distribution: %s",
			len(scores), finalScore, highest, lowest, strings.Join(parts, ", "))
	}

	return fmt.Sprintf(`# Technical Interview Evaluation Report

## Overall Assessment
Final Score: **%.2f/10**

%s

## Performance Summary
%s

## Evaluation Criteria
- **9-10**: Exceptional technical competency
- **7-8**: Strong technical skills with minor gaps
- **5-6**: Basic competency needing development
- **1-4**: Significant technical improvements required

## Next Steps
Based on the interview performance, %s

---
*Report generated automatically from interview transcript*
`, finalScore, Recommendation(finalScore), scoreAnalysis, nextSteps(finalScore))
}

// Recommendation maps a final score to a hiring recommendation line.
func Recommendation(score float64) string {
	switch {
	case score >= 8:
		return "**Recommendation: Strong Hire** - Candidate demonstrates excellent technical capabilities."
	case score >= 6:
		return "**Recommendation: Consider with Training** - Candidate shows potential but needs development in some areas."
	default:
		return "**Recommendation: Do Not Hire** - Candidate lacks required technical competency."
	}
}

func nextSteps(score float64) string {
	switch {
	case score >= 8:
		return "proceed to the next interview stage."
	case score >= 6:
		return "consider for a junior role or provide specific technical training."
	default:
		return "the candidate should focus on improving fundamental technical skills before reapplying."
	}
}
