package evalsrvc

import (
	"math"
	"strconv"
	"strings"
)

// ParseTranscriptScores extracts the per-answer scores from the plain
// text transcript ("[Score: N/10 - ...]" lines).
func ParseTranscriptScores(transcript string) []int {
	var scores []int
	for _, line := range strings.Split(transcript, "\n") {
		if !strings.Contains(line, "Score:") {
			continue
		}
		after := line[strings.Index(line, "Score:")+len("Score:"):]
		slash := strings.Index(after, "/")
		if slash < 0 {
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(after[:slash]))
		if err != nil {
			continue
		}
		scores = append(scores, score)
	}
	return scores
}

// CalculateFinalScore computes the weighted average of all answer
// scores. Later answers carry slightly more weight: the candidate has
// warmed up and questions have gotten harder.
func CalculateFinalScore(transcript string) float64 {
	scores := ParseTranscriptScores(transcript)
	if len(scores) == 0 {
		return 0
	}

	var weighted float64
	for i, score := range scores {
		weight := math.Min(1.0, 0.7+float64(i)*0.1)
		weighted += float64(score) * weight
	}

	final := weighted / float64(len(scores))
	return math.Round(final*100) / 100
}
