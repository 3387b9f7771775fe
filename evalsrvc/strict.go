package evalsrvc

import (
	"math"
	"strings"
)

var technicalTerms = []string{
	"algorithm", "data structure", "memory", "pointer", "function", "variable",
	"method", "api", "database", "compile", "debug", "security", "performance",
	"optimization", "testing", "debugging", "struct", "malloc", "free", "array",
	"string", "loop", "recursion", "c programming", "c++", "python", "java",
	"javascript", "sql", "framework", "library", "architecture", "design pattern",
	"microservice", "container", "kubernetes", "docker", "cloud", "rest",
	"graphql", "nosql", "index", "query", "transaction",
}

var qualityIndicators = map[string][]string{
	"specific_example": {"for example", "for instance", "in my experience", "i implemented"},
	"technical_detail": {"because", "therefore", "since", "due to", "the reason is"},
	"methodology":      {"approach", "methodology", "process", "workflow", "pipeline"},
	"comparison":       {"compared to", "versus", "better than", "worse than", "alternative"},
	"problem_solving":  {"solve", "fix", "debug", "troubleshoot", "optimize"},
}

var offTopicPhrases = []string{
	"i dont know", "not sure", "no idea", "cannot remember", "irrelevant",
}

// evaluateStrict is the deterministic evaluator used when Gemini is
// unavailable. It rewards technical vocabulary, concrete examples and
// depth, and punishes brevity and non-answers.
func (s *EvalSrvc) evaluateStrict(question, answer string) Evaluation {
	normalized := NormalizeSpeechToText(answer)
	answerLower := strings.ToLower(normalized)

	score := 5.0 // neutral starting point

	// technical content analysis
	technicalTermsFound := 0
	for _, term := range technicalTerms {
		if strings.Contains(answerLower, term) {
			technicalTermsFound++
		}
	}
	score += math.Min(3, float64(technicalTermsFound)*0.5)

	// quality indicators
	qualityScore := 0.0
	for _, keywords := range qualityIndicators {
		for _, keyword := range keywords {
			if strings.Contains(answerLower, keyword) {
				qualityScore += 0.5
				break
			}
		}
	}
	score += math.Min(2, qualityScore)

	// length and depth consideration
	wordCount := len(strings.Fields(normalized))
	if wordCount < 15 {
		score -= 2 // too brief
	} else if wordCount > 100 {
		score += 1 // detailed answer
	}

	// off-topic penalty
	if technicalTermsFound == 0 {
		for _, phrase := range offTopicPhrases {
			if strings.Contains(answerLower, phrase) {
				score = math.Max(1, score-3)
				break
			}
		}
	}

	rounded := clamp(int(math.Round(score)), 1, 10)
	subScore := clamp(int(math.Round(float64(rounded)/2)), 1, 5)

	eval := Evaluation{
		Score:             rounded,
		Feedback:          feedbackForScore(rounded),
		TechnicalAccuracy: subScore,
		Completeness:      subScore,
		Clarity:           subScore,
		NormalizedAnswer:  normalized,
	}

	s.logger.Debug("strict evaluation",
		"score", rounded, "technical_terms", technicalTermsFound)

	return eval
}

func feedbackForScore(score int) string {
	switch {
	case score >= 9:
		return "Excellent technical response demonstrating deep understanding and practical experience."
	case score >= 7:
		return "Strong technical answer with good detail and accurate concepts."
	case score >= 5:
		return "Adequate technical understanding but lacks depth or contains minor inaccuracies."
	case score >= 3:
		return "Basic understanding shown but significant technical gaps or inaccuracies present."
	default:
		return "Insufficient technical response showing major misunderstandings or lack of knowledge."
	}
}
