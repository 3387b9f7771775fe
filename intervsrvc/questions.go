package intervsrvc

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sortify-ai/backend/tmplsrvc"
)

// transitionPhrases lead into the next question in dynamic interviews.
var transitionPhrases = []string{
	"Great, that makes sense. Let's move on.",
	"Okay, I'm happy with that answer. For your next question:",
	"Good. Let's switch gears a bit.",
	"That's clear, thank you. Now, let's talk about a different topic.",
	"Excellent. Let's see how you do with this next question.",
	"Well said. Now, can you tell me...",
}

type questionPool map[string][]string

var questionPools = map[string]questionPool{
	tmplsrvc.DifficultyBeginner: {
		"conceptual": {
			"Can you explain what %s is in simple terms?",
			"What are the basic concepts someone needs to know about %s?",
			"How would you describe %s to someone new to programming?",
			"What problem does %s help solve?",
		},
		"practical": {
			"Can you show a simple example of how to use %s?",
			"What's the most basic way to implement %s?",
			"Walk me through a beginner-level example of %s.",
		},
	},
	tmplsrvc.DifficultyIntermediate: {
		"conceptual": {
			"Explain the core architecture and components of %s.",
			"What are the key design patterns used in %s?",
			"How does %s handle common challenges like performance or security?",
			"What are the trade-offs when using %s versus alternatives?",
		},
		"practical": {
			"Show me how you would implement %s in a real-world scenario.",
			"How would you optimize %s for better performance?",
			"Walk me through debugging a common issue with %s.",
			"How would you integrate %s with other systems?",
		},
		"problem_solving": {
			"Given a scenario where [related problem], how would you use %s to solve it?",
			"What approach would you take to scale %s for high traffic?",
			"How would you troubleshoot performance issues in %s?",
		},
	},
	tmplsrvc.DifficultyAdvanced: {
		"conceptual": {
			"Explain the internal mechanics and advanced features of %s.",
			"What are the limitations of %s and how do you work around them?",
			"How would you design a distributed system using %s?",
			"What are the security considerations at scale for %s?",
		},
		"practical": {
			"Design and implement a complex system using %s.",
			"How would you optimize %s for maximum performance under load?",
			"Show me how you would implement advanced features of %s.",
			"How would you handle fault tolerance and recovery in %s?",
		},
		"architectural": {
			"How would you architect a large-scale system using %s?",
			"What design patterns and principles are most important for %s at scale?",
			"How does %s fit into microservices architecture?",
			"What are the deployment and operational considerations for %s?",
		},
	},
}

// generateIntelligentQuestion picks the next topic question. When a previous
// answer exists the generator first tries the LLM for a context-aware
// follow-up and falls back to the rule-based pools otherwise.
func (s *IntervSrvc) generateIntelligentQuestion(ctx context.Context, topic string,
	difficulty string, followupCount int, previousAnswer string, lastQuestion string) string {

	if followupCount > 0 && previousAnswer != "" {
		q := s.evalSrvc.GenerateFollowup(ctx, topic, difficulty, followupCount, lastQuestion, previousAnswer)
		if q != "" {
			return q
		}
	}

	pool, ok := questionPools[difficulty]
	if !ok {
		pool = questionPools[tmplsrvc.DifficultyIntermediate]
	}

	var questionTypes []string
	switch {
	case followupCount == 0:
		questionTypes = []string{"conceptual", "practical"}
	case followupCount == 1:
		questionTypes = []string{"practical", "problem_solving"}
	case difficulty == tmplsrvc.DifficultyAdvanced:
		questionTypes = []string{"problem_solving", "architectural"}
	default:
		questionTypes = []string{"practical", "problem_solving"}
	}

	available := make([]string, 0, len(questionTypes))
	for _, qt := range questionTypes {
		if _, ok := pool[qt]; ok {
			available = append(available, qt)
		}
	}
	if len(available) == 0 {
		for qt := range pool {
			available = append(available, qt)
		}
	}

	selected := pool[available[rand.Intn(len(available))]]
	if len(selected) == 0 {
		return fmt.Sprintf("Tell me about your experience with %s and any challenging problems you've solved with it.", topic)
	}
	return fmt.Sprintf(selected[rand.Intn(len(selected))], topic)
}

// Adaptive generators for the default interview mode. The quality of the
// previous answer picks which one is used.

func generateChallengingFollowup() string {
	challenges := []string{
		"That's an excellent answer. Now, considering edge cases, how would you handle...",
		"Great insight. Taking this further, how would you optimize this for scale?",
		"Well explained. What are the potential security implications of this approach?",
		"Good understanding. How would this solution work in a distributed system?",
	}
	return challenges[rand.Intn(len(challenges))]
}

func generateRelatedQuestion() string {
	related := []string{
		"Good. Let's explore a related concept: ",
		"That makes sense. How does this compare to ",
		"Okay. What are the trade-offs of this approach versus ",
	}
	topics := []string{"microservices architecture", "database optimization", "caching strategies", "API design"}
	return related[rand.Intn(len(related))] + topics[rand.Intn(len(topics))] + "?"
}

func generateClarifyingQuestion() string {
	clarifications := []string{
		"Let me clarify: can you explain your understanding of ",
		"I want to make sure I understand your approach. Could you elaborate on ",
		"Let's go back to fundamentals. What is the core concept behind ",
	}
	coreConcepts := []string{"that technology", "the underlying principle", "the main algorithm", "that architecture"}
	return clarifications[rand.Intn(len(clarifications))] + coreConcepts[rand.Intn(len(coreConcepts))] + "?"
}
