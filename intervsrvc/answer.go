package intervsrvc

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sortify-ai/backend/evalsrvc"
	"github.com/sortify-ai/backend/ollama"
)

const (
	closingMessage = "Thank you for completing the technical assessment. This concludes our interview. Your responses have been recorded and will be reviewed by our team."

	alreadyDoneMessage = "Thank you for completing the interview. Your responses have been recorded."

	dynamicFallbackQuestion = "Sorry, the dynamic generator is currently unavailable. Please continue: can you give an example to illustrate your approach?"

	// Per-call instruction prepended before asking Ollama for the next
	// follow-up in dynamic mode.
	dynamicFollowupInstruction = "You are a concise technical interviewer. Read the conversation and produce exactly one follow-up question " +
		"that directly continues the candidate's last answer. Keep it short (1-2 sentences). Do not provide answers or evaluations."
)

// AnswerResult is what one exchange produces: the evaluation of the
// candidate's answer and the interviewer's next question.
type AnswerResult struct {
	Evaluation   evalsrvc.Evaluation
	NextQuestion string
	Completed    bool

	// Streamed reports that the next question was already delivered
	// token by token through the onToken callback.
	Streamed bool
}

// SubmitAnswer records the candidate's answer, evaluates it and
// produces the next question according to the interview mode. In
// dynamic mode onToken receives the Ollama tokens as they arrive.
func (s *IntervSrvc) SubmitAnswer(ctx context.Context, intervUuid uuid.UUID,
	byUser uuid.UUID, answer string, onToken func(token string)) (*AnswerResult, error) {

	unlock := s.lockInterview(intervUuid)
	defer unlock()

	interv, err := s.getInterview(ctx, intervUuid)
	if err != nil {
		return nil, err
	}
	if interv.UserUuid != byUser {
		return nil, newErrAccessDenied()
	}
	if interv.Suspended {
		return nil, newErrInterviewSuspended(interv.SuspendReason)
	}
	if interv.Completed {
		return nil, newErrInterviewCompleted()
	}
	if s.timeRemaining(interv) <= 0 {
		// Auto-end when the clock runs out.
		s.finalize(ctx, interv)
		interv.Transcript += fmt.Sprintf("\n\n[INTERVIEW ENDED] Time completed at %s", time.Now().Format("15:04:05"))
		if err := s.updateInterview(ctx, interv); err != nil {
			s.logger.Error("time-expiry finalize failed", "interview_uuid", intervUuid, "error", err)
		}
		s.dropSession(intervUuid)
		return nil, newErrInterviewTimeExpired()
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, newErrEmptyAnswer()
	}

	sess := s.getSession(intervUuid)
	if sess == nil {
		sess, err = s.rebuildSession(interv)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.sessions[intervUuid] = sess
		s.mu.Unlock()
	}

	lastQuestion := "No previous question"
	for i := len(sess.convo) - 1; i >= 0; i-- {
		if sess.convo[i].Role == ollama.RoleAssistant {
			lastQuestion = sess.convo[i].Content
			break
		}
	}

	evalStart := time.Now()
	eval := s.evalSrvc.EvaluateAnswer(ctx, lastQuestion, answer)
	answerEvalDuration.Observe(time.Since(evalStart).Seconds())
	normalized := eval.NormalizedAnswer
	if normalized == "" {
		normalized = answer
	}

	sess.convo = append(sess.convo, ollama.Message{Role: ollama.RoleUser, Content: normalized})
	interv.Transcript += formatLogEntry("user", normalized, &eval)
	interv.Transcript += formatEvalDetail(eval)

	res := &AnswerResult{Evaluation: eval}

	switch sess.mode {
	case ModeDynamic:
		res.NextQuestion, res.Streamed = s.nextDynamicQuestion(ctx, sess, onToken)
	case ModeTemplate:
		res.NextQuestion, res.Completed = s.nextTemplateQuestion(ctx, sess, normalized, lastQuestion)
	default:
		res.NextQuestion = s.nextDefaultQuestion(ctx, eval.Score)
	}

	sess.convo = append(sess.convo, ollama.Message{Role: ollama.RoleAssistant, Content: res.NextQuestion})
	interv.Transcript += formatLogEntry("assistant", res.NextQuestion, nil)

	if res.Completed {
		s.finalize(ctx, interv)
		s.dropSession(intervUuid)
	} else {
		interv.UpdatedAt = time.Now()
	}

	if err := s.updateInterview(ctx, interv); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return res, nil
}

// nextDynamicQuestion streams one follow-up from Ollama. On any failure
// the interview continues with a canned fallback question instead of
// stalling.
func (s *IntervSrvc) nextDynamicQuestion(ctx context.Context, sess *session, onToken func(string)) (string, bool) {
	if s.chat == nil {
		return dynamicFallbackQuestion, false
	}
	convo := append([]ollama.Message{
		{Role: ollama.RoleSystem, Content: dynamicFollowupInstruction},
	}, sess.convo...)
	reply, err := s.chat.Chat(ctx, convo, onToken)
	if err != nil {
		s.logger.Warn("ollama stream failed", "error", err)
		return dynamicFallbackQuestion, false
	}
	return reply, true
}

// nextTemplateQuestion advances the topic cursor: up to
// MaxFollowupsPerTopic follow-ups per topic, then the next topic, then
// the closing message once every topic is covered.
func (s *IntervSrvc) nextTemplateQuestion(ctx context.Context, sess *session,
	answer string, lastQuestion string) (nextQ string, completed bool) {

	if sess.topicIndex >= len(sess.topics) {
		return alreadyDoneMessage, true
	}
	topic := sess.topics[sess.topicIndex]

	if sess.topicFollowups < MaxFollowupsPerTopic {
		sess.topicFollowups++
		return s.generateIntelligentQuestion(ctx, topic, sess.difficulty,
			sess.topicFollowups, answer, lastQuestion), false
	}

	sess.topicIndex++
	sess.topicFollowups = 0
	if sess.topicIndex < len(sess.topics) {
		nextTopic := sess.topics[sess.topicIndex]
		q := s.generateIntelligentQuestion(ctx, nextTopic, sess.difficulty, 0, "", "")
		return transitionPhrases[rand.Intn(len(transitionPhrases))] + " " + q, false
	}
	return closingMessage, true
}

// nextDefaultQuestion adapts the question family to how well the last
// answer scored.
func (s *IntervSrvc) nextDefaultQuestion(ctx context.Context, score int) string {
	switch {
	case score >= 8:
		return generateChallengingFollowup()
	case score >= 6:
		return generateRelatedQuestion()
	case score >= 4:
		return generateClarifyingQuestion()
	default:
		return "Let me ask a more fundamental question to build upon: " +
			s.generateIntelligentQuestion(ctx, "programming fundamentals", "beginner", 0, "", "")
	}
}

// rebuildSession reconstructs enough session state from the persisted
// interview to keep going after a process restart. The topic cursor
// restarts at the first topic; covered material is still in the
// transcript.
func (s *IntervSrvc) rebuildSession(interv *Interview) (*session, error) {
	sess := &session{
		role: interv.Role,
		mode: interv.Mode,
	}
	switch interv.Mode {
	case ModeTemplate:
		if interv.TemplateUuid == nil {
			return nil, newErrInterviewNotFound()
		}
		tmpl, err := s.tmplSrvc.Get(*interv.TemplateUuid)
		if err != nil {
			return nil, err
		}
		sess.templateUuid = &tmpl.UUID
		sess.templateTitle = tmpl.Title
		sess.difficulty = tmpl.Difficulty
		sess.topics = tmpl.Topics
		sess.convo = []ollama.Message{
			{Role: ollama.RoleSystem, Content: systemPromptFromTemplate(tmpl)},
		}
	case ModeDynamic:
		sess.convo = []ollama.Message{
			{Role: ollama.RoleSystem, Content: dynamicSystemPrompt(interv.Role)},
		}
	default:
		sess.convo = []ollama.Message{
			{Role: ollama.RoleSystem, Content: "You are a technical interviewer. Ask clear, focused technical questions one at a time about programming, data structures, algorithms, and software engineering principles."},
		}
	}
	return sess, nil
}
