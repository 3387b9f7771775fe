package intervsrvc

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sortify-ai/backend/evalsrvc"
	"github.com/sortify-ai/backend/ollama"
	"github.com/sortify-ai/backend/tmplsrvc"
)

// ChatClient is the streaming LLM surface dynamic interviews need. The
// Ollama client implements it; tests substitute a fake.
type ChatClient interface {
	Chat(ctx context.Context, messages []ollama.Message, onToken func(token string)) (string, error)
}

// session holds the in-memory state of a running interview: the full
// conversation and the topic cursor. The transcript itself is persisted
// after every exchange, so a lost session degrades to a read-only
// interview rather than lost data.
type session struct {
	convo          []ollama.Message
	topicIndex     int
	topicFollowups int

	role          string
	mode          Mode
	templateUuid  *uuid.UUID
	templateTitle string
	difficulty    string
	topics        []string
}

type IntervSrvc struct {
	logger   *slog.Logger
	db       *sql.DB
	tmplSrvc *tmplsrvc.TemplateSrvc
	evalSrvc *evalsrvc.EvalSrvc
	chat     ChatClient // nil disables dynamic mode

	duration time.Duration

	mu        sync.Mutex
	sessions  map[uuid.UUID]*session
	intervMus map[uuid.UUID]*sync.Mutex
}

func NewIntervSrvc(db *sql.DB, tmplSrvc *tmplsrvc.TemplateSrvc,
	evalSrvc *evalsrvc.EvalSrvc, chat ChatClient, duration time.Duration) *IntervSrvc {
	return &IntervSrvc{
		logger:    slog.Default().With("module", "interview"),
		db:        db,
		tmplSrvc:  tmplSrvc,
		evalSrvc:  evalSrvc,
		chat:      chat,
		duration:  duration,
		sessions:  make(map[uuid.UUID]*session),
		intervMus: make(map[uuid.UUID]*sync.Mutex),
	}
}

type StartParams struct {
	UserUuid     uuid.UUID
	Role         string
	TemplateUuid *uuid.UUID
	DynamicMode  bool
}

const templateIntroQuestion = "What are your strengths and name one topic where you are strongest?"

// Start opens a new interview session and returns it together with the
// opening question. Template mode wins over dynamic mode when both are
// requested.
func (s *IntervSrvc) Start(ctx context.Context, p StartParams) (*Interview, string, error) {
	role := strings.TrimSpace(p.Role)
	if role == "" {
		role = "C Developer"
	}

	sess := &session{role: role}
	var firstQ string
	var systemPrompt string
	var tmpl *tmplsrvc.Template

	switch {
	case p.TemplateUuid != nil && !p.DynamicMode:
		var err error
		tmpl, err = s.tmplSrvc.Get(*p.TemplateUuid)
		if err != nil {
			return nil, "", err
		}
		systemPrompt = systemPromptFromTemplate(tmpl)
		if len(tmpl.Topics) > 0 {
			// Fixed introductory question so candidate strengths are
			// known before the topic walk begins.
			firstQ = templateIntroQuestion
		} else {
			firstQ = fmt.Sprintf("Let's begin the %s interview. Can you tell me about your experience with this role?", tmpl.Role)
		}
		sess.mode = ModeTemplate
		sess.templateUuid = &tmpl.UUID
		sess.templateTitle = tmpl.Title
		sess.difficulty = tmpl.Difficulty
		sess.topics = tmpl.Topics
	case p.DynamicMode:
		systemPrompt = dynamicSystemPrompt(role)
		firstQ = fmt.Sprintf("Let's begin the %s interview. Can you tell me about your relevant experience and what interests you about this position?", role)
		sess.mode = ModeDynamic
	default:
		systemPrompt = "You are a technical interviewer. Ask clear, focused technical questions one at a time about programming, data structures, algorithms, and software engineering principles."
		firstQ = fmt.Sprintf("Let's begin the %s interview. What interests you about this position?", role)
		sess.mode = ModeDefault
	}

	sess.convo = []ollama.Message{
		{Role: ollama.RoleSystem, Content: systemPrompt},
		{Role: ollama.RoleAssistant, Content: firstQ},
	}

	now := time.Now()
	interv := &Interview{
		UUID:       uuid.New(),
		UserUuid:   p.UserUuid,
		Role:       role,
		Mode:       sess.mode,
		Transcript: transcriptHeader(role, sess.templateTitle, sess.mode, now) + formatLogEntry("assistant", firstQ, nil),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if sess.mode == ModeTemplate {
		interv.TemplateUuid = sess.templateUuid
	}

	if err := s.insertInterview(ctx, interv); err != nil {
		return nil, "", newErrInternalSE().SetDebug(err)
	}

	s.mu.Lock()
	s.sessions[interv.UUID] = sess
	s.mu.Unlock()

	interviewsStarted.WithLabelValues(string(sess.mode)).Inc()
	s.logger.Info("interview started",
		"interview_uuid", interv.UUID,
		"mode", sess.mode,
		"role", role)

	return interv, firstQ, nil
}

// lockInterview serializes state changes of one interview. A frontend
// retry or double-click submits the same answer twice; without this the
// two requests race on the session conversation and the second
// transcript write clobbers the first.
func (s *IntervSrvc) lockInterview(intervUuid uuid.UUID) func() {
	s.mu.Lock()
	m, ok := s.intervMus[intervUuid]
	if !ok {
		m = &sync.Mutex{}
		s.intervMus[intervUuid] = m
	}
	s.mu.Unlock()
	m.Lock()
	return m.Unlock
}

func (s *IntervSrvc) getSession(intervUuid uuid.UUID) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[intervUuid]
}

func (s *IntervSrvc) dropSession(intervUuid uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, intervUuid)
}

func systemPromptFromTemplate(tmpl *tmplsrvc.Template) string {
	topicsText := "core concepts"
	if len(tmpl.Topics) > 0 {
		topicsText = strings.Join(tmpl.Topics, ", ")
	}
	return fmt.Sprintf(`
You are a senior technical interviewer conducting a %d-minute technical screening for a %s position.

TECHNICAL TOPICS TO ASSESS: %s
DIFFICULTY LEVEL: %s

CRITICAL INSTRUCTIONS:
1. Generate INTELLIGENT, VARIED technical questions that comprehensively assess the candidate's knowledge of: %s
2. Ask only ONE question at a time
3. For each topic, you can ask up to %d follow-up questions to probe deeper
4. Questions should be appropriate for %s level
5. Make questions practical, scenario-based, and relevant to real-world %s work
6. Do NOT provide answers, hints, or evaluations
7. Stay strictly on technical topics - do not entertain off-topic discussions
8. After assessing all topics, conclude the interview naturally without repeating questions
9. Vary your question types: conceptual, practical implementation, problem-solving, debugging, optimization

QUESTION TYPES TO USE:
- Conceptual: "Explain how X works and when you would use it"
- Practical: "How would you implement X in a real project?"
- Problem-solving: "Given scenario Y, how would you approach it using X?"
- Debugging: "What would you do if X is not working as expected?"
- Comparison: "How does X compare to Y in terms of performance/usability?"
- Best practices: "What are the key best practices when working with X?"

Your goal is to thoroughly assess the candidate's technical competence in %s.
`,
		tmpl.DurationMin, tmpl.Role, topicsText, tmpl.Difficulty, topicsText,
		MaxFollowupsPerTopic, tmpl.Difficulty, tmpl.Role, topicsText)
}

func dynamicSystemPrompt(role string) string {
	return fmt.Sprintf("You are an AI technical interviewer. Your persona is professional, encouraging, and focused. "+
		"You are conducting an adaptive interview for a %s position. "+
		"Your SOLE objective is to ask one concise, relevant follow-up question that directly builds on the candidate's most recent answer. "+
		"Do not introduce new topics, give answers, provide evaluations, or summarize their response.\n\n"+
		"Core rules:\n"+
		"If you are unclear with what the user has said, then dont try and predict what they are trying to say, instead ask them again"+
		"1. Analyze answer: Read the user's last reply and identify the most relevant claim, example, decision, or gap.\n"+
		"2. Ask exactly ONE follow-up question that continues the same point:\n"+
		"   - If the answer shows clear understanding or depth: ask a deeper, more complex or edge-case question about that same element.\n"+
		"   - If the answer is vague, incomplete, or unclear: ask a simpler clarifying or guiding question to prompt elaboration.\n"+
		"3. Stay on topic: Never change the subject. Every question must be a direct follow-up to content in the user's last message.\n"+
		"4. Handle off-topic replies: If the user's response is unrelated, politely redirect with a single follow-up.\n"+
		"5. Be brief and neutral: Keep the question conversational, 1-2 sentences, encouraging in tone.\n"+
		"6. No answers or hints: Do not provide solutions - only a question to elicit more detail.\n"+
		"7. Reference their text when helpful: You may include a short quoted fragment to ground the question.\n"+
		"8. Adjust difficulty implicitly: Probe deeper for signs of competence; ask for clarification when uncertain.\n"+
		"9. Professionalism and safety: Use neutral, inclusive language.\n"+
		"10. Output constraints: Return only the single follow-up question text (no preface, no explanation).\n", role)
}
