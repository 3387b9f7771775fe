package intervsrvc

import (
	"time"

	"github.com/google/uuid"
)

// Mode selects how the next question is chosen.
type Mode string

const (
	// ModeTemplate walks the topics of a recruiter-authored template,
	// with a bounded number of follow-ups per topic.
	ModeTemplate Mode = "template"
	// ModeDynamic lets a local Ollama model ask one follow-up per
	// answer, streamed token by token.
	ModeDynamic Mode = "dynamic"
	// ModeDefault adapts the question family to the score of the last
	// answer.
	ModeDefault Mode = "default"
)

// MaxFollowupsPerTopic bounds how deep a template-mode interview digs
// into a single topic before moving on.
const MaxFollowupsPerTopic = 2

// Interview is the persisted state of one interview session.
type Interview struct {
	UUID         uuid.UUID
	UserUuid     uuid.UUID
	TemplateUuid *uuid.UUID
	Role         string
	Mode         Mode

	Transcript  string
	FinalReport string
	FinalScore  *float64
	DurationMin *int

	Completed     bool
	Suspended     bool
	SuspendReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimeStatus reports the session clock to the frontend.
type TimeStatus struct {
	TimeRemaining float64
	TotalTime     float64
	Suspended     bool
	Completed     bool
}

// TemplateAnalytics aggregates completed interviews of one template for
// the recruiter dashboard.
type TemplateAnalytics struct {
	TemplateUuid    uuid.UUID
	TotalCandidates int
	AvgScore        float64
	SuspendedCount  int
}
