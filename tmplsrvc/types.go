package tmplsrvc

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Template describes a recruiter-authored interview: which role it
// screens for, which topics to walk through and at what difficulty.
type Template struct {
	UUID        uuid.UUID
	CreatedBy   uuid.UUID
	Title       string
	Role        string
	Description string
	Difficulty  string
	DurationMin int
	Topics      []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
