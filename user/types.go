package user

import "github.com/google/uuid"

const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type User struct {
	UUID     uuid.UUID
	Username string
	Email    string
	Role     string
	Company  *string
}
