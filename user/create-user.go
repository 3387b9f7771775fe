package user

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserParams struct {
	Username string
	Email    string
	Password string
	Role     string
	Company  *string
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (res *User, err error) {
	if p.Role == "" {
		p.Role = RoleCandidate
	}

	// Validate all fields
	if err := validateUsername(p.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}
	if err := validateRole(p.Role); err != nil {
		return nil, err
	}

	all, err := selectAllUsers(s.db)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, user := range all {
		// username must be unique
		if user.Username == p.Username {
			return nil, newErrUsernameExists()
		}
		// email must be unique
		if user.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := &dbUser{
		UUID:      uuid.New(),
		Username:  p.Username,
		Email:     p.Email,
		BcryptPwd: string(bcryptPwd),
		Role:      p.Role,
		CreatedAt: time.Now(),
	}
	// company only makes sense for recruiters
	if p.Role == RoleRecruiter && p.Company != nil {
		row.Company.Valid = true
		row.Company.String = *p.Company
	}

	err = insertUser(s.db, row)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return row.toUser(), nil
}

// Validation functions
func validateUsername(username string) error {
	const minUsernameLength = 2
	const maxUsernameLength = 32
	if len(username) < minUsernameLength {
		return newErrUsernameTooShort(minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return newErrUsernameTooLong()
	}
	return nil
}

func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) > maxEmailLength {
		return newErrEmailTooLong()
	}

	if len(email) == 0 {
		return newErrEmailEmpty()
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return newErrEmailInvalid()
	}

	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 8
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > 1024 {
		return newErrPasswordTooLong()
	}
	return nil
}

func validateRole(role string) error {
	if role != RoleCandidate && role != RoleRecruiter {
		return newErrInvalidRole()
	}
	return nil
}
