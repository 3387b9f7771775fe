package user

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type UserSrvc struct {
	logger *slog.Logger
	db     *sql.DB
}

func NewUserSrvc(db *sql.DB) *UserSrvc {
	return &UserSrvc{
		logger: slog.Default().With("module", "user"),
		db:     db,
	}
}

type dbUser struct {
	UUID      uuid.UUID
	Username  string
	Email     string
	BcryptPwd string
	Role      string
	Company   sql.NullString
	CreatedAt time.Time
}

func (row dbUser) toUser() *User {
	u := &User{
		UUID:     row.UUID,
		Username: row.Username,
		Email:    row.Email,
		Role:     row.Role,
	}
	if row.Company.Valid {
		company := row.Company.String
		u.Company = &company
	}
	return u
}

func selectAllUsers(db *sql.DB) ([]dbUser, error) {
	rows, err := db.Query(`
		SELECT uuid, username, email, bcrypt_pwd, role, company, created_at
		FROM users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []dbUser
	for rows.Next() {
		var user dbUser
		var uuidStr string
		err := rows.Scan(
			&uuidStr,
			&user.Username,
			&user.Email,
			&user.BcryptPwd,
			&user.Role,
			&user.Company,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		user.UUID, err = uuid.Parse(uuidStr)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func insertUser(db *sql.DB, user *dbUser) error {
	_, err := db.Exec(`
		INSERT INTO users (uuid, username, email, bcrypt_pwd, role, company, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		user.UUID.String(),
		user.Username,
		user.Email,
		user.BcryptPwd,
		user.Role,
		user.Company,
		user.CreatedAt,
	)
	return err
}

// GetUserByUUID returns the user with the given id.
func (s *UserSrvc) GetUserByUUID(userUuid uuid.UUID) (*User, error) {
	all, err := selectAllUsers(s.db)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	for _, row := range all {
		if row.UUID == userUuid {
			return row.toUser(), nil
		}
	}
	return nil, newErrUserNotFound()
}
