package intervsrvc_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sortify-ai/backend/evalsrvc"
	"github.com/sortify-ai/backend/intervsrvc"
	"github.com/sortify-ai/backend/ollama"
	"github.com/sortify-ai/backend/sqlitedb"
	"github.com/sortify-ai/backend/tmplsrvc"
	"github.com/sortify-ai/backend/user"
)

// fakeChat is a scripted ChatClient standing in for Ollama.
type fakeChat struct {
	tokens []string
	err    error
	// convo captures the messages of the last call.
	convo []ollama.Message
}

func (f *fakeChat) Chat(ctx context.Context, messages []ollama.Message, onToken func(token string)) (string, error) {
	f.convo = messages
	if f.err != nil {
		return "", f.err
	}
	var full string
	for _, token := range f.tokens {
		full += token
		if onToken != nil {
			onToken(token)
		}
	}
	return full, nil
}

func newTestDb(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlitedb.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestUser(t *testing.T, db *sql.DB, username string) uuid.UUID {
	t.Helper()
	userSrvc := user.NewUserSrvc(db)
	u, err := userSrvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return u.UUID
}

func newTestRecruiter(t *testing.T, db *sql.DB, username string) uuid.UUID {
	t.Helper()
	userSrvc := user.NewUserSrvc(db)
	company := "Acme"
	u, err := userSrvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
		Role:     user.RoleRecruiter,
		Company:  &company,
	})
	require.NoError(t, err)
	return u.UUID
}

func newTestTemplate(t *testing.T, db *sql.DB, owner uuid.UUID, topics []string) *tmplsrvc.Template {
	t.Helper()
	tmplSrvc := tmplsrvc.NewTemplateSrvc(db)
	tmpl, err := tmplSrvc.Create(context.Background(), tmplsrvc.CreateParams{
		CreatedBy:   owner,
		Title:       "Backend screening",
		Role:        "Backend Developer",
		Difficulty:  tmplsrvc.DifficultyIntermediate,
		DurationMin: 30,
		Topics:      topics,
	})
	require.NoError(t, err)
	return tmpl
}

type testEnv struct {
	db       *sql.DB
	tmplSrvc *tmplsrvc.TemplateSrvc
	srvc     *intervsrvc.IntervSrvc
	chat     *fakeChat
}

func newTestEnv(t *testing.T, duration time.Duration) *testEnv {
	t.Helper()
	db := newTestDb(t)
	tmplSrvc := tmplsrvc.NewTemplateSrvc(db)
	chat := &fakeChat{tokens: []string{"Tell me ", "more."}}
	srvc := intervsrvc.NewIntervSrvc(db, tmplSrvc,
		evalsrvc.NewEvalSrvc(nil), chat, duration)
	return &testEnv{db: db, tmplSrvc: tmplSrvc, srvc: srvc, chat: chat}
}
