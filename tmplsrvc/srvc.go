package tmplsrvc

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type TemplateSrvc struct {
	logger *slog.Logger
	db     *sql.DB
}

func NewTemplateSrvc(db *sql.DB) *TemplateSrvc {
	return &TemplateSrvc{
		logger: slog.Default().With("module", "tmpl"),
		db:     db,
	}
}

const selectCols = `uuid, created_by, title, role, description,
	difficulty, duration_min, topics, is_active, created_at, updated_at`

func scanTemplate(scan func(dest ...any) error) (*Template, error) {
	var t Template
	var uuidStr, createdByStr, topicsJson string
	err := scan(
		&uuidStr,
		&createdByStr,
		&t.Title,
		&t.Role,
		&t.Description,
		&t.Difficulty,
		&t.DurationMin,
		&topicsJson,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if t.UUID, err = uuid.Parse(uuidStr); err != nil {
		return nil, err
	}
	if t.CreatedBy, err = uuid.Parse(createdByStr); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(topicsJson), &t.Topics); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TemplateSrvc) Get(tmplUuid uuid.UUID) (*Template, error) {
	row := s.db.QueryRow(`SELECT `+selectCols+` FROM templates WHERE uuid = ?`,
		tmplUuid.String())
	t, err := scanTemplate(row.Scan)
	if err == sql.ErrNoRows {
		return nil, newErrTemplateNotFound()
	}
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return t, nil
}

func (s *TemplateSrvc) listWhere(where string, args ...any) ([]Template, error) {
	rows, err := s.db.Query(`SELECT `+selectCols+` FROM templates `+where+
		` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	defer rows.Close()

	var tmpls []Template
	for rows.Next() {
		t, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		tmpls = append(tmpls, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return tmpls, nil
}

// ListByOwner returns all templates the recruiter has created.
func (s *TemplateSrvc) ListByOwner(owner uuid.UUID) ([]Template, error) {
	return s.listWhere(`WHERE created_by = ?`, owner.String())
}

// ListActive returns the templates candidates may start an interview from.
func (s *TemplateSrvc) ListActive() ([]Template, error) {
	return s.listWhere(`WHERE is_active = 1`)
}

func marshalTopics(topics []string) string {
	if topics == nil {
		topics = []string{}
	}
	b, _ := json.Marshal(topics)
	return string(b)
}

func now() time.Time {
	return time.Now()
}
