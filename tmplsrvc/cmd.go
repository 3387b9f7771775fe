package tmplsrvc

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type CreateParams struct {
	CreatedBy   uuid.UUID
	Title       string
	Role        string
	Description string
	Difficulty  string
	DurationMin int
	Topics      []string
}

func (s *TemplateSrvc) Create(ctx context.Context, p CreateParams) (*Template, error) {
	if p.Difficulty == "" {
		p.Difficulty = DifficultyIntermediate
	}
	if p.DurationMin <= 0 {
		p.DurationMin = 30
	}
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}
	if err := validateRole(p.Role); err != nil {
		return nil, err
	}
	if err := validateDifficulty(p.Difficulty); err != nil {
		return nil, err
	}

	t := &Template{
		UUID:        uuid.New(),
		CreatedBy:   p.CreatedBy,
		Title:       p.Title,
		Role:        p.Role,
		Description: p.Description,
		Difficulty:  p.Difficulty,
		DurationMin: p.DurationMin,
		Topics:      p.Topics,
		IsActive:    true,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (uuid, created_by, title, role, description,
			difficulty, duration_min, topics, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.UUID.String(), t.CreatedBy.String(), t.Title, t.Role, t.Description,
		t.Difficulty, t.DurationMin, marshalTopics(t.Topics), t.IsActive,
		t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return t, nil
}

type UpdateParams struct {
	Title       *string
	Role        *string
	Description *string
	Difficulty  *string
	DurationMin *int
	Topics      []string // nil leaves topics unchanged
	IsActive    *bool
}

func (s *TemplateSrvc) Update(ctx context.Context, tmplUuid uuid.UUID, byUser uuid.UUID, p UpdateParams) (*Template, error) {
	t, err := s.Get(tmplUuid)
	if err != nil {
		return nil, err
	}
	if t.CreatedBy != byUser {
		return nil, newErrNotTemplateOwner()
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Role != nil {
		t.Role = *p.Role
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Difficulty != nil {
		t.Difficulty = *p.Difficulty
	}
	if p.DurationMin != nil {
		t.DurationMin = *p.DurationMin
	}
	if p.Topics != nil {
		t.Topics = p.Topics
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}

	if err := validateTitle(t.Title); err != nil {
		return nil, err
	}
	if err := validateRole(t.Role); err != nil {
		return nil, err
	}
	if err := validateDifficulty(t.Difficulty); err != nil {
		return nil, err
	}

	t.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx, `
		UPDATE templates SET title = ?, role = ?, description = ?,
			difficulty = ?, duration_min = ?, topics = ?, is_active = ?,
			updated_at = ?
		WHERE uuid = ?
	`,
		t.Title, t.Role, t.Description, t.Difficulty, t.DurationMin,
		marshalTopics(t.Topics), t.IsActive, t.UpdatedAt, t.UUID.String())
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return t, nil
}

func (s *TemplateSrvc) Delete(ctx context.Context, tmplUuid uuid.UUID, byUser uuid.UUID) error {
	t, err := s.Get(tmplUuid)
	if err != nil {
		return err
	}
	if t.CreatedBy != byUser {
		return newErrNotTemplateOwner()
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM templates WHERE uuid = ?`, tmplUuid.String())
	if err != nil {
		return newErrInternalSE().SetDebug(err)
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return newErrTitleEmpty()
	}
	if len(title) > 200 {
		return newErrTitleTooLong()
	}
	return nil
}

func validateRole(role string) error {
	if strings.TrimSpace(role) == "" {
		return newErrRoleEmpty()
	}
	if len(role) > 200 {
		return newErrRoleTooLong()
	}
	return nil
}

func validateDifficulty(difficulty string) error {
	switch difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return nil
	}
	return newErrInvalidDifficulty()
}
