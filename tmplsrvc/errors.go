package tmplsrvc

import (
	"net/http"

	"github.com/sortify-ai/backend/srvcerror"
)

const ErrCodeTemplateNotFound = "template_not_found"

func newErrTemplateNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTemplateNotFound,
		"interview template was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNotTemplateOwner = "not_template_owner"

func newErrNotTemplateOwner() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotTemplateOwner,
		"only the recruiter who created the template may modify it",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeTitleEmpty = "title_empty"

func newErrTitleEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleEmpty,
		"template title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTitleTooLong = "title_too_long"

func newErrTitleTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleTooLong,
		"template title is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeRoleEmpty = "role_empty"

func newErrRoleEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRoleEmpty,
		"template role must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeRoleTooLong = "role_too_long"

func newErrRoleTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRoleTooLong,
		"template role is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidDifficulty = "invalid_difficulty"

func newErrInvalidDifficulty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidDifficulty,
		"difficulty must be beginner, intermediate or advanced",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
