package intervsrvc

import (
	"fmt"
	"net/http"

	"github.com/sortify-ai/backend/srvcerror"
)

const ErrCodeInterviewNotFound = "interview_not_found"

func newErrInterviewNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInterviewNotFound,
		"interview was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInterviewSuspended = "interview_suspended"

func newErrInterviewSuspended(reason string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInterviewSuspended,
		fmt.Sprintf("interview suspended: %s", reason),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInterviewCompleted = "interview_completed"

func newErrInterviewCompleted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInterviewCompleted,
		"interview is already completed",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInterviewTimeExpired = "interview_time_expired"

func newErrInterviewTimeExpired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInterviewTimeExpired,
		"interview time has expired",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmptyAnswer = "empty_answer"

func newErrEmptyAnswer() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmptyAnswer,
		"answer must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAccessDenied = "access_denied"

func newErrAccessDenied() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAccessDenied,
		"you do not have access to this interview",
	).SetHttpStatusCode(http.StatusForbidden)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
