package proctorsrvc

import (
	"net/http"

	"github.com/sortify-ai/backend/srvcerror"
)

const ErrCodeInvalidImage = "invalid_image"

func newErrInvalidImage() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidImage,
		"snapshot image is missing or not a valid image",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
