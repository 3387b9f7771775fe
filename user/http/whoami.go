package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/sortify-ai/backend/httpjson"
	"github.com/sortify-ai/backend/user/auth"
)

type User struct {
	UUID     string  `json:"uuid"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Company  *string `json:"company,omitempty"`
}

func (h *UserHttpHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		httpjson.HandleError(slog.Default(), w, errors.New("not authenticated"))
		return
	}

	userUuid, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	user, err := h.userSrvc.GetUserByUUID(userUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, User{
		UUID:     user.UUID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Company:  user.Company,
	})
}
