package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sortify-ai/backend/httpjson"
	"github.com/sortify-ai/backend/user"
)

func (h *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Username string  `json:"username"`
		Email    string  `json:"email"`
		Password string  `json:"password"`
		Role     string  `json:"role"`
		Company  *string `json:"company"`
	}

	type registerResponse struct {
		UUID     string  `json:"uuid"`
		Username string  `json:"username"`
		Email    string  `json:"email"`
		Role     string  `json:"role"`
		Company  *string `json:"company,omitempty"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
		Role:     request.Role,
		Company:  request.Company,
	})

	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := registerResponse{
		UUID:     created.UUID.String(),
		Username: created.Username,
		Email:    created.Email,
		Role:     created.Role,
		Company:  created.Company,
	}

	httpjson.WriteSuccessJson(w, response)
}
