package api

import (
	"net/http"
	"strings"

	"cityhive/core"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// createUser registers a new beekeeper account
func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := a.decodeJSONBody(w, r, &req); err != nil {
		return
	}

	input := core.UserRegistrationInput{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	result := a.users.RegisterUser(r.Context(), input)
	if !result.Success {
		writeError(w, statusForUserError(result.ErrorKind), result.Message, nil, a.logger)
		return
	}

	a.respondJSON(w, map[string]any{"user": result.Entity}, http.StatusCreated)
}
