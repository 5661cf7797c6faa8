package handler

import (
	"errors"
	"net/http"

	admindomain "gymdesk/internal/domain/admin"
	"gymdesk/internal/transport/httpserver/middleware"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	a, err := h.Admins.Register(r.Context(), admindomain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, admindomain.ErrAdminExists) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeServiceError(w, err, "auth: register failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "admin registered successfully",
		"user":    adminResponse{ID: a.ID, Name: a.Name, Email: a.Email},
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	a, err := h.Admins.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admindomain.ErrAdminNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, admindomain.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, "invalid credentials")
		default:
			h.writeServiceError(w, err, "auth: login failed")
		}
		return
	}

	token, err := h.tokens.Issue(a.ID, a.Email)
	if err != nil {
		h.writeServiceError(w, err, "auth: token issue failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "login successful",
		"user":    adminResponse{ID: a.ID, Name: a.Name, Email: a.Email},
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "logged out successfully",
	})
}

// writeServiceError hides storage details from the caller but keeps them in
// the server log.
func (h *Handlers) writeServiceError(w http.ResponseWriter, err error, logMessage string) {
	h.log.Error(logMessage, "err", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
