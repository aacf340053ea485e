package handler

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/service"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/session"
)

// AuthHandler owns the account endpoints: register, login, logout and the
// forgot-password placeholder.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Store
	logger   *slog.Logger
}

func NewAuthHandler(auth *service.AuthService, sessions *session.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}

// HandleRegister creates a new account.
//
// HTTP: POST /api/register
// Body: {"email": ..., "username": ..., "password": ...}
//
// A duplicate email answers 400 with the conflict message. No field-format
// validation beyond JSON well-formedness.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("register: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, statusResponse{Success: false, Message: "invalid JSON body"})
		return
	}

	if err := h.auth.Register(r.Context(), req.Email, req.Username, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Success: true, Message: "Conta criada com sucesso!"})
}

// HandleLogin authenticates the caller and opens a session.
//
// HTTP: POST /api/login
// Body: {"email": ..., "password": ...}
//
// The credential field is the email — not the username. On success the
// response carries is_admin and the session cookie; on bad credentials the
// answer is a plain 401 with no hint whether the email exists.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("login: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, statusResponse{Success: false, Message: "invalid JSON body"})
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Email, req.Password, clientIP(r))
	if err != nil {
		writeError(w, err)
		return
	}

	h.sessions.SetCookie(w, sess)

	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		IsAdmin bool   `json:"is_admin"`
	}{
		Success: true,
		Message: "Login successful",
		IsAdmin: sess.IsAdmin,
	})
}

// HandleLogout destroys the caller's session and clears the cookie.
//
// HTTP: POST /api/logout
// Runs behind session.Require, but works unconditionally either way.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.auth.Logout(cookie.Value)
	}
	session.ClearCookie(w)

	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}

// HandleForgotPassword is a placeholder: it always answers the same generic
// message, whether or not the email exists, and sends nothing.
//
// HTTP: POST /api/forgot-password
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	// Body errors are ignored on purpose — the answer is always the same.
	_ = json.NewDecoder(r.Body).Decode(&req)

	writeJSON(w, http.StatusOK, statusResponse{
		Success: true,
		Message: "Se o e-mail existir, você receberá instruções.",
	})
}

// clientIP returns the caller's address without the port. Behind the chi
// RealIP middleware, RemoteAddr already holds the proxy-reported client IP.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
