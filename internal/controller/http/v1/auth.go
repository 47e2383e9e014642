package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Token    string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseLoginRequest(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	h.log.DebugContext(r.Context(), "login attempt", slog.String("username", req.Username))

	token, id, err := h.authenticator.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		h.log.ErrorContext(r.Context(), "login failed", slog.String("err", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Login error: "+err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.opts.TokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Username: id.Username,
		IsAdmin:  id.IsAdmin,
		Token:    token,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

// Authenticate puts the caller identity into the request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.sessionToken(r)
		if token == "" {
			writeMessage(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		id, err := h.authenticator.Identify(token)
		if err != nil {
			h.log.DebugContext(r.Context(), "rejected session token", slog.String("err", err.Error()))
			h.clearSession(w)
			writeMessage(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		next.ServeHTTP(w, r.WithContext(domain.WithIdentity(r.Context(), id)))
	})
}

func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := domain.IdentityFromContext(r.Context())
		if !ok || !id.IsAdmin {
			writeMessage(w, http.StatusForbidden, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) sessionToken(r *http.Request) string {
	if c, err := r.Cookie(h.opts.CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(token)
	}

	return ""
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func parseLoginRequest(r *http.Request) (*LoginRequest, error) {
	req := &LoginRequest{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, errors.New("invalid login payload")
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, errors.New("invalid login form")
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	if req.Username == "" || req.Password == "" {
		return nil, errors.New("username and password are required")
	}

	return req, nil
}
