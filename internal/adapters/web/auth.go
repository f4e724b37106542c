package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"binder/internal/app"
	"binder/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

type authClaimsKey struct{}

// AuthClaims holds the authenticated user's identity extracted from the JWT.
type AuthClaims struct {
	UserID string
	Role   auth.Role
}

// authFromContext returns the auth claims stored in ctx, or nil.
func authFromContext(ctx context.Context) *AuthClaims {
	v, _ := ctx.Value(authClaimsKey{}).(*AuthClaims)
	return v
}

// jwtClaims is the JWT payload struct used for signing and parsing.
type jwtClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth is chi middleware that validates the auth_token cookie and
// injects AuthClaims into the request context. Returns 401 if the token is
// absent or invalid.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("auth_token")
		if err != nil {
			writeError(w, r, "authentication required", "UNAUTHORIZED", http.StatusUnauthorized)
			return
		}

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(h.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			writeError(w, r, "invalid or expired token", "UNAUTHORIZED", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsKey{}, &AuthClaims{
			UserID: claims.UserID,
			Role:   auth.Role(claims.Role),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/auth/login, the generic any-account login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.svc.AuthenticateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, auth.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, r, err.Error(), "UNAUTHORIZED", status)
		return
	}

	h.issueSession(w, r, session)
}

// loginRole handles POST /api/auth/login/{role}, the role-specific logins.
func (h *Handler) loginRole(w http.ResponseWriter, r *http.Request) {
	role := auth.Role(chi.URLParam(r, "role"))
	if !role.Valid() {
		writeError(w, r, "unknown role", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.svc.AuthenticateRole(r.Context(), role, req.Email, req.Password)
	if err != nil {
		msg := roleLoginMessage(role, err)
		writeError(w, r, msg, "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}

	h.issueSession(w, r, session)
}

// roleLoginMessage maps role-login failures to the user-facing wording.
func roleLoginMessage(role auth.Role, err error) string {
	switch {
	case errors.Is(err, auth.ErrRoleEmailMismatch):
		return fmt.Sprintf("Invalid %s credentials.", role.DisplayName())
	case errors.Is(err, auth.ErrRolePassword):
		return fmt.Sprintf("Incorrect password for %s.", role.DisplayName())
	default:
		return err.Error()
	}
}

// issueSession signs the JWT cookie and echoes the session payload.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, session *app.SessionResult) {
	signed, err := h.signToken(session.User.ID, session.User.Role)
	if err != nil {
		writeError(w, r, "failed to create session", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   3600,
	})
	writeJSON(w, session)
}

// logout handles POST /api/auth/logout and clears the auth cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
	writeJSON(w, map[string]string{"message": "Logout successful"})
}

// me handles GET /api/auth/me. Returns the current user's profile and the
// role-specific welcome line.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	if claims == nil {
		writeError(w, r, "not authenticated", "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}

	user, err := h.svc.GetUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, "user not found", "NOT_FOUND", http.StatusNotFound)
		return
	}

	type meResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Role        string `json:"role"`
		RoleLabel   string `json:"roleLabel"`
		WelcomeLine string `json:"welcomeLine"`
	}
	writeJSON(w, meResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		RoleLabel:   user.Role.DisplayName(),
		WelcomeLine: user.WelcomeLine(),
	})
}

// credentials handles GET /api/auth/credentials: the demo credential
// catalogue the login form autofills from.
func (h *Handler) credentials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.DemoCredentials())
}

// signToken builds the signed JWT for an authenticated user.
func (h *Handler) signToken(userID string, role auth.Role) (string, error) {
	claims := &jwtClaims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
