package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"social-service/internal/shared/apperr"
	"social-service/internal/shared/jwt"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorBody is the wire shape for every failed request.
type ErrorBody struct {
	Error   bool   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ctxKey string

const ctxUserKey ctxKey = "httpx.user_address"

var ErrUnauthorized = errors.New("unauthorized")

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, err error) {
	code := apperr.Code(err)
	status := http.StatusBadRequest
	switch code {
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeUnauthorized:
		status = http.StatusUnauthorized
	}
	WriteJSON(w, ErrorBody{Error: true, Code: code, Message: err.Error()}, status)
}

func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			if errors.Is(err, ErrUnauthorized) {
				err = apperr.Unauthorized()
			}
			WriteError(w, err)
		}
	})
}

// Decode parses a JSON body, converting parse failures to validation errors
// so malformed bodies never surface as raw decoder messages.
func Decode[T any](r *http.Request) (T, error) {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		return t, apperr.Invalid("Invalid request body")
	}
	return t, nil
}

func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := BearerToken(r)
		if tok == "" {
			WriteError(w, apperr.Unauthorized())
			return
		}
		addr, err := jwt.Parse(tok)
		if err != nil || addr == "" {
			WriteError(w, apperr.Unauthorized())
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), addr)))
	})
}

// OptionalAuthMiddleware attaches the caller address when a valid token is
// present but lets anonymous requests through. Handlers that need the
// identity for a particular query mode check UserFromCtx themselves.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok := BearerToken(r); tok != "" {
			if addr, err := jwt.Parse(tok); err == nil && addr != "" {
				r = r.WithContext(WithUser(r.Context(), addr))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func WithUser(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, ctxUserKey, addr)
}

func UserFromCtx(r *http.Request) (string, error) {
	addr, _ := r.Context().Value(ctxUserKey).(string)
	if addr == "" {
		return "", ErrUnauthorized
	}
	return addr, nil
}
