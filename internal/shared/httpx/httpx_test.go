package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-service/internal/shared/apperr"
)

func doWrapped(t *testing.T, fn HandlerFunc) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	Wrap(fn).ServeHTTP(rec, req)
	var body ErrorBody
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestWrapMapsErrorCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperr.NotFound("Post"), 404, "NOT_FOUND"},
		{apperr.Invalid("bad input"), 400, "VALIDATION_ERROR"},
		{apperr.Unauthorized(), 401, "UNAUTHORIZED"},
		{ErrUnauthorized, 401, "UNAUTHORIZED"},
		{errors.New("anything else"), 400, "VALIDATION_ERROR"},
	}
	for _, c := range cases {
		rec, body := doWrapped(t, func(http.ResponseWriter, *http.Request) error {
			return c.err
		})
		assert.Equal(t, c.status, rec.Code, c.code)
		assert.True(t, body.Error)
		assert.Equal(t, c.code, body.Code)
	}
}

func TestWrapNoErrorWritesNothingExtra(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	Wrap(func(w http.ResponseWriter, _ *http.Request) error {
		WriteJSON(w, map[string]any{"ok": true}, http.StatusOK)
		return nil
	}).ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestDecodeMalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/x", strings.NewReader("{not json"))
	type payload struct {
		Content string `json:"content"`
	}
	_, err := Decode[payload](req)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.Code(err))
	assert.Equal(t, "Invalid request body", err.Error())
}

func TestDecodeValidBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/x", strings.NewReader(`{"content":"gm"}`))
	type payload struct {
		Content string `json:"content"`
	}
	p, err := Decode[payload](req)
	require.NoError(t, err)
	assert.Equal(t, "gm", p.Content)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/x", nil)
	assert.Empty(t, BearerToken(req))

	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", BearerToken(req))

	req.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, BearerToken(req))
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	rec := httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

	assert.Equal(t, 401, rec.Code)
	assert.False(t, called)
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	var gotErr error
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, gotErr = UserFromCtx(r)
	})
	rec := httptest.NewRecorder()
	OptionalAuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

	assert.Equal(t, 200, rec.Code)
	assert.ErrorIs(t, gotErr, ErrUnauthorized)
}

func TestUserRoundTrip(t *testing.T) {
	req := httptest.NewRequest("GET", "/x", nil)
	req = req.WithContext(WithUser(req.Context(), "0xabc"))
	addr, err := UserFromCtx(req)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", addr)
}
