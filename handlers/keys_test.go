package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textvault/textvault/pkg/middleware"
)

func TestValidateOTP(t *testing.T) {
	g := newTestRouter()

	// missing token
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/otp/validate", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	// wrong token: still 200, isValid=0
	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/otp/validate?token=000000", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, 0, body["isValid"])
	require.Contains(t, body, "timestamp")

	// valid token
	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/otp/validate?token="+validToken(t), nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, 1, body["isValid"])
}

func TestCreateKey(t *testing.T) {
	g := newTestRouter()

	// no token
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/keys", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// invalid token
	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/keys?token=000000", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token: array-of-one with id, key and the legacy __v marker
	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/keys?token="+validToken(t), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Regexp(t, regexp.MustCompile(`^0x[0-9a-f]{6}$`), out[0]["id"])
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), out[0]["key"])
	require.EqualValues(t, 0, out[0]["__v"])
}

func TestListKeys(t *testing.T) {
	g := newTestRouter()
	id, secret := issueKey(t, g)

	// unauthenticated
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/keys", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// authenticated
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/keys", nil)
	req.Header.Set(middleware.HeaderAPIKey, secret)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Equal(t, id, out[0]["id"])
	// wire shape is exactly {id, key}; no stray fields
	require.Len(t, out[0], 2)
	require.NotContains(t, out[0], "secret")
}

func TestDeleteKey(t *testing.T) {
	g := newTestRouter()
	id, secret := issueKey(t, g)
	_, otherSecret := issueKey(t, g)

	// deleting an id that was never issued is a 400 and leaves other keys intact
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/keys/0xffffff", nil)
	req.Header.Set(middleware.HeaderAPIKey, secret)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// both issued keys still authenticate
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/keys", nil)
	req.Header.Set(middleware.HeaderAPIKey, otherSecret)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// delete the first key using the second
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/keys/"+id, nil)
	req.Header.Set(middleware.HeaderAPIKey, otherSecret)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// the deleted key no longer authenticates
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/keys", nil)
	req.Header.Set(middleware.HeaderAPIKey, secret)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
