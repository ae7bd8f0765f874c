package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authhandler "consentd/internal/auth/handler"
	authservice "consentd/internal/auth/service"
	userstore "consentd/internal/auth/store/user"
	consenthandler "consentd/internal/consent/handler"
	consentservice "consentd/internal/consent/service"
	consentstore "consentd/internal/consent/store"
	"consentd/internal/jwttoken"
	"consentd/internal/platform/health"
	"consentd/pkg/secrets"
)

// newTestRouter wires the full HTTP surface over in-memory stores, the same
// composition main performs against Postgres.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := slog.Default()
	jwtService := jwttoken.NewJWTService("test-signing-key", 0)

	authSvc := authservice.NewService(userstore.New(), secrets.NewHasher(4), jwtService, log)
	consentSvc := consentservice.NewService(consentstore.New(), log)

	return NewRouter(Deps{
		Auth:      authhandler.New(authSvc, log),
		Consent:   consenthandler.New(consentSvc, log),
		Health:    health.New(),
		Validator: jwttoken.NewJWTServiceAdapter(jwtService),
		Logger:    log,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginConsentLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Register and exchange credentials for a token.
	w := doJSON(t, router, http.MethodPost, "/register", "", `{"username":"alice","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User registered"}`, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/login", "", `{"username":"alice","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// Create a record and walk it through its full lifecycle.
	w = doJSON(t, router, http.MethodPost, "/api/v1/consent", login.Token, `{"text":"I agree"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Message string `json:"message"`
		Consent struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"consent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Consent created", created.Message)
	assert.Equal(t, "I agree", created.Consent.Text)
	require.NotEmpty(t, created.Consent.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/consent", login.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.Consent.ID, list[0].ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/consent/"+created.Consent.ID, login.Token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/consent/"+created.Consent.ID, login.Token, `{"text":"I changed my mind"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Message string `json:"message"`
		Consent struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"consent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Consent updated", updated.Message)
	assert.Equal(t, created.Consent.ID, updated.Consent.ID, "id is stable across updates")
	assert.Equal(t, "I changed my mind", updated.Consent.Text)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/consent/"+created.Consent.ID, login.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Consent deleted"}`, w.Body.String())

	// Gone for good.
	w = doJSON(t, router, http.MethodGet, "/api/v1/consent/"+created.Consent.ID, login.Token, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Consent not found"}`, w.Body.String())
}

func TestAuthGate(t *testing.T) {
	router := newTestRouter(t)

	t.Run("missing token is unauthorized", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/consent", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
	})

	t.Run("tampered token is forbidden", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/consent", "tampered.token.value", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
	})

	t.Run("token signed elsewhere is forbidden", func(t *testing.T) {
		foreign := jwttoken.NewJWTService("other-key", 0)
		token, err := foreign.GenerateToken("alice")
		require.NoError(t, err)

		w := doJSON(t, router, http.MethodGet, "/api/v1/consent", token, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("register and login stay public", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/register", "", `{"username":"bob","password":"pw"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/register", "", `{"username":"alice","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)

	testCases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"alice","password":"nope"}`},
		{"unknown user", `{"username":"nobody","password":"pw"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/login", "", tc.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"message":"Invalid username or password"}`, w.Body.String())
		})
	}
}

func TestDuplicateRegistrationIsOpaque(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/register", "", `{"username":"alice","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/register", "", `{"username":"alice","password":"other"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error registering user"}`, w.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContentTypeEnforcement(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"a","password":"b"}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
