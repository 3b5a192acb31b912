package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test")

func TestJwtRoundTrip(t *testing.T) {
	userUuid := uuid.New()

	token, err := GenerateJWT(userUuid, "gophers", true, testJwtKey)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, testJwtKey)
	require.NoError(t, err)
	assert.Equal(t, userUuid.String(), claims.UUID)
	assert.Equal(t, "gophers", claims.Nickname)
	assert.True(t, claims.IsAdmin)
}

func TestJwtWrongKey(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "gophers", false, testJwtKey)
	require.NoError(t, err)

	_, err = ValidateJWT(token, []byte("other"))
	assert.Error(t, err)
}

func TestEmailTokenRoundTrip(t *testing.T) {
	token, err := GenerateEmailToken("team@example.com", testJwtKey)
	require.NoError(t, err)

	email, err := ValidateEmailToken(token, testJwtKey)
	require.NoError(t, err)
	assert.Equal(t, "team@example.com", email)
}

func TestEmailTokenRejectsSessionToken(t *testing.T) {
	// a session JWT must not pass as a verification token
	token, err := GenerateJWT(uuid.New(), "gophers", false, testJwtKey)
	require.NoError(t, err)

	_, err = ValidateEmailToken(token, testJwtKey)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	var seen *JwtClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := GetJwtAuthMiddleware(testJwtKey)(next)

	t.Run("Anonymous Request Passes With Nil Claims", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, seen)
	})

	t.Run("Valid Token Populates Claims", func(t *testing.T) {
		seen = nil
		userUuid := uuid.New()
		token, err := GenerateJWT(userUuid, "gophers", false, testJwtKey)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, seen)
		assert.Equal(t, userUuid.String(), seen.UUID)
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
