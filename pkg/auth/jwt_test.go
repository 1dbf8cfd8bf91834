package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/reviewlens/config"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			Secret: "test-secret",
		},
	}

	token := GenerateJWT(cfg)

	// Validate the generated token
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.Auth.Secret), nil
	})

	if assert.NoError(t, err) {
		assert.True(t, parsedToken.Valid)
	}
}

func TestJWTVerifier(t *testing.T) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			Secret: "test-secret",
		},
	}
	router := chi.NewRouter()
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Use(JWTVerifier(cfg))
	router.Use(jwtauth.Authenticator(TokenAuth(cfg)))
	router.Handle("/", testHandler)

	t.Run("valid JWT token", func(t *testing.T) {
		tokenAuth := jwtauth.New(JwtAlg, []byte(cfg.Auth.Secret), nil)
		_, tokenString, err := tokenAuth.Encode(nil)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid JWT token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing JWT token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
