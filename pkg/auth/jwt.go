package auth

import (
	"log"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/reviewlens/reviewlens/config"
)

const JwtAlg = "HS256"

// GenerateJWT generates a JWT token using the given config.
// Requires that REVIEWLENS_AUTH_SECRET is set in the environment.
func GenerateJWT(cfg *config.Config) string {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		log.Fatal("Auth secret not set. Ensure REVIEWLENS_AUTH_SECRET is set in your environment.")
	}

	tokenAuth := jwtauth.New(JwtAlg, secret, nil)
	_, tokenString, err := tokenAuth.Encode(nil)
	if err != nil {
		log.Fatal("Error generating auth token: ", err)
	}

	return tokenString
}

// TokenAuth builds the JWTAuth used by both the verifier and authenticator
// middleware. Requires that REVIEWLENS_AUTH_SECRET is set in the environment.
func TokenAuth(cfg *config.Config) *jwtauth.JWTAuth {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		log.Fatal("Auth secret not set. Ensure REVIEWLENS_AUTH_SECRET is set in your environment.")
	}
	return jwtauth.New(JwtAlg, secret, nil)
}

func JWTVerifier(cfg *config.Config) func(http.Handler) http.Handler {
	return jwtauth.Verifier(TokenAuth(cfg))
}
