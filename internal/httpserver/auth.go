// internal/httpserver/auth.go
//
// Bearer-token auth for the assist API. With NYT_API_SECRET set, every
// session route requires a JWT minted by POST /api/auth/token, which trades
// the deploy's API key for a signed token. The key is checked against the
// bcrypt hash in NYT_API_KEY_HASH, generated with `nyt hashkey`.
// With no secret configured the API is open (local dev default).

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 72 * time.Hour

// authConfig carries the auth settings for one server.
type authConfig struct {
	secret  []byte // JWT signing secret; empty disables auth
	keyHash string // bcrypt hash of the API key
	ttl     time.Duration
}

// authFromEnv reads NYT_API_SECRET, NYT_API_KEY_HASH, and
// NYT_TOKEN_TTL_HOURS.
func authFromEnv() authConfig {
	cfg := authConfig{
		secret:  []byte(os.Getenv("NYT_API_SECRET")),
		keyHash: os.Getenv("NYT_API_KEY_HASH"),
		ttl:     defaultTokenTTL,
	}
	if v := os.Getenv("NYT_TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ttl = time.Duration(n) * time.Hour
		}
	}
	if cfg.enabled() && cfg.keyHash == "" {
		log.Warn().Msg("NYT_API_SECRET set but NYT_API_KEY_HASH unset; token endpoint will reject every key")
	}
	return cfg
}

func (a authConfig) enabled() bool { return len(a.secret) > 0 }

// mintToken signs an HS256 token for the assist API.
func (a authConfig) mintToken(now time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "assist",
		"iat": now.Unix(),
		"exp": now.Add(a.ttl).Unix(),
	})
	return t.SignedString(a.secret)
}

// verifyToken checks the signature, algorithm, and expiry of a bearer token.
func (a authConfig) verifyToken(token string) error {
	t, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return err
	}
	if !t.Valid {
		return errors.New("invalid token")
	}
	return nil
}

type tokenReq struct {
	Key string `json:"key"`
}
type tokenRes struct {
	Token string `json:"token"`
}

// handleToken trades the API key for a signed bearer token.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if s.auth.keyHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(s.auth.keyHash), []byte(req.Key)) != nil {
		writeErr(w, http.StatusUnauthorized, "invalid API key")
		return
	}
	tok, err := s.auth.mintToken(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeErr(w, http.StatusInternalServerError, "token signing failed")
		return
	}
	writeJSON(w, http.StatusOK, tokenRes{Token: tok})
}
