// Package admin exposes the authenticated editing surface: login, node and
// edge CRUD, and garden statistics.
package admin

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"digital-garden/backend/pkg/errors"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "admin_session"

// SessionTTL is how long a login stays valid.
const SessionTTL = 24 * time.Hour

// Auth issues and verifies stateless admin session tokens. A token embeds
// its issue timestamp and a truncated hash binding it to the password, so
// no server-side session store is needed; rotating the password invalidates
// every outstanding token.
type Auth struct {
	password string
	now      func() time.Time
}

// NewAuth creates an Auth for the configured admin password.
func NewAuth(password string) *Auth {
	return &Auth{password: password, now: time.Now}
}

func (a *Auth) signature(ts int64) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(ts, 10) + a.password))
	return hex.EncodeToString(sum[:])[:16]
}

// Login checks the password and returns a session token on success.
func (a *Auth) Login(password string) (string, error) {
	if a.password == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return "", errors.ErrAuthInvalidCredentials
	}
	ts := a.now().Unix()
	raw := fmt.Sprintf("%d:%s", ts, a.signature(ts))
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

// Verify checks a token's signature and age.
func (a *Auth) Verify(token string) error {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return errors.ErrAuthSessionExpired
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return errors.ErrAuthSessionExpired
	}
	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return errors.ErrAuthSessionExpired
	}
	if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(a.signature(ts))) != 1 {
		return errors.ErrAuthSessionExpired
	}
	issued := time.Unix(ts, 0)
	if a.now().Sub(issued) > SessionTTL || issued.After(a.now().Add(time.Minute)) {
		return errors.ErrAuthSessionExpired
	}
	return nil
}

// Middleware rejects requests without a valid session cookie.
func (a *Auth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || a.Verify(token) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}
		c.Next()
	}
}
