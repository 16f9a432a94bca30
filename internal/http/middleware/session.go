package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const sessionContextKey = "festaudit.session"

// SessionStore is the part of the app service the middleware needs.
type SessionStore interface {
	NewSession() uuid.UUID
	TouchSession(id uuid.UUID) bool
}

type TokenIssuer interface {
	Issue(sessionID uuid.UUID) (string, error)
}

type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

type CookieOptions struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Session binds every request to a view-state session. A missing, invalid
// or expired cookie starts a fresh logged-out session. A live session has
// its expiry extended and its cookie re-issued, so it ends only after MaxAge
// without requests.
func Session(store SessionStore, issuer TokenIssuer, parser TokenParser, opts CookieOptions, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(opts.Name); err == nil && raw != "" {
			if id, err := parser.Parse(raw); err == nil && store.TouchSession(id) {
				if err := setSessionCookie(c, issuer, id, opts); err != nil {
					// The old cookie stays valid until it expires.
					log.Warn().Err(err).Msg("refresh session token")
				}
				c.Set(sessionContextKey, id)
				c.Next()
				return
			}
		}

		id := store.NewSession()
		if err := setSessionCookie(c, issuer, id, opts); err != nil {
			log.Error().Err(err).Msg("issue session token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

func setSessionCookie(c *gin.Context, issuer TokenIssuer, id uuid.UUID, opts CookieOptions) error {
	token, err := issuer.Issue(id)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.Name, token, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)
	return nil
}

func MustSession(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get(sessionContextKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
