package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookong/internal/shared/session"
	"bookong/pkg/token"
)

// Context key under which LoadSession stores the authenticated session.
const SessionKey = "session"

// LoginPath is where RequireSession sends anonymous requests.
const LoginPath = "/auth/login"

// LoadSession resolves the session cookie into a session.Session and
// attaches it to the request context. It never rejects a request: a
// missing or invalid cookie just leaves the request anonymous.
func LoadSession(cookieName string, tokens *token.Manager, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		sessionID, err := tokens.Parse(cookie)
		if err != nil {
			// Tampered or expired cookie, treat as anonymous.
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			if err != session.ErrNotFound {
				log.Error().Err(err).Msg("session store lookup failed")
			}
			c.Next()
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// RequireSession gates mutating endpoints: anonymous requests are
// redirected to the login page instead of being processed.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(SessionKey); !ok {
			c.Redirect(302, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession, or nil
// for anonymous requests.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
