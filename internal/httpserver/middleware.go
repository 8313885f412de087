package httpserver

import (
	"pastelaria/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "pastelaria_session"
	sessionContextKey = "session"
	requestIDHeader   = "X-Request-ID"
)

// requestIDMiddleware echoes the caller's request id or generates one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// sessionMiddleware resolves the session cookie into a session copy for the
// request. Handlers mutate the copy and write it back through the manager.
func sessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err == nil && token != "" {
			if sess, ok := sessions.Get(token); ok {
				c.Set(sessionContextKey, sess)
			}
		}
		c.Next()
	}
}

// currentSession returns the request's session, or nil when the browser has
// none.
func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, ok := v.(session.Session)
	if !ok {
		return nil
	}
	return &sess
}
