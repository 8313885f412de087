package httpserver

import (
	"net/http"

	"pastelaria/internal/session"
	"github.com/gin-gonic/gin"
)

// guardResult is the outcome of one guard check: either an allow, or a deny
// carrying the HTTP status, the place the client should go instead, and a
// user-facing notice.
type guardResult struct {
	allowed  bool
	status   int
	redirect string
	notice   string
}

func allowResult() guardResult {
	return guardResult{allowed: true}
}

func denyResult(status int, redirect, notice string) guardResult {
	return guardResult{status: status, redirect: redirect, notice: notice}
}

// guard is a predicate over the current session. Guards read only session
// state; they never touch the database.
type guard func(s *session.Session) guardResult

// authenticated requires a customer identity in the session.
func authenticated(s *session.Session) guardResult {
	if s.Authenticated() {
		return allowResult()
	}
	return denyResult(http.StatusUnauthorized, "/login", "you need to be logged in to access this page")
}

// administrator requires the admin flag cached in the session at login time.
// It denies regardless of authentication state.
func administrator(s *session.Session) guardResult {
	if s != nil && s.IsAdmin {
		return allowResult()
	}
	return denyResult(http.StatusForbidden, "/", "restricted to administrators")
}

// requireGuards runs the guards in order before the handler, short-circuiting
// on the first deny.
func requireGuards(guards ...guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		for _, g := range guards {
			if res := g(sess); !res.allowed {
				c.AbortWithStatusJSON(res.status, gin.H{
					"error":    res.notice,
					"redirect": res.redirect,
				})
				return
			}
		}
		c.Next()
	}
}
