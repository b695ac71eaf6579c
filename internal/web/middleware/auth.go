package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/service"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "blog_session"

	userContextKey    = "user"
	sessionContextKey = "session"
)

// Authenticate resolves the session cookie to a user on every request.
// A missing or stale cookie leaves the request anonymous; a live session
// whose user record has vanished fails the request with 404.
func Authenticate(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Next()
			return
		}

		user, session, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
				c.HTML(http.StatusNotFound, "error", gin.H{
					"Title":   "Not Found",
					"Message": "The user for this session no longer exists.",
				})
				c.Abort()
				return
			}
			c.HTML(http.StatusInternalServerError, "error", gin.H{
				"Title":   "Error",
				"Message": "Something went wrong. Please try again.",
			})
			c.Abort()
			return
		}

		if user != nil {
			c.Set(userContextKey, user)
			c.Set(sessionContextKey, session)
		}
		c.Next()
	}
}

// LoginRequired guards a route group: anonymous clients are redirected to
// the login page before the handler body runs.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the request context.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// CurrentSession retrieves the session from the request context.
func CurrentSession(c *gin.Context) (*domain.Session, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*domain.Session)
	return session, ok
}
