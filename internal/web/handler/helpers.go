package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gyorgy-s/our-blog-webapp/internal/web/middleware"
)

const flashCookie = "blog_flash"

// setFlash queues a one-shot message shown on the next rendered page.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}

// baseData builds the template data every page needs: title, the current
// user (if any) and a pending flash message.
func baseData(c *gin.Context, title string) gin.H {
	data := gin.H{
		"Title": title,
		"Flash": takeFlash(c),
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data["User"] = user
	}
	return data
}

// RenderError renders the error page with the given status.
func RenderError(c *gin.Context, status int, title, message string) {
	data := baseData(c, title)
	data["Message"] = message
	c.HTML(status, "error", data)
}
