package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/service"
	"github.com/gyorgy-s/our-blog-webapp/internal/web/form"
	"github.com/gyorgy-s/our-blog-webapp/internal/web/middleware"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterForm handles GET /register.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	h.renderRegister(c, &form.Register{}, nil, "")
}

// RegisterSubmit handles POST /register and redirects to the login page
// on success.
func (h *AuthHandler) RegisterSubmit(c *gin.Context) {
	var f form.Register
	if err := c.ShouldBind(&f); err != nil {
		RenderError(c, http.StatusBadRequest, "Bad Request", "Could not read the submitted form.")
		return
	}

	if errs := f.Validate(); errs != nil {
		h.renderRegister(c, &f, errs, "")
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), f.Name, f.Email, f.Password); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			h.renderRegister(c, &f, nil, "Name or email already taken.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Error", "Failed to register. Please try again.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) renderRegister(c *gin.Context, f *form.Register, errs map[string]string, errMsg string) {
	data := baseData(c, "Register")
	data["Form"] = f
	data["Errors"] = errs
	data["Error"] = errMsg
	c.HTML(http.StatusOK, "register", data)
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.renderLogin(c, &form.Login{}, nil, "")
}

// LoginSubmit handles POST /login. A successful login sets the session
// cookie and redirects home.
func (h *AuthHandler) LoginSubmit(c *gin.Context) {
	var f form.Login
	if err := c.ShouldBind(&f); err != nil {
		RenderError(c, http.StatusBadRequest, "Bad Request", "Could not read the submitted form.")
		return
	}

	if errs := f.Validate(); errs != nil {
		h.renderLogin(c, &f, errs, "")
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), f.Name, f.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncorrectUsername):
			h.renderLogin(c, &f, nil, "Incorrect username")
		case errors.Is(err, service.ErrInvalidPassword):
			h.renderLogin(c, &f, nil, "Invalid password.")
		default:
			RenderError(c, http.StatusInternalServerError, "Error", "Failed to log in. Please try again.")
		}
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	setFlash(c, "Successfully logged in as "+user.Name)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) renderLogin(c *gin.Context, f *form.Login, errs map[string]string, errMsg string) {
	data := baseData(c, "Login")
	data["Form"] = f
	data["Errors"] = errs
	data["Error"] = errMsg
	c.HTML(http.StatusOK, "login", data)
}

// Logout handles GET /logout. The route is behind the login guard.
func (h *AuthHandler) Logout(c *gin.Context) {
	if session, ok := middleware.CurrentSession(c); ok {
		if err := h.auth.Logout(c.Request.Context(), session.ID); err != nil {
			RenderError(c, http.StatusInternalServerError, "Error", "Failed to log out. Please try again.")
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	setFlash(c, "You have logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}
