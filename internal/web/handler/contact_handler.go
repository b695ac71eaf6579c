package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/service"
	"github.com/gyorgy-s/our-blog-webapp/internal/web/form"
)

type ContactHandler struct {
	contact *service.ContactService
}

func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Form handles GET /contact.
func (h *ContactHandler) Form(c *gin.Context) {
	h.renderContact(c, &form.Contact{}, nil, "")
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var f form.Contact
	if err := c.ShouldBind(&f); err != nil {
		RenderError(c, http.StatusBadRequest, "Bad Request", "Could not read the submitted form.")
		return
	}

	if errs := f.Validate(); errs != nil {
		h.renderContact(c, &f, errs, "")
		return
	}

	msg := domain.ContactMessage{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	}
	if err := h.contact.Submit(c.Request.Context(), msg); err != nil {
		if errors.Is(err, domain.ErrDelivery) {
			h.renderContact(c, &f, nil, "The message could not be delivered. Please try again later.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Error", "Failed to send the message.")
		return
	}

	setFlash(c, "The message has been successfully sent.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *ContactHandler) renderContact(c *gin.Context, f *form.Contact, errs map[string]string, errMsg string) {
	data := baseData(c, "Contact")
	data["Form"] = f
	data["Errors"] = errs
	data["Error"] = errMsg
	c.HTML(http.StatusOK, "contact", data)
}

// About handles GET /about.
func (h *ContactHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about", baseData(c, "About"))
}
