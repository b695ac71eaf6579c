package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/repository"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/service"
	"github.com/gyorgy-s/our-blog-webapp/internal/web/form"
	"github.com/gyorgy-s/our-blog-webapp/internal/web/middleware"
)

type PostHandler struct {
	posts  *service.PostService
	images *service.ImageChecker
}

func NewPostHandler(posts *service.PostService, images *service.ImageChecker) *PostHandler {
	return &PostHandler{
		posts:  posts,
		images: images,
	}
}

// Home handles GET / and renders the first listing page.
func (h *PostHandler) Home(c *gin.Context) {
	h.renderListing(c, 1)
}

// Dispatch is the no-route fallback. The listing routes /<page> and
// /<user>/<page> would conflict with the static routes if registered as
// wildcards, so they are recognized here instead.
func (h *PostHandler) Dispatch(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		parts := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")
		switch len(parts) {
		case 1:
			if page, err := strconv.Atoi(parts[0]); err == nil {
				if page < 1 {
					c.Redirect(http.StatusSeeOther, "/")
					return
				}
				h.renderListing(c, page)
				return
			}
		case 2:
			if page, err := strconv.Atoi(parts[1]); err == nil {
				if page < 2 {
					page = 1
				}
				h.renderAuthorListing(c, parts[0], page)
				return
			}
		}
	}
	RenderError(c, http.StatusNotFound, "Not Found", "The page you requested does not exist.")
}

func (h *PostHandler) renderListing(c *gin.Context, page int) {
	posts, err := h.posts.List(c.Request.Context(), page-1)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Error", "Failed to load posts.")
		return
	}

	data := baseData(c, "Our Blog")
	data["Posts"] = posts
	data["Page"] = page
	data["PrevPage"] = page - 1
	data["NextPage"] = page + 1
	data["HasMore"] = len(posts) == repository.PageSize
	c.HTML(http.StatusOK, "index", data)
}

func (h *PostHandler) renderAuthorListing(c *gin.Context, author string, page int) {
	posts, err := h.posts.ListByAuthor(c.Request.Context(), author, page-1)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Error", "Failed to load posts.")
		return
	}

	data := baseData(c, "Posts by "+author)
	data["Posts"] = posts
	data["Author"] = author
	data["Page"] = page
	data["PrevPage"] = page - 1
	data["NextPage"] = page + 1
	data["HasMore"] = len(posts) == repository.PageSize
	c.HTML(http.StatusOK, "author", data)
}

// View handles GET /post/:id.
func (h *PostHandler) View(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Not Found", "The post you requested does not exist.")
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Not Found", "The post you requested does not exist.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Error", "Failed to load the post.")
		return
	}

	data := baseData(c, post.Title)
	data["Post"] = post
	c.HTML(http.StatusOK, "post", data)
}

// CreateForm handles GET /create.
func (h *PostHandler) CreateForm(c *gin.Context) {
	h.renderCreate(c, &form.Post{}, nil, "")
}

// CreateSubmit handles POST /create. On success the form is rendered
// again, empty, ready for the next post.
func (h *PostHandler) CreateSubmit(c *gin.Context) {
	var f form.Post
	if err := c.ShouldBind(&f); err != nil {
		RenderError(c, http.StatusBadRequest, "Bad Request", "Could not read the submitted form.")
		return
	}

	errs := f.Validate()
	if errs == nil {
		if err := h.images.Check(c.Request.Context(), strings.TrimSpace(f.ImgURL)); err != nil {
			errs = map[string]string{"ImgURL": form.ImgURLMessage}
		}
	}
	if errs != nil {
		h.renderCreate(c, &f, errs, "")
		return
	}

	user, _ := middleware.CurrentUser(c)
	_, err := h.posts.Create(c.Request.Context(), f.Title, f.Subtitle, f.Body, user.Name, strings.TrimSpace(f.ImgURL))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			h.renderCreate(c, &f, nil, "A post with this title already exists.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Error", "Failed to create the post.")
		return
	}

	h.renderCreate(c, &form.Post{}, nil, "")
}

func (h *PostHandler) renderCreate(c *gin.Context, f *form.Post, errs map[string]string, errMsg string) {
	data := baseData(c, "New post")
	data["Form"] = f
	data["Errors"] = errs
	data["Error"] = errMsg
	c.HTML(http.StatusOK, "create", data)
}

// EditForm handles GET /edit/:id, prefilled with the stored post.
func (h *PostHandler) EditForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Not Found", "The post you requested does not exist.")
		return
	}

	post, err := h.posts.GetRaw(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Not Found", "The post you requested does not exist.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Error", "Failed to load the post.")
		return
	}

	f := &form.Post{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Body:     post.Body,
		ImgURL:   post.ImgURL,
	}
	h.renderEdit(c, id, post.ImgURL, f, nil, "")
}

// EditSubmit handles POST /edit/:id. The edit fully replaces title,
// subtitle, body and image URL and resets the post date.
func (h *PostHandler) EditSubmit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Not Found", "The post you requested does not exist.")
		return
	}

	post, err := h.posts.GetRaw(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Not Found", "The post you requested does not exist.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Error", "Failed to load the post.")
		return
	}

	var f form.Post
	if err := c.ShouldBind(&f); err != nil {
		RenderError(c, http.StatusBadRequest, "Bad Request", "Could not read the submitted form.")
		return
	}

	errs := f.Validate()
	if errs == nil {
		if err := h.images.Check(c.Request.Context(), strings.TrimSpace(f.ImgURL)); err != nil {
			errs = map[string]string{"ImgURL": form.ImgURLMessage}
		}
	}
	if errs != nil {
		h.renderEdit(c, id, post.ImgURL, &f, errs, "")
		return
	}

	err = h.posts.Update(c.Request.Context(), id, f.Title, f.Subtitle, f.Body, strings.TrimSpace(f.ImgURL))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			h.renderEdit(c, id, post.ImgURL, &f, nil, "A post with this title already exists.")
		case errors.Is(err, domain.ErrNotFound):
			RenderError(c, http.StatusNotFound, "Not Found", "The post you requested does not exist.")
		default:
			RenderError(c, http.StatusInternalServerError, "Error", "Failed to update the post.")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(id, 10))
}

func (h *PostHandler) renderEdit(c *gin.Context, id int64, bg string, f *form.Post, errs map[string]string, errMsg string) {
	data := baseData(c, "Edit post")
	data["PostID"] = id
	data["Bg"] = bg
	data["Form"] = f
	data["Errors"] = errs
	data["Error"] = errMsg
	c.HTML(http.StatusOK, "edit", data)
}
