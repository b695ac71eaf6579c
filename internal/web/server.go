package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/service"
	"github.com/gyorgy-s/our-blog-webapp/internal/web/handler"
	"github.com/gyorgy-s/our-blog-webapp/internal/web/middleware"
	"github.com/gyorgy-s/our-blog-webapp/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer wires the router: templates, session middleware and routes.
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	postService *service.PostService,
	contactService *service.ContactService,
	imageChecker *service.ImageChecker,
) *Server {
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(parseTemplates())

	// Resolve the session cookie on every request
	router.Use(middleware.Authenticate(authService))

	postHandler := handler.NewPostHandler(postService, imageChecker)
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)

	// Public routes
	router.GET("/", postHandler.Home)
	router.GET("/post/:id", postHandler.View)
	router.GET("/about", contactHandler.About)
	router.GET("/contact", contactHandler.Form)
	router.POST("/contact", contactHandler.Submit)
	router.GET("/register", authHandler.RegisterForm)
	router.POST("/register", authHandler.RegisterSubmit)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.LoginSubmit)

	// Routes that require an authenticated session
	authed := router.Group("/", middleware.LoginRequired())
	{
		authed.GET("/logout", authHandler.Logout)
		authed.GET("/create", postHandler.CreateForm)
		authed.POST("/create", postHandler.CreateSubmit)
		authed.GET("/edit/:id", postHandler.EditForm)
		authed.POST("/edit/:id", postHandler.EditSubmit)
	}

	// The listing routes /<page> and /<user>/<page> would conflict with
	// the static routes as wildcards, so they hang off the no-route
	// fallback instead.
	router.NoRoute(postHandler.Dispatch)

	return &Server{
		router: router,
		config: cfg,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.ListenHost, s.config.ListenPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
