package cli

import (
	"fmt"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/repository"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/service"
	"github.com/gyorgy-s/our-blog-webapp/internal/infrastructure/mail"
	"github.com/gyorgy-s/our-blog-webapp/internal/infrastructure/sqlite"
	"github.com/gyorgy-s/our-blog-webapp/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Our Blog - a small server-rendered blog",
	Long: `Our Blog is a small server-rendered blog.

It provides:
- Public post listings, paginated and filterable by author
- Registration and login with server-side sessions
- Post creation and editing for authenticated authors
- A contact form with optional SMTP delivery`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
}

// Services holds the initialized stores and services. Posts and users
// live in two independent databases.
type Services struct {
	PostsDB *sqlite.DB
	UsersDB *sqlite.DB

	PostRepo    repository.PostRepository
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository

	AuthService    *service.AuthService
	PostService    *service.PostService
	ContactService *service.ContactService
	ImageChecker   *service.ImageChecker
}

func initServices() (*Services, error) {
	postsDB, err := sqlite.OpenPosts(cfg.PostsDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open post store: %w", err)
	}

	usersDB, err := sqlite.OpenUsers(cfg.UsersDBPath)
	if err != nil {
		postsDB.Close()
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}

	postRepo := sqlite.NewPostRepository(postsDB)
	userRepo := sqlite.NewUserRepository(usersDB)
	sessionRepo := sqlite.NewSessionRepository(usersDB)

	var sender service.Sender
	if cfg.MailEnabled() {
		sender = mail.NewSMTPSender(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUsername,
			cfg.SMTPPassword,
			cfg.MailFrom,
			cfg.ContactTo,
		)
	} else {
		sender = mail.NewDiscardSender()
	}

	return &Services{
		PostsDB:        postsDB,
		UsersDB:        usersDB,
		PostRepo:       postRepo,
		UserRepo:       userRepo,
		SessionRepo:    sessionRepo,
		AuthService:    service.NewAuthService(userRepo, sessionRepo, cfg.SecretKey),
		PostService:    service.NewPostService(postRepo),
		ContactService: service.NewContactService(sender),
		ImageChecker:   service.NewImageChecker(),
	}, nil
}

// Close closes both stores.
func (s *Services) Close() {
	if s.PostsDB != nil {
		s.PostsDB.Close()
	}
	if s.UsersDB != nil {
		s.UsersDB.Close()
	}
}
