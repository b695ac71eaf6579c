package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required fields
	SecretKey string `mapstructure:"secret_key"`

	// Optional server settings
	ListenHost string `mapstructure:"listen_host"`
	ListenPort int    `mapstructure:"listen_port"`

	// Storage: posts and users are two independent stores
	PostsDBPath string `mapstructure:"posts_db"`
	UsersDBPath string `mapstructure:"users_db"`

	// Optional SMTP settings; contact mail is discarded when smtp_host
	// is empty
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`
	MailFrom     string `mapstructure:"mail_from"`
	ContactTo    string `mapstructure:"contact_to"`
}

const (
	DefaultConfigPath  = "config.yml"
	DefaultListenHost  = "0.0.0.0"
	DefaultListenPort  = 8080
	DefaultPostsDBPath = "posts.db"
	DefaultUsersDBPath = "users.db"
	DefaultSMTPPort    = 587
)

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("listen_host", DefaultListenHost)
	viper.SetDefault("listen_port", DefaultListenPort)
	viper.SetDefault("posts_db", DefaultPostsDBPath)
	viper.SetDefault("users_db", DefaultUsersDBPath)
	viper.SetDefault("smtp_port", DefaultSMTPPort)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("BLOG")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("secret_key is required")
	}

	// SMTP settings are all-or-nothing
	if c.SMTPHost != "" {
		if c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("smtp_username and smtp_password are required when smtp_host is set")
		}
		if c.MailFrom == "" || c.ContactTo == "" {
			return fmt.Errorf("mail_from and contact_to are required when smtp_host is set")
		}
	}

	return nil
}

func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("BLOG_DEV_MODE") == "1"
}
