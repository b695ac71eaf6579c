package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/gyorgy-s/our-blog-webapp/internal/core/repository"
)

// Login failures, both domain.ErrUnauthorized. The two are reported to
// the client with different messages, matching the login form behavior.
var (
	ErrIncorrectUsername = fmt.Errorf("incorrect username: %w", domain.ErrUnauthorized)
	ErrInvalidPassword   = fmt.Errorf("invalid password: %w", domain.ErrUnauthorized)
)

type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	secret   string
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	secret string,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   secret,
	}
}

// Register creates a new user with a hashed password. Name and email are
// trimmed before storage. Returns domain.ErrConflict when either is taken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(strings.TrimSpace(name), strings.TrimSpace(email), hash)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by name and password and establishes a
// session. It returns the user and a signed cookie token carrying the
// session id. Failures are domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, name, password string) (*domain.User, string, error) {
	user, err := s.users.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrIncorrectUsername
		}
		return nil, "", err
	}

	if !VerifyPassword(password, user.Password) {
		return nil, "", ErrInvalidPassword
	}

	session := domain.NewSession(user.ID)
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := s.signSession(session)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout invalidates the session. The cookie token becomes useless once
// the server-side session row is gone.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves the cookie token to an authenticated user. A
// missing, malformed or invalidated token means an anonymous client and
// returns all nils. A live session whose user record has vanished returns
// domain.ErrNotFound, which fails the whole request.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, *domain.Session, error) {
	if token == "" {
		return nil, nil, nil
	}

	sessionID, err := s.parseSession(token)
	if err != nil {
		return nil, nil, nil
	}

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// sessionClaims is the cookie payload: a signed reference to the
// server-side session row, not a self-contained identity.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (s *AuthService) signSession(session *domain.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(session.CreatedAt),
			Issuer:   "our-blog",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parseSession(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token claims")
	}
	return claims.SessionID, nil
}
