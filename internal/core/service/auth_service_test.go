package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/gyorgy-s/our-blog-webapp/internal/infrastructure/sqlite"
)

func newAuthService(t *testing.T) (*AuthService, *sqlite.DB) {
	t.Helper()

	db, err := sqlite.OpenUsers(filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("failed to open user store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	users := sqlite.NewUserRepository(db)
	sessions := sqlite.NewSessionRepository(db)
	return NewAuthService(users, sessions, "test-secret"), db
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthService(t)

	user, err := auth.Register(ctx, "Alice", "a@x.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("registered user should have an id")
	}
	if user.Password == "Passw0rd!" {
		t.Error("password must be stored hashed")
	}

	loggedIn, token, err := auth.Login(ctx, "Alice", "Passw0rd!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login bound to user %d, want %d", loggedIn.ID, user.ID)
	}
	if token == "" {
		t.Error("login should yield a session token")
	}

	current, session, err := auth.CurrentUser(ctx, token)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current == nil || current.Name != "Alice" {
		t.Errorf("CurrentUser = %+v, want Alice", current)
	}
	if session == nil || session.UserID != user.ID {
		t.Errorf("session = %+v, want bound to user %d", session, user.ID)
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthService(t)

	if _, err := auth.Register(ctx, "Alice", "a@x.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, token, err := auth.Login(ctx, "Alice", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("wrong password: err = %v, want ErrInvalidPassword", err)
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("wrong password should be unauthorized, got %v", err)
	}
	if token != "" {
		t.Error("failed login must not yield a session token")
	}

	_, _, err = auth.Login(ctx, "Nobody", "Passw0rd!")
	if !errors.Is(err, ErrIncorrectUsername) {
		t.Errorf("unknown user: err = %v, want ErrIncorrectUsername", err)
	}
}

func TestRegisterConflicts(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthService(t)

	if _, err := auth.Register(ctx, "Alice", "a@x.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := auth.Register(ctx, "Alice", "other@x.com", "Passw0rd!"); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate name: err = %v, want ErrConflict", err)
	}
	if _, err := auth.Register(ctx, "Bob", "a@x.com", "Passw0rd!"); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate email: err = %v, want ErrConflict", err)
	}
}

func TestRegisterTrimsNameAndEmail(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthService(t)

	user, err := auth.Register(ctx, "  Alice  ", " a@x.com ", "Passw0rd!")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Name != "Alice" || user.Email != "a@x.com" {
		t.Errorf("name/email not trimmed: %q %q", user.Name, user.Email)
	}

	// Login also trims the submitted name
	if _, _, err := auth.Login(ctx, " Alice ", "Passw0rd!"); err != nil {
		t.Errorf("login with padded name failed: %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthService(t)

	if _, err := auth.Register(ctx, "Alice", "a@x.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, token, err := auth.Login(ctx, "Alice", "Passw0rd!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	_, session, err := auth.CurrentUser(ctx, token)
	if err != nil || session == nil {
		t.Fatalf("CurrentUser before logout: user=%v err=%v", session, err)
	}

	if err := auth.Logout(ctx, session.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	// The signed token is still intact but the session row is gone,
	// so the client is anonymous again.
	user, session, err := auth.CurrentUser(ctx, token)
	if err != nil {
		t.Fatalf("CurrentUser after logout: %v", err)
	}
	if user != nil || session != nil {
		t.Errorf("session should be invalidated, got user=%v session=%v", user, session)
	}
}

func TestCurrentUserGarbageToken(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthService(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		user, session, err := auth.CurrentUser(ctx, token)
		if err != nil || user != nil || session != nil {
			t.Errorf("token %q should resolve to anonymous, got user=%v session=%v err=%v",
				token, user, session, err)
		}
	}
}

func TestCurrentUserVanishedUser(t *testing.T) {
	ctx := context.Background()
	auth, db := newAuthService(t)

	if _, err := auth.Register(ctx, "Alice", "a@x.com", "Passw0rd!"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, token, err := auth.Login(ctx, "Alice", "Passw0rd!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Drop the user from under the live session. Foreign keys would
	// cascade the session away, so bypass them for the test. Pragmas are
	// per-connection, so pin the pool to a single one first.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		t.Fatalf("failed to disable foreign keys: %v", err)
	}
	if _, err := db.Exec("DELETE FROM user WHERE name = 'Alice'"); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	if _, _, err := auth.CurrentUser(ctx, token); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("vanished user: err = %v, want ErrNotFound", err)
	}
}
