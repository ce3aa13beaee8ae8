package domain

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the process-wide session context: one access credential plus
// the basic profile fields the backend returns on login. It is created on
// successful authentication, cleared on logout, and injected into every
// remote-call site; nothing else in the engine holds the credential.
type Session struct {
	mu sync.RWMutex

	token          string
	username       string
	email          string
	avatarInitials string
	credits        int
}

type Profile struct {
	Username       string
	Email          string
	AvatarInitials string
	Credits        int
}

func NewSession(token string, profile Profile) *Session {
	return &Session{
		token:          token,
		username:       profile.Username,
		email:          profile.Email,
		avatarInitials: profile.AvatarInitials,
		credits:        profile.Credits,
	}
}

// Credential returns the bearer token, or ErrNotAuthenticated when the
// session holds no token or the token's exp claim has passed. An opaque
// non-JWT token is handed through as-is; only the server can judge it.
func (s *Session) Credential() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrNotAuthenticated
	}
	if tokenExpired(s.token, time.Now()) {
		return "", ErrNotAuthenticated
	}
	return s.token, nil
}

func (s *Session) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Profile{
		Username:       s.username,
		Email:          s.email,
		AvatarInitials: s.avatarInitials,
		Credits:        s.credits,
	}
}

// Clear destroys the credential and profile. Called on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.username = ""
	s.email = ""
	s.avatarInitials = ""
	s.credits = 0
}

func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
