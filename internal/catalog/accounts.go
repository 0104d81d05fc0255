package catalog

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/timeutil"
)

// Account errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email already registered")
)

// SessionTTL is how long an issued token stays valid.
const SessionTTL = 7 * 24 * time.Hour

type account struct {
	user domain.User
	hash []byte
}

type session struct {
	email     string
	expiresAt time.Time
}

// Accounts holds the demo users and their bearer-token sessions.
type Accounts struct {
	mu       sync.RWMutex
	users    map[string]account
	sessions map[string]session
	nextID   int
	clock    timeutil.Clock
	cost     int
}

// AccountsOption configures Accounts.
type AccountsOption func(*Accounts)

// WithAccountsClock sets the clock used for session expiry.
func WithAccountsClock(c timeutil.Clock) AccountsOption {
	return func(a *Accounts) { a.clock = c }
}

// WithHashCost sets the bcrypt cost used for passwords.
func WithHashCost(cost int) AccountsOption {
	return func(a *Accounts) { a.cost = cost }
}

// NewAccounts creates an empty account directory.
func NewAccounts(opts ...AccountsOption) *Accounts {
	a := &Accounts{
		users:    make(map[string]account),
		sessions: make(map[string]session),
		nextID:   1,
		cost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.clock = timeutil.OrReal(a.clock)
	return a
}

// Register adds a user. The id is assigned when empty.
func (a *Accounts) Register(user domain.User, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return domain.User{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	key := emailKey(user.Email)
	if _, exists := a.users[key]; exists {
		return domain.User{}, ErrEmailTaken
	}
	if user.ID == "" {
		user.ID = strconv.Itoa(a.nextID)
		a.nextID++
	}
	a.users[key] = account{user: user, hash: hash}
	return user, nil
}

// Login checks the credentials and issues a new session token.
func (a *Accounts) Login(creds domain.Credentials) (domain.LoginResult, error) {
	a.mu.RLock()
	acc, ok := a.users[emailKey(creds.Email)]
	a.mu.RUnlock()
	if !ok {
		return domain.LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(creds.Password)); err != nil {
		return domain.LoginResult{}, ErrInvalidCredentials
	}
	return a.issue(acc.user), nil
}

// Authenticate resolves a bearer token to its user.
func (a *Accounts) Authenticate(token string) (domain.User, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userForLocked(token)
}

// Refresh swaps a valid token for a new one.
func (a *Accounts) Refresh(token string) (domain.LoginResult, error) {
	a.mu.Lock()
	user, err := a.userForLocked(token)
	if err == nil {
		delete(a.sessions, token)
	}
	a.mu.Unlock()
	if err != nil {
		return domain.LoginResult{}, err
	}
	return a.issue(user), nil
}

// Logout revokes token. Unknown tokens are ignored.
func (a *Accounts) Logout(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, token)
}

func (a *Accounts) issue(user domain.User) domain.LoginResult {
	token := uuid.NewString()

	a.mu.Lock()
	a.sessions[token] = session{
		email:     emailKey(user.Email),
		expiresAt: a.clock.Now().Add(SessionTTL),
	}
	a.mu.Unlock()

	return domain.LoginResult{Token: token, User: user}
}

func (a *Accounts) userForLocked(token string) (domain.User, error) {
	s, ok := a.sessions[token]
	if !ok || !a.clock.Now().Before(s.expiresAt) {
		return domain.User{}, ErrInvalidToken
	}
	acc, ok := a.users[s.email]
	if !ok {
		return domain.User{}, ErrInvalidToken
	}
	return acc.user, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
