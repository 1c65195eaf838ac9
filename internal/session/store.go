// Package session holds the authenticated identity for the running
// application and persists it, HMAC-signed, to a local file so a restart
// does not require logging in again.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentdesk/rentdesk/internal/models"
)

// ErrInvalidCredentials is returned for every failed login. Wrong password
// and unknown account are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Store manages the current session identity and its on-disk persistence.
type Store struct {
	db     *gorm.DB
	path   string
	secret []byte
	log    *zap.Logger

	mu      sync.Mutex
	current models.Identity
}

// NewStore creates a session store. db is used to look up credentials and to
// re-verify restored sessions; path is the session state file.
func NewStore(db *gorm.DB, path, secret string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, path: path, secret: []byte(secret), log: logger}
}

// Login authenticates against the credential table by exact email and role
// match plus bcrypt password check. On success the identity becomes current
// and is persisted; on any mismatch the result is ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, email, password string, role models.Role) (models.Identity, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ? AND role = ?", email, role).First(&user).Error
	if err != nil {
		return models.Identity{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.Identity{}, ErrInvalidCredentials
	}

	id := user.Identity()
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()

	if err := s.persist(id); err != nil {
		// The session still works for this run; it just won't survive a restart.
		s.log.Warn("persisting session failed", zap.Error(err))
	}
	return id, nil
}

// Logout clears the current identity and removes the persisted state.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = models.Identity{}
	s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("removing session file failed", zap.Error(err))
	}
}

// Current returns the identity of the active session, if any.
func (s *Store) Current() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, !s.current.IsZero()
}

// Restore loads a previously persisted identity. Missing, tampered, or
// malformed state means logged-out: the file is discarded and no error is
// surfaced. A restored identity whose user row no longer exists is discarded
// the same way.
func (s *Store) Restore() (models.Identity, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return models.Identity{}, false
	}
	id, ok := s.decode(strings.TrimSpace(string(raw)))
	if !ok {
		s.log.Warn("discarding malformed session state", zap.String("path", s.path))
		s.discard()
		return models.Identity{}, false
	}
	if !s.userExists(id) {
		s.log.Warn("discarding session for unknown user", zap.String("user", id.ID))
		s.discard()
		return models.Identity{}, false
	}
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	return id, true
}

// Context returns ctx with the current identity attached, or ctx unchanged
// when logged out.
func (s *Store) Context(ctx context.Context) context.Context {
	if id, ok := s.Current(); ok {
		return WithIdentity(ctx, id)
	}
	return ctx
}

func (s *Store) userExists(id models.Identity) bool {
	if s.db == nil {
		return true
	}
	var count int64
	s.db.Model(&models.User{}).Where("id = ?", id.ID).Count(&count)
	return count > 0
}

func (s *Store) discard() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("removing session file failed", zap.Error(err))
	}
}

// persist writes base64url(json(identity)) + "." + base64url(hmac) to the
// session file.
func (s *Store) persist(id models.Identity) error {
	payload, err := json.Marshal(id)
	if err != nil {
		return err
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	value := encoded + "." + s.sign(encoded)
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(value), 0o600)
}

func (s *Store) decode(value string) (models.Identity, bool) {
	parts := strings.Split(value, ".")
	if len(parts) != 2 {
		return models.Identity{}, false
	}
	encoded, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(s.sign(encoded))) {
		return models.Identity{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return models.Identity{}, false
	}
	var id models.Identity
	if err := json.Unmarshal(payload, &id); err != nil {
		return models.Identity{}, false
	}
	if id.ID == "" || !id.Role.Valid() {
		return models.Identity{}, false
	}
	return id, true
}

func (s *Store) sign(encoded string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
