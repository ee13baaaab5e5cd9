package db

import (
	"errors"
	"fmt"
	"time"

	"testdesk/models"
	"testdesk/tools"

	"github.com/jinzhu/gorm"
)

// SessionStore keeps browser sessions. The cookie carries a random token;
// only its sha512 is stored.
type SessionStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewSessionStore(db *gorm.DB, ttl time.Duration) *SessionStore {
	return &SessionStore{db: db, ttl: ttl, now: time.Now}
}

// Create opens a session for user and returns the cookie token.
func (s *SessionStore) Create(user models.User, backendToken string) (string, models.Session, error) {
	token := tools.RandomToken()
	now := s.now()
	expires := now.Add(s.ttl)
	session := models.Session{
		TokenHash:    tools.EncryptTextSHA512(token),
		UserID:       user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role,
		BackendToken: backendToken,
		ExpiresAt:    &expires,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", models.Session{}, fmt.Errorf("create session: %w", err)
	}
	return token, session, nil
}

// Lookup resolves a cookie token. Expired sessions are removed and returned
// together with ErrSessionExpired so callers can drop their state.
func (s *SessionStore) Lookup(token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, models.ErrNotFound
	}
	var session models.Session
	err := s.db.Where("token_hash = ?", tools.EncryptTextSHA512(token)).First(&session).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.Session{}, models.ErrNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("lookup session: %w", err)
	}
	if session.IsExpired(s.now()) {
		if err := s.DeleteByID(session.ID); err != nil {
			return session, fmt.Errorf("delete expired session: %w", err)
		}
		return session, models.ErrSessionExpired
	}
	return session, nil
}

func (s *SessionStore) Delete(token string) error {
	session, err := s.Lookup(token)
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrSessionExpired) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.DeleteByID(session.ID)
}

// DeleteByID drops the session and its pending toasts.
func (s *SessionStore) DeleteByID(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&models.Toast{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Session{}).Error
	})
}

// DeleteExpired removes every session expired at now and returns their ids.
func (s *SessionStore) DeleteExpired(now time.Time) ([]int64, error) {
	var ids []int64
	if err := s.db.Model(&models.Session{}).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("find expired sessions: %w", err)
	}
	for _, id := range ids {
		if err := s.DeleteByID(id); err != nil {
			return nil, fmt.Errorf("delete session %d: %w", id, err)
		}
	}
	return ids, nil
}

// Rotate swaps the session token for a new one and restarts its TTL.
func (s *SessionStore) Rotate(id int64) (string, models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return "", models.Session{}, models.ErrNotFound
		}
		return "", models.Session{}, fmt.Errorf("load session: %w", err)
	}

	token := tools.RandomToken()
	now := s.now()
	expires := now.Add(s.ttl)
	session.TokenHash = tools.EncryptTextSHA512(token)
	session.ExpiresAt = &expires
	session.UpdatedAt = &now
	if err := s.db.Save(&session).Error; err != nil {
		return "", models.Session{}, fmt.Errorf("rotate session: %w", err)
	}
	return token, session, nil
}
