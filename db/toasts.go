package db

import (
	"fmt"
	"strings"
	"time"

	"testdesk/models"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// ToastStore queues notifications per session until the shell reads them.
type ToastStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewToastStore(db *gorm.DB) *ToastStore {
	return &ToastStore{db: db, now: time.Now}
}

func (s *ToastStore) Push(sessionID int64, severity, message string) (models.Toast, error) {
	switch severity {
	case models.TOAST_SUCCESS, models.TOAST_ERROR, models.TOAST_WARNING, models.TOAST_INFO:
	default:
		severity = models.TOAST_INFO
	}
	now := s.now()
	toast := models.Toast{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Severity:  severity,
		Message:   strings.TrimSpace(message),
		CreatedAt: &now,
	}
	if err := s.db.Create(&toast).Error; err != nil {
		return models.Toast{}, fmt.Errorf("push toast: %w", err)
	}
	return toast, nil
}

// Drain returns the pending toasts of a session, oldest first, and marks
// them consumed.
func (s *ToastStore) Drain(sessionID int64) ([]models.Toast, error) {
	toasts := []models.Toast{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND consumed_at IS NULL", sessionID).
			Order("created_at asc").
			Find(&toasts).Error; err != nil {
			return err
		}
		if len(toasts) == 0 {
			return nil
		}
		ids := make([]string, 0, len(toasts))
		for _, t := range toasts {
			ids = append(ids, t.ID)
		}
		return tx.Model(&models.Toast{}).Where("id IN (?)", ids).Update("consumed_at", s.now()).Error
	})
	if err != nil {
		return nil, fmt.Errorf("drain toasts: %w", err)
	}
	return toasts, nil
}

// PurgeConsumed deletes toasts consumed before the given time.
func (s *ToastStore) PurgeConsumed(before time.Time) (int64, error) {
	res := s.db.Where("consumed_at IS NOT NULL AND consumed_at < ?", before).Delete(&models.Toast{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge toasts: %w", res.Error)
	}
	return res.RowsAffected, nil
}
