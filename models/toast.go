package models

import "time"

/************************************************
/**** MARK: TOAST SEVERITY ****/
/************************************************/
const TOAST_SUCCESS = "success"
const TOAST_ERROR = "error"
const TOAST_WARNING = "warning"
const TOAST_INFO = "info"

// Toast is a transient notification queued for one session and consumed on read.
type Toast struct {
	ID         string     `gorm:"primary_key;size:36" json:"id"`
	SessionID  int64      `gorm:"not null;index" json:"-"`
	Severity   string     `gorm:"not null;default:'info'" json:"severity"`
	Message    string     `gorm:"type:text" json:"message"`
	ConsumedAt *time.Time `gorm:"index" json:"-"`
	CreatedAt  *time.Time `json:"created_at"`
}
