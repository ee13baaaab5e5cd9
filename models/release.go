package models

import (
	"strings"
	"time"
)

/************************************************
/**** MARK: RELEASE STATUS ****/
/************************************************/
const RELEASE_STATUS_NOT_STARTED = "not_started"
const RELEASE_STATUS_IN_PROGRESS = "in_progress"
const RELEASE_STATUS_COMPLETED = "completed"

// Release is a backend release. Progress is computed server side (0-100).
type Release struct {
	ID            int64    `json:"id"`
	Version       string   `json:"version" form:"version"`
	Name          string   `json:"name" form:"name"`
	Description   string   `json:"description" form:"description"`
	ReleaseDate   string   `json:"release_date" form:"release_date"`
	OverallStatus string   `json:"overall_status,omitempty"`
	Progress      *float64 `json:"progress,omitempty"`
}

var releaseDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date parses ReleaseDate. Dates without a zone are read in loc.
func (r Release) Date(loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(r.ReleaseDate)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ProgressValue is the server percentage, 0 when absent.
func (r Release) ProgressValue() float64 {
	if r.Progress == nil {
		return 0
	}
	return *r.Progress
}
