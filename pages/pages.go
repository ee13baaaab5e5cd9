// Package pages holds the view state of every page: what is loaded, which
// dialog is open, the form being edited, pagination and expand/collapse.
// A view is mutated by actions and rendered into an immutable snapshot.
package pages

import (
	"errors"
	"fmt"
)

// ErrValidation means the action was blocked before any backend call.
// The message to show is already stored in the view.
var ErrValidation = errors.New("validation failed")

// ErrInvalidAction means the action does not apply to the current view
// state, such as confirming a delete that was never requested.
var ErrInvalidAction = errors.New("invalid page action")

// Notice is a toast the controller should push after an action.
type Notice struct {
	Severity string
	Message  string
}

var PageSizes = []int{5, 10, 25, 50}

func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// PageInfo describes client-side pagination. Page is zero based.
type PageInfo struct {
	Page        int   `json:"page"`
	RowsPerPage int   `json:"rows_per_page"`
	Total       int   `json:"total"`
	PageSizes   []int `json:"page_sizes"`
}

// Paginate returns the window of items for a zero based page.
// Out of range pages yield an empty window.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 || page < 0 {
		return []T{}
	}
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func loadErr(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load %s: %w", what, err)
}
