package pages

import "sync"

// SessionViews is the view state of every page for one browser session.
// Callers hold the lock for the whole action, reload included.
type SessionViews struct {
	sync.Mutex
	Executions ExecutionsView
	Modules    HierarchyView
	Releases   ReleasesView
	Issues     IssuesView

	mounted map[string]bool
}

// Mounted reports whether page was mounted at least once, and marks it.
func (s *SessionViews) Mounted(page string) bool {
	if s.mounted == nil {
		s.mounted = map[string]bool{}
	}
	seen := s.mounted[page]
	s.mounted[page] = true
	return seen
}

// ViewStore keeps the SessionViews of live sessions in memory.
type ViewStore struct {
	mu    sync.Mutex
	views map[int64]*SessionViews
}

func NewViewStore() *ViewStore {
	return &ViewStore{views: map[int64]*SessionViews{}}
}

// Get returns the views of sessionID, creating them on first use.
func (s *ViewStore) Get(sessionID int64) *SessionViews {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[sessionID]
	if !ok {
		v = &SessionViews{}
		s.views[sessionID] = v
	}
	return v
}

func (s *ViewStore) Forget(sessionIDs ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range sessionIDs {
		delete(s.views, id)
	}
}

func (s *ViewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}
