package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"testdesk/config"
	"testdesk/db"
	"testdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type recordingForgetter struct {
	mu  sync.Mutex
	ids []int64
}

func (r *recordingForgetter) Forget(ids ...int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, ids...)
}

func newStores(t *testing.T) (*db.SessionStore, *db.ToastStore) {
	t.Helper()
	database, err := db.Connect(config.Configuration{Database: "sqlite3", DbPath: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSessionStore(database, time.Millisecond), db.NewToastStore(database)
}

func TestSweep_RemovesExpiredSessions(t *testing.T) {
	sessions, toasts := newStores(t)
	_, s, err := sessions.Create(models.User{ID: 1, Email: "a@centime.com"}, "jwt")
	require.NoError(t, err)
	_, err = toasts.Push(s.ID, models.TOAST_INFO, "pending")
	require.NoError(t, err)

	views := &recordingForgetter{}
	sweeper := &SessionSweeper{
		Sessions: sessions,
		Toasts:   toasts,
		Views:    views,
		Now:      func() time.Time { return time.Now().Add(time.Hour) },
	}
	sweeper.Sweep()

	assert.Equal(t, []int64{s.ID}, views.ids)
	left, err := toasts.Drain(s.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestSweep_NothingToDo(t *testing.T) {
	sessions, toasts := newStores(t)
	views := &recordingForgetter{}
	(&SessionSweeper{Sessions: sessions, Toasts: toasts, Views: views}).Sweep()
	assert.Empty(t, views.ids)
}

func TestStart_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))

	sessions, toasts := newStores(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := (&SessionSweeper{Sessions: sessions, Toasts: toasts, Interval: time.Millisecond}).Start(ctx)

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
