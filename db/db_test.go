package db

import (
	"testing"
	"time"

	"testdesk/config"
	"testdesk/models"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conf := config.Configuration{Database: "sqlite3", DbPath: ":memory:"}
	database, err := Connect(conf, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestSessionStore_CreateAndLookup(t *testing.T) {
	store := NewSessionStore(openTestDB(t), time.Hour)
	user := models.User{ID: 7, Email: "ana@centime.com", FullName: "Ana", Role: models.USER_ROLE_TESTER}

	token, created, err := store.Create(user, "backend-jwt")
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.NotEqual(t, token, created.TokenHash)

	got, err := store.Lookup(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "backend-jwt", got.BackendToken)
	assert.Equal(t, user.Email, got.User().Email)

	_, err = store.Lookup("nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = store.Lookup("")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(openTestDB(t), time.Hour)
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	token, created, err := store.Create(models.User{ID: 1, Email: "a@centime.com"}, "jwt")
	require.NoError(t, err)

	store.now = func() time.Time { return base.Add(2 * time.Hour) }
	expired, err := store.Lookup(token)
	assert.ErrorIs(t, err, models.ErrSessionExpired)
	assert.Equal(t, created.ID, expired.ID, "expired session is returned so its views can be dropped")

	_, err = store.Lookup(token)
	assert.ErrorIs(t, err, models.ErrNotFound, "expired session is removed on lookup")
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	database := openTestDB(t)
	sessions := NewSessionStore(database, time.Hour)
	toasts := NewToastStore(database)
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return base }

	_, old, err := sessions.Create(models.User{ID: 1, Email: "a@centime.com"}, "jwt")
	require.NoError(t, err)
	_, err = toasts.Push(old.ID, models.TOAST_INFO, "hi")
	require.NoError(t, err)

	sessions.now = func() time.Time { return base.Add(90 * time.Minute) }
	fresh, _, err := sessions.Create(models.User{ID: 2, Email: "b@centime.com"}, "jwt2")
	require.NoError(t, err)

	ids, err := sessions.DeleteExpired(base.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []int64{old.ID}, ids)

	pending, err := toasts.Drain(old.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = sessions.Lookup(fresh)
	assert.NoError(t, err)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(openTestDB(t), time.Hour)
	token, _, err := store.Create(models.User{ID: 1, Email: "a@centime.com"}, "jwt")
	require.NoError(t, err)

	require.NoError(t, store.Delete(token))
	_, err = store.Lookup(token)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, store.Delete(token))
}

func TestToastStore_PushDrainPurge(t *testing.T) {
	store := NewToastStore(openTestDB(t))
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	_, err := store.Push(1, models.TOAST_SUCCESS, " Saved ")
	require.NoError(t, err)
	_, err = store.Push(1, "loud", "second")
	require.NoError(t, err)
	_, err = store.Push(2, models.TOAST_ERROR, "other session")
	require.NoError(t, err)

	got, err := store.Drain(1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Saved", got[0].Message)
	assert.Equal(t, models.TOAST_INFO, got[1].Severity)

	again, err := store.Drain(1)
	require.NoError(t, err)
	assert.Empty(t, again)

	n, err := store.PurgeConsumed(base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	other, err := store.Drain(2)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestSessionStore_Rotate(t *testing.T) {
	store := NewSessionStore(openTestDB(t), time.Hour)
	oldToken, created, err := store.Create(models.User{ID: 1, Email: "a@centime.com"}, "jwt")
	require.NoError(t, err)

	newToken, rotated, err := store.Rotate(created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, newToken)
	assert.Equal(t, created.ID, rotated.ID)

	_, err = store.Lookup(oldToken)
	assert.ErrorIs(t, err, models.ErrNotFound)
	got, err := store.Lookup(newToken)
	require.NoError(t, err)
	assert.Equal(t, "jwt", got.BackendToken)

	_, _, err = store.Rotate(9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
