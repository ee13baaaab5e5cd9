package db

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

const (
	dbKey       = "db"
	sessionsKey = "sessions"
	toastsKey   = "toasts"
)

// SetDBtoContext puts the database and both stores on every request.
func SetDBtoContext(database *gorm.DB, sessions *SessionStore, toasts *ToastStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, database)
		c.Set(sessionsKey, sessions)
		c.Set(toastsKey, toasts)
		c.Next()
	}
}

func DBInstance(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

func Sessions(c *gin.Context) *SessionStore {
	v, ok := c.Get(sessionsKey)
	if !ok {
		return nil
	}
	s, _ := v.(*SessionStore)
	return s
}

func Toasts(c *gin.Context) *ToastStore {
	v, ok := c.Get(toastsKey)
	if !ok {
		return nil
	}
	s, _ := v.(*ToastStore)
	return s
}
