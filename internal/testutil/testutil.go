// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/anonto42/socially/backend/pkg/config"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrInjected is the error added by FailInsertsInto
var ErrInjected = errors.New("injected fault")

// NewTestDB opens a migrated sqlite file store with foreign keys enforced
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "socially.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() {
		config.CloseDB(db, zap.NewNop())
	})
	return db
}

// FailInsertsInto makes every INSERT into table fail with ErrInjected
func FailInsertsInto(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("testutil:fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(ErrInjected)
		}
	})
	require.NoError(t, err)
}

// CreateUser inserts a user with the given local id; the provider subject is "sub-"+id
func CreateUser(t *testing.T, db *gorm.DB, id, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:         id,
		ProviderID: "sub-" + id,
		Name:       username,
		Username:   username,
		Email:      username + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreatePost inserts a post by authorID
func CreatePost(t *testing.T, db *gorm.DB, authorID, content string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Content: content}
	require.NoError(t, db.Omit("Author", "Comments", "Likes").Create(post).Error)
	return post
}

// Count returns the number of rows of model matching the optional condition
func Count(t *testing.T, db *gorm.DB, model interface{}, query ...interface{}) int64 {
	t.Helper()
	var n int64
	tx := db.Model(model)
	if len(query) > 0 {
		tx = tx.Where(query[0], query[1:]...)
	}
	require.NoError(t, tx.Count(&n).Error)
	return n
}
