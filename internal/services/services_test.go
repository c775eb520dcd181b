package services

import (
	"context"
	"sync"
	"testing"

	"github.com/anonto42/socially/backend/internal/repositories"
	"github.com/anonto42/socially/backend/internal/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingRevalidator struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingRevalidator) Revalidate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recordingRevalidator) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

type fixture struct {
	db            *gorm.DB
	store         *repositories.Store
	revalidator   *recordingRevalidator
	users         *UserService
	follows       *FollowService
	posts         *PostService
	notifications *NotificationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	store := repositories.NewStore(db)
	rv := &recordingRevalidator{}
	logger := zap.NewNop()
	users := NewUserService(store, logger)
	return &fixture{
		db:            db,
		store:         store,
		revalidator:   rv,
		users:         users,
		follows:       NewFollowService(store, users, rv, logger),
		posts:         NewPostService(store, users, rv, logger),
		notifications: NewNotificationService(store, users, logger),
	}
}

// subject is the provider subject testutil.CreateUser assigns to id
func subject(id string) string {
	return "sub-" + id
}
