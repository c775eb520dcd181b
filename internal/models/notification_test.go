package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationToView(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	n := &Notification{
		ID:      "n1",
		Type:    NotificationComment,
		Creator: &User{ID: "u1", Name: "Alice", Username: "alice", Email: "hidden@example.com"},
		Post:    &Post{ID: "p1", Content: "hello", AuthorID: "u2"},
		Comment: &Comment{ID: "c1", Content: "nice", CreatedAt: at},
	}

	v := n.ToView()
	assert.Equal(t, UserCompact{ID: "u1", Name: "Alice", Username: "alice"}, v.Creator)
	assert.Equal(t, &PostSummary{ID: "p1", Content: "hello"}, v.Post)
	assert.Equal(t, &CommentSummary{ID: "c1", Content: "nice", CreatedAt: at}, v.Comment)

	follow := (&Notification{ID: "n2", Type: NotificationFollow}).ToView()
	assert.Nil(t, follow.Post)
	assert.Nil(t, follow.Comment)
	assert.Equal(t, UserCompact{}, follow.Creator)
}

func TestBeforeCreateKeepsExplicitID(t *testing.T) {
	u := &User{ID: "u1"}
	assert.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, "u1", u.ID)

	p := &Post{}
	assert.NoError(t, p.BeforeCreate(nil))
	assert.Len(t, p.ID, 36)
}
