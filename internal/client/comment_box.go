package client

import (
	"context"
	"strings"
	"sync"
)

// CommentBox holds a comment draft for one post
type CommentBox struct {
	mu        sync.Mutex
	actions   Actions
	toaster   Toaster
	postID    string
	draft     string
	posting   bool
	unmounted bool
}

func NewCommentBox(actions Actions, toaster Toaster, postID string) *CommentBox {
	return &CommentBox{actions: actions, toaster: toaster, postID: postID}
}

func (b *CommentBox) SetDraft(draft string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft = draft
}

func (b *CommentBox) Draft() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft
}

// Submit posts the draft. The draft is cleared only when the server accepts it.
func (b *CommentBox) Submit(ctx context.Context) error {
	b.mu.Lock()
	if b.unmounted {
		b.mu.Unlock()
		return ErrUnmounted
	}
	if strings.TrimSpace(b.draft) == "" {
		b.mu.Unlock()
		return ErrEmptyDraft
	}
	if b.posting {
		b.mu.Unlock()
		return ErrInFlight
	}
	b.posting = true
	content := b.draft
	b.mu.Unlock()

	res := b.actions.CreateComment(ctx, b.postID, content)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.posting = false
	if b.unmounted {
		return nil
	}
	if !res.Success {
		b.toaster.Error("Failed to add comment")
		return res.err()
	}
	b.draft = ""
	b.toaster.Success("Comment posted successfully")
	return nil
}

func (b *CommentBox) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unmounted = true
}
