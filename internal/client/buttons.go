package client

import (
	"context"
	"sync"
)

// guard is the in-flight flag shared by the one-shot buttons
type guard struct {
	mu        sync.Mutex
	inFlight  bool
	unmounted bool
}

func (g *guard) enter() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.unmounted {
		return ErrUnmounted
	}
	if g.inFlight {
		return ErrInFlight
	}
	g.inFlight = true
	return nil
}

// leave clears the flag and reports whether the result should still be shown
func (g *guard) leave() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inFlight = false
	return !g.unmounted
}

func (g *guard) Unmount() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unmounted = true
}

// DeleteButton deletes one post
type DeleteButton struct {
	guard
	actions Actions
	toaster Toaster
	postID  string
}

func NewDeleteButton(actions Actions, toaster Toaster, postID string) *DeleteButton {
	return &DeleteButton{actions: actions, toaster: toaster, postID: postID}
}

func (b *DeleteButton) Click(ctx context.Context) error {
	if err := b.enter(); err != nil {
		return err
	}
	res := b.actions.DeletePost(ctx, b.postID)
	if !b.leave() {
		return nil
	}
	if !res.Success {
		b.toaster.Error("Failed to delete post")
		return res.err()
	}
	b.toaster.Success("Post deleted successfully")
	return nil
}

// FollowButton toggles following one user
type FollowButton struct {
	guard
	actions Actions
	toaster Toaster
	userID  string
}

func NewFollowButton(actions Actions, toaster Toaster, userID string) *FollowButton {
	return &FollowButton{actions: actions, toaster: toaster, userID: userID}
}

func (b *FollowButton) Click(ctx context.Context) error {
	if err := b.enter(); err != nil {
		return err
	}
	res := b.actions.ToggleFollow(ctx, b.userID)
	if !b.leave() {
		return nil
	}
	if !res.Success {
		b.toaster.Error("Error following user")
		return res.err()
	}
	b.toaster.Success("Follow status updated")
	return nil
}
