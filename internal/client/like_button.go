package client

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrInFlight is returned when the element already has a call outstanding
	ErrInFlight = errors.New("request already in flight")
	// ErrUnmounted is returned for interactions after Unmount
	ErrUnmounted = errors.New("component unmounted")
	// ErrEmptyDraft is returned when submitting a comment that is only whitespace
	ErrEmptyDraft = errors.New("comment is empty")
)

type LikeState int

const (
	LikeConfirmed LikeState = iota
	LikePending
	LikeRolledBack
)

func (s LikeState) String() string {
	switch s {
	case LikePending:
		return "pending"
	case LikeRolledBack:
		return "rolled-back"
	default:
		return "confirmed"
	}
}

// LikeView is what the like button currently displays
type LikeView struct {
	HasLiked bool
	Likes    int
	State    LikeState
	InFlight bool
}

// LikeButton keeps an optimistic liked flag and like count for one post.
//
// Toggle flips the displayed values before the server answers. A success keeps the
// prediction as is; a failure restores the values captured at render time, which may
// already be stale if others liked the post meanwhile.
type LikeButton struct {
	mu      sync.Mutex
	actions Actions
	postID  string

	renderedLiked bool
	renderedLikes int

	hasLiked        bool
	optimisticLikes int
	state           LikeState
	inFlight        bool
	unmounted       bool
}

// NewLikeButton renders a button from the last known server state of the post
func NewLikeButton(actions Actions, postID string, hasLiked bool, likes int) *LikeButton {
	return &LikeButton{
		actions:         actions,
		postID:          postID,
		renderedLiked:   hasLiked,
		renderedLikes:   likes,
		hasLiked:        hasLiked,
		optimisticLikes: likes,
	}
}

// Toggle flips the like and calls the server. It blocks until the call resolves.
func (b *LikeButton) Toggle(ctx context.Context) error {
	b.mu.Lock()
	if b.unmounted {
		b.mu.Unlock()
		return ErrUnmounted
	}
	if b.inFlight {
		b.mu.Unlock()
		return ErrInFlight
	}
	b.inFlight = true
	b.state = LikePending
	if b.hasLiked {
		b.optimisticLikes--
	} else {
		b.optimisticLikes++
	}
	b.hasLiked = !b.hasLiked
	b.mu.Unlock()

	res := b.actions.ToggleLike(ctx, b.postID)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.inFlight = false
	if b.unmounted {
		return nil
	}
	if res.Success {
		b.state = LikeConfirmed
		return nil
	}
	b.hasLiked = b.renderedLiked
	b.optimisticLikes = b.renderedLikes
	b.state = LikeRolledBack
	return res.err()
}

// Rerender replaces the render-time snapshot with fresh server state.
// While a call is outstanding only the snapshot changes, not the displayed values.
func (b *LikeButton) Rerender(hasLiked bool, likes int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renderedLiked = hasLiked
	b.renderedLikes = likes
	if !b.inFlight {
		b.hasLiked = hasLiked
		b.optimisticLikes = likes
		b.state = LikeConfirmed
	}
}

func (b *LikeButton) View() LikeView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return LikeView{
		HasLiked: b.hasLiked,
		Likes:    b.optimisticLikes,
		State:    b.state,
		InFlight: b.inFlight,
	}
}

// Unmount detaches the button; a call still outstanding has its result discarded
func (b *LikeButton) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unmounted = true
}
