package services

import (
	"errors"

	"go.uber.org/zap"
)

var (
	ErrUnresolvedIdentity = errors.New("user not found")
	ErrSelfFollow         = errors.New("you cannot follow yourself")
	ErrEmptyContent       = errors.New("content is required")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostOwner       = errors.New("unauthorized - no delete permission")
)

// FailureKind tells the transport layer what kind of failure a Result carries
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureUnauthenticated
	FailureInvalid
	FailureForbidden
	FailureNotFound
	FailureInternal
)

// Result is what every mutating operation resolves to. Error is safe to show to end users.
type Result struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Kind    FailureKind `json:"-"`
}

func succeeded() Result {
	return Result{Success: true}
}

// failed converts err into a Result at the operation boundary. Known conditions keep their
// message; anything else is logged in full and reported with the generic message only.
func failed(logger *zap.Logger, op, generic string, err error) Result {
	var kind FailureKind
	var msg string
	switch {
	case errors.Is(err, ErrUnresolvedIdentity):
		kind, msg = FailureUnauthenticated, "Unauthorized"
	case errors.Is(err, ErrSelfFollow):
		kind, msg = FailureInvalid, "You cannot follow yourself"
	case errors.Is(err, ErrEmptyContent):
		kind, msg = FailureInvalid, "Content is required"
	case errors.Is(err, ErrPostNotFound):
		kind, msg = FailureNotFound, "Post not found"
	case errors.Is(err, ErrNotPostOwner):
		kind, msg = FailureForbidden, "Unauthorized - no delete permission"
	default:
		logger.Error(op+" failed", zap.Error(err))
		return Result{Error: generic, Kind: FailureInternal}
	}
	logger.Info(op+" rejected", zap.String("reason", err.Error()))
	return Result{Error: msg, Kind: kind}
}
