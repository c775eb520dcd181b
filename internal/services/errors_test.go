package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFailed_HidesPersistenceErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	res := failed(logger, "toggle like", "Failed to toggle like", errors.New(`pq: duplicate key value violates unique constraint "likes_pkey"`))
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to toggle like", res.Error)
	assert.Equal(t, FailureInternal, res.Kind)

	entries := logs.FilterMessage("toggle like failed").All()
	if assert.Len(t, entries, 1) {
		assert.Contains(t, entries[0].ContextMap()["error"], "duplicate key")
	}
}

func TestFailed_KnownConditions(t *testing.T) {
	logger := zap.NewNop()
	cases := []struct {
		err  error
		kind FailureKind
	}{
		{fmt.Errorf("%w: subject x", ErrUnresolvedIdentity), FailureUnauthenticated},
		{ErrSelfFollow, FailureInvalid},
		{ErrEmptyContent, FailureInvalid},
		{ErrPostNotFound, FailureNotFound},
		{ErrNotPostOwner, FailureForbidden},
	}
	for _, tc := range cases {
		res := failed(logger, "op", "generic", tc.err)
		assert.Equal(t, tc.kind, res.Kind, tc.err.Error())
		assert.NotEqual(t, "generic", res.Error)
	}
}
