package query

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Mutation performs one gateway write per call and, when the write
// succeeds, invalidates the cached queries of the entities it affects.
// A failed write leaves the cache untouched.
type Mutation[In, Out any] struct {
	client      *Client
	write       func(context.Context, In) (Out, error)
	invalidates []string
	pending     atomic.Int64
}

// NewMutation binds write to client. invalidates lists the entities whose
// queries become stale after a successful write.
func NewMutation[In, Out any](client *Client, write func(context.Context, In) (Out, error), invalidates ...string) *Mutation[In, Out] {
	return &Mutation[In, Out]{
		client:      client,
		write:       write,
		invalidates: invalidates,
	}
}

// Mutate runs the write and then the invalidation. The write is not
// cancelled when ctx is; it always finishes before invalidation starts.
func (m *Mutation[In, Out]) Mutate(ctx context.Context, in In) (Out, error) {
	m.pending.Add(1)
	defer m.pending.Add(-1)

	detached := context.WithoutCancel(ctx)
	out, err := m.write(detached, in)
	if err != nil {
		return out, err
	}

	// The write has succeeded at this point; invalidation errors are only logged.
	if err := m.client.Invalidate(detached, m.invalidates...); err != nil {
		logrus.WithField("entities", m.invalidates).WithError(err).Error("cache invalidation after mutation failed")
	}
	return out, nil
}

// IsPending reports whether a write is in flight.
func (m *Mutation[In, Out]) IsPending() bool {
	return m.pending.Load() > 0
}
