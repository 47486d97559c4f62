// Package query caches reads from the gateway and invalidates them after
// writes. Reads for the same key share one in-flight gateway call and, while
// fresh, one cached result.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// DefaultStaleTime is how long a cached result is served without calling
// the gateway again.
const DefaultStaleTime = 30 * time.Second

// Status is the lifecycle position of a query.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is a snapshot of one query.
type State struct {
	Status    Status
	Data      []byte
	Err       error
	Fetching  bool
	UpdatedAt time.Time
}

type queryState struct {
	status    Status
	err       error
	fetching  bool
	updatedAt time.Time
}

// Client is the process-wide query cache. The zero value is not usable;
// create one with NewClient.
type Client struct {
	store     Store
	staleTime time.Duration
	now       func() time.Time
	group     singleflight.Group

	mu          sync.Mutex
	generations map[string]uint64
	states      map[string]*queryState
}

// Option configures a Client.
type Option func(*Client)

// WithStaleTime sets the freshness window. Zero disables reuse of cached
// results; concurrent fetches are still shared.
func WithStaleTime(d time.Duration) Option {
	return func(c *Client) { c.staleTime = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient returns an empty cache backed by store.
func NewClient(store Store, opts ...Option) *Client {
	c := &Client{
		store:       store,
		staleTime:   DefaultStaleTime,
		now:         time.Now,
		generations: make(map[string]uint64),
		states:      make(map[string]*queryState),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the value cached under key while it is fresh, and otherwise
// calls fn once for all concurrent callers of the same key. fn runs to
// completion even if ctx is cancelled; a cancelled caller only stops
// waiting for it. Failures are never retried.
func Fetch[T any](ctx context.Context, c *Client, key Key, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	data, err := c.fetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, key Key, load func(context.Context) ([]byte, error)) ([]byte, error) {
	k := key.String()

	if entry, ok := c.fresh(ctx, k); ok {
		return entry.Data, nil
	}

	return c.join(ctx, key, c.begin(key), load)
}

// begin marks key as fetching and returns the generation of its entity.
func (c *Client) begin(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state(key.String()).fetching = true
	return c.generations[key.Entity]
}

// join shares one gateway call among callers of the same key and generation.
// A caller that read its generation after an invalidation never joins a
// call started before it.
func (c *Client) join(ctx context.Context, key Key, gen uint64, load func(context.Context) ([]byte, error)) ([]byte, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(fmt.Sprintf("%s@%d", key, gen), func() (any, error) {
		data, err := load(detached)
		c.settle(detached, key, gen, data, err)
		return data, err
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fresh returns the cached entry for k if it is inside the freshness window.
func (c *Client) fresh(ctx context.Context, k string) (Entry, bool) {
	if c.staleTime <= 0 {
		return Entry{}, false
	}
	entry, ok, err := c.store.Get(ctx, k)
	if err != nil {
		logrus.WithField("key", k).WithError(err).Warn("query cache read failed, falling back to gateway")
		return Entry{}, false
	}
	if !ok || c.now().Sub(entry.StoredAt) >= c.staleTime {
		return Entry{}, false
	}
	return entry, true
}

// settle records the outcome of a gateway call. A result fetched before an
// invalidation of its entity is returned to its callers but not cached.
func (c *Client) settle(ctx context.Context, key Key, gen uint64, data []byte, err error) {
	k := key.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		logrus.WithField("key", k).WithError(err).Warn("query failed")
	}
	if c.generations[key.Entity] != gen {
		return
	}

	st := c.state(k)
	st.fetching = false
	if err != nil {
		st.status = StatusError
		st.err = err
		st.updatedAt = c.now()
		return
	}

	if serr := c.store.Set(ctx, k, Entry{Data: data, StoredAt: c.now()}); serr != nil {
		logrus.WithField("key", k).WithError(serr).Warn("query cache write failed")
	}
	st.status = StatusSuccess
	st.err = nil
	st.updatedAt = c.now()
}

// state returns the tracked state of k, creating it as pending. c.mu must be held.
func (c *Client) state(k string) *queryState {
	st, ok := c.states[k]
	if !ok {
		st = &queryState{status: StatusPending}
		c.states[k] = st
	}
	return st
}

// Invalidate drops every cached query of the given entities, collections
// and details alike. In-flight fetches of those entities belong to the old
// generation, so the next read starts a fresh gateway call.
func (c *Client) Invalidate(ctx context.Context, entities ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for _, entity := range entities {
		c.generations[entity]++
		for k := range c.states {
			if BelongsTo(k, entity) {
				delete(c.states, k)
			}
		}
		if err := c.store.DeleteEntity(ctx, entity); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to invalidate %s: %w", entity, err)
		}
	}
	return firstErr
}

// State reports the current state of key.
func (c *Client) State(ctx context.Context, key Key) State {
	k := key.String()

	c.mu.Lock()
	var snapshot State
	if st, ok := c.states[k]; ok {
		snapshot = State{Status: st.status, Err: st.err, Fetching: st.fetching, UpdatedAt: st.updatedAt}
	} else {
		snapshot = State{Status: StatusPending}
	}
	c.mu.Unlock()

	entry, ok, err := c.store.Get(ctx, k)
	if err == nil && ok {
		snapshot.Data = entry.Data
		if snapshot.Status == StatusPending {
			// Populated by another replica sharing the store.
			snapshot.Status = StatusSuccess
			snapshot.UpdatedAt = entry.StoredAt
		}
	}
	return snapshot
}
