package query

import (
	"context"
	"encoding/json"
	"fmt"
)

// Result is the read-side view of a query: the decoded data, if any, and
// whether it is still loading or has failed.
type Result[T any] struct {
	Data      T     `json:"data"`
	IsLoading bool  `json:"isLoading"`
	IsError   bool  `json:"isError"`
	Err       error `json:"-"`
}

// Observe decodes the current state of key without triggering a fetch.
func Observe[T any](ctx context.Context, c *Client, key Key) (Result[T], error) {
	return Decode[T](key, c.State(ctx, key))
}

// Decode builds the read-side view of one State snapshot of key.
func Decode[T any](key Key, st State) (Result[T], error) {
	res := Result[T]{
		IsLoading: st.Status == StatusPending,
		IsError:   st.Status == StatusError,
		Err:       st.Err,
	}
	if st.Data != nil {
		if err := json.Unmarshal(st.Data, &res.Data); err != nil {
			return res, fmt.Errorf("failed to decode cached %s: %w", key, err)
		}
	}
	return res, nil
}
