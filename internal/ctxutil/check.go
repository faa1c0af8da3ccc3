// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled reports whether the context has been canceled or exceeded
// its deadline, returning the context error if so and nil otherwise.
// Command handlers call it at entry so a dead context never reaches
// the store.
//
// ctx.Err() already returns nil while Done is open, so no select with
// a default case is needed.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
