// Package slot holds the durable storage slot behind the appointment store:
// a single named key whose value is the whole serialized collection.
package slot

import (
	"context"
	"errors"
)

// ErrEmpty is returned by Read when nothing has been stored under the key yet.
var ErrEmpty = errors.New("slot: empty")

type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	// Write overwrites the stored value.
	Write(ctx context.Context, data []byte) error
	Close() error
}
