package event

import (
	"context"
	"errors"
)

// MessageHandler processes one queue delivery. Wrappers compose around a
// handler to add idempotency, retries, and circuit breaking.
type MessageHandler func(ctx context.Context, msg []byte, headers map[string]interface{}) error

// ErrUnprocessable marks a delivery that can never succeed, such as a body
// that does not decode. The consumer drops these without requeueing so a
// poison message cannot circulate forever.
var ErrUnprocessable = errors.New("unprocessable event")
