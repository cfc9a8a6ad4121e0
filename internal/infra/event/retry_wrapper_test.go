package event

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWrapExponentialBackoff_SucceedsAfterTransientFailures(t *testing.T) {
	m := &fakeMetrics{}

	calls := 0
	handler := WrapExponentialBackoff(nopLogger{}, m, "SiteIngest", 3, time.Millisecond,
		func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})

	err := handler(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Empty(t, m.ingested)
}

func TestWrapExponentialBackoff_GivesUpAfterMaxRetries(t *testing.T) {
	m := &fakeMetrics{}
	cause := errors.New("permanent")

	calls := 0
	handler := WrapExponentialBackoff(nopLogger{}, m, "SiteIngest", 2, time.Millisecond,
		func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
			calls++
			return cause
		})

	err := handler(context.Background(), nil, nil)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"exhausted"}, m.ingested)
}

func TestWrapExponentialBackoff_DoesNotRetryUnprocessable(t *testing.T) {
	m := &fakeMetrics{}

	calls := 0
	handler := WrapExponentialBackoff(nopLogger{}, m, "SiteIngest", 3, time.Millisecond,
		func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
			calls++
			return fmt.Errorf("%w: bad payload", ErrUnprocessable)
		})

	err := handler(context.Background(), nil, nil)

	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.Equal(t, 1, calls)
	assert.Empty(t, m.ingested)
}

func TestWrapExponentialBackoff_StopsOnContextCancel(t *testing.T) {
	m := &fakeMetrics{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	handler := WrapExponentialBackoff(nopLogger{}, m, "SiteIngest", 5, time.Minute,
		func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
			return errors.New("transient")
		})

	err := handler(ctx, nil, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
