package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionForwardsInOrder(t *testing.T) {
	ch := make(chan int)
	sub := New[int](ch)
	defer sub.Unsubscribe()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, sub.Send(ctx, i))
	}
	for i := 0; i < 5; i++ {
		select {
		case v := <-ch:
			assert.Equal(t, i, v)
		case <-time.After(time.Second):
			t.Fatal("value not forwarded")
		}
	}
}

func TestSubscriptionClosed(t *testing.T) {
	sub := New[string](make(chan string))
	assert.False(t, sub.IsClosed())

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.True(t, sub.IsClosed())

	err := sub.Send(context.Background(), "late")
	assert.True(t, errors.Is(err, ErrClosed))
}

func TestSubscriptionSendHonoursContext(t *testing.T) {
	old := BufferSize
	BufferSize = 0
	defer func() { BufferSize = old }()

	sub := New[int](make(chan int))
	defer sub.Unsubscribe()

	// the forwarding loop takes the first value and blocks on the consumer, the second can't be queued
	require.NoError(t, sub.Send(context.Background(), 1))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := sub.Send(ctx, 2)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSubscriptionCloseDeliversQueued(t *testing.T) {
	ch := make(chan int)
	sub := New[int](ch)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, sub.Send(ctx, i))
	}

	received := make(chan []int, 1)
	go func() {
		var got []int
		for {
			select {
			case v := <-ch:
				got = append(got, v)
			case <-sub.Done():
				received <- got
				return
			}
		}
	}()

	sub.Close()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, <-received)
	assert.True(t, sub.IsClosed())

	err := sub.Send(ctx, 5)
	assert.True(t, errors.Is(err, ErrClosed))
	sub.Unsubscribe()
}
