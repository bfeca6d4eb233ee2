package subscription

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
)

// BufferSize is the number of values a slow consumer may lag behind before Send blocks.
var BufferSize = 16

// ErrClosed is returned by Send once the subscription is closed.
var ErrClosed = errors.Mark(errors.New("subscription is closed"), errs.SomethingWentWrong)

// Subscription forwards values from a producer to a consumer channel without blocking the
// producer on every value. The consumer stops receiving after Unsubscribe.
type Subscription[T any] struct {
	channel chan<- T
	in      chan T

	quitOnce  sync.Once
	quit      chan struct{}
	quitDone  chan struct{}
	closeOnce sync.Once
	closing   chan struct{}
}

// New starts forwarding to channel. The channel is never closed by the subscription.
func New[T any](channel chan<- T) *Subscription[T] {
	s := &Subscription[T]{
		channel:  channel,
		in:       make(chan T, BufferSize),
		quit:     make(chan struct{}),
		quitDone: make(chan struct{}),
		closing:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Send queues value for the consumer.
func (s *Subscription[T]) Send(ctx context.Context, value T) error {
	select {
	case <-s.quitDone:
		return errors.WithStack(ErrClosed)
	case <-s.closing:
		return errors.WithStack(ErrClosed)
	default:
	}
	select {
	case s.in <- value:
		return nil
	case <-s.quitDone:
		return errors.WithStack(ErrClosed)
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Unsubscribe stops forwarding. Queued values that were not delivered yet are dropped.
func (s *Subscription[T]) Unsubscribe() {
	s.quitOnce.Do(func() {
		close(s.quit)
		<-s.quitDone
	})
}

// Close stops accepting values and returns once every queued value has been delivered.
// Unsubscribe still aborts a Close that waits on a consumer that stopped reading.
func (s *Subscription[T]) Close() {
	s.closeOnce.Do(func() {
		close(s.closing)
	})
	<-s.quitDone
}

// Done is closed once the forwarding loop has stopped.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.quitDone
}

func (s *Subscription[T]) IsClosed() bool {
	select {
	case <-s.quitDone:
		return true
	default:
		return false
	}
}

func (s *Subscription[T]) run() {
	defer close(s.quitDone)
	for {
		select {
		case <-s.quit:
			return
		case value := <-s.in:
			if !s.deliver(value) {
				return
			}
		case <-s.closing:
			for {
				select {
				case value := <-s.in:
					if !s.deliver(value) {
						return
					}
				default:
					return
				}
			}
		}
	}
}

func (s *Subscription[T]) deliver(value T) bool {
	select {
	case s.channel <- value:
		return true
	case <-s.quit:
		return false
	}
}
