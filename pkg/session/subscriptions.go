package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/freshhuk/numbersort/pkg/structs"
)

type subscriptions struct {
	lock sync.Mutex
	subs map[string]*subscription
}

type subscription struct {
	ch    chan structs.Swap
	lock  sync.Mutex
	queue []structs.Swap
}

func (s *subscriptions) add(ctx context.Context, ch chan structs.Swap) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.subs == nil {
		s.subs = map[string]*subscription{}
	}

	handle := fmt.Sprintf("%v:%d", ch, rand.Int63())

	s.subs[handle] = &subscription{ch: ch}

	go s.watch(ctx, handle)
}

func (s *subscriptions) remove(handle string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.subs, handle)
}

func (s *subscriptions) send(sw structs.Swap) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, sub := range s.subs {
		sub.add(sw)
	}
}

func (s *subscriptions) watch(ctx context.Context, handle string) {
	defer s.remove(handle)

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			s.lock.Lock()
			sub, ok := s.subs[handle]
			s.lock.Unlock()

			if ok {
				sub.flush(ctx)
			}
		}
	}
}

func (s *subscription) add(sw structs.Swap) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.queue = append(s.queue, sw)
}

// flush delivers queued events in order. A receiver that went away would
// block the channel send forever while the lock is held, wedging senders
// behind it, so delivery bails out once ctx is done.
func (s *subscription) flush(ctx context.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, sw := range s.queue {
		select {
		case s.ch <- sw:
		case <-ctx.Done():
			return
		}
	}

	s.queue = s.queue[:0]
}
