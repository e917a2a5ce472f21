package sorter

import (
	"context"
	"time"

	"github.com/freshhuk/numbersort/pkg/structs"
)

const DefaultDelay = 100 * time.Millisecond

// NotifyFunc receives every element exchange, self-exchanges included, with
// a snapshot of the sequence at that moment. It runs synchronously on the
// sorting goroutine and should return quickly.
type NotifyFunc func(structs.Swap)

type Sorter struct {
	Delay  time.Duration
	Notify NotifyFunc
}

func New() *Sorter {
	return &Sorter{Delay: DefaultDelay}
}

// Run sorts seq in place toward dir using a recursive Lomuto
// partition-exchange over [0, len-1] and returns the number of swaps
// performed. The sequence mutates between notifications; callers observe
// progress only through Notify snapshots.
func (s *Sorter) Run(ctx context.Context, seq structs.Sequence, dir structs.Direction) (int, error) {
	r := &run{dir: dir, seq: seq}

	if err := s.sort(ctx, r, 0, len(seq)-1); err != nil {
		return r.swaps, err
	}

	return r.swaps, nil
}

type run struct {
	dir   structs.Direction
	seq   structs.Sequence
	swaps int
}

func (s *Sorter) sort(ctx context.Context, r *run, low, high int) error {
	if low >= high {
		return nil
	}

	p, err := s.partition(ctx, r, low, high)
	if err != nil {
		return err
	}

	if err := s.sort(ctx, r, low, p-1); err != nil {
		return err
	}

	return s.sort(ctx, r, p+1, high)
}

// partition takes the last element of the range as pivot, moves everything
// that belongs ahead of it before the boundary, then drops the pivot on the
// boundary and returns its index.
func (s *Sorter) partition(ctx context.Context, r *run, low, high int) (int, error) {
	pivot := r.seq[high]
	i := low - 1

	for j := low; j < high; j++ {
		if r.dir.Before(r.seq[j], pivot) {
			i++

			if err := s.swap(ctx, r, i, j); err != nil {
				return 0, err
			}
		}
	}

	if err := s.swap(ctx, r, i+1, high); err != nil {
		return 0, err
	}

	return i + 1, nil
}

// swap exchanges two elements, notifies, then pauses for Delay. Exchanges
// of an element with itself notify and pause too; the pacing is what the
// animation is built on.
func (s *Sorter) swap(ctx context.Context, r *run, i, j int) error {
	r.seq[i], r.seq[j] = r.seq[j], r.seq[i]

	sw := structs.Swap{Index: r.swaps, I: i, J: j, Sequence: r.seq.Copy()}

	r.swaps++

	if s.Notify != nil {
		s.Notify(sw)
	}

	if s.Delay <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.Delay):
		return nil
	}
}
