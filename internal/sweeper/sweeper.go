// Package sweeper runs the periodic deletion of expired notes.
package sweeper

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// NoteSweeper is the slice of the note service the sweeper needs.
type NoteSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type Sweeper struct {
	notes    NoteSweeper
	interval time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

func New(notes NoteSweeper, interval time.Duration, log *slog.Logger) *Sweeper {
	return &Sweeper{
		notes:    notes,
		interval: interval,
		log:      log.With("component", "sweeper"),
	}
}

// Start launches the sweep loop. Calling Start on a running sweeper is a
// no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx)
}

// Stop terminates the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// sweep runs one pass. Errors are logged and swallowed so a failed run never
// stops the loop or blocks the next tick.
func (s *Sweeper) sweep(ctx context.Context) {
	s.log.Debug("starting expired notes sweep")

	deleted, err := s.notes.SweepExpired(ctx)
	if err != nil {
		s.log.Error("sweep run failed", "error", err)
		return
	}

	s.log.Debug("sweep completed", "deleted", deleted)
}
