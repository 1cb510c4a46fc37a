package services

import (
	"context"
	"sync"
	"time"

	"github.com/cadmiumcmyk/curator/internal/logger"
)

// AutosaveService runs a periodic save in the background. Failures are
// logged and the ticker keeps running; nothing short of Stop or context
// cancellation ends it.
type AutosaveService struct {
	interval time.Duration
	save     func(context.Context) error
	log      logger.Logger

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	onSaved func(error)
}

// NewAutosaveService creates an autosave loop calling save every interval
func NewAutosaveService(interval time.Duration, save func(context.Context) error, log logger.Logger) *AutosaveService {
	return &AutosaveService{
		interval: interval,
		save:     save,
		log:      log,
	}
}

// OnSaved registers a callback invoked after each attempt with its
// result. Set it before Start; it runs on the autosave goroutine.
func (s *AutosaveService) OnSaved(fn func(error)) {
	s.onSaved = fn
}

// Start launches the autosave goroutine. Starting twice is a no-op.
func (s *AutosaveService) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.run(ctx, s.stop, s.done)
}

// Stop ends the loop and waits for it to finish
func (s *AutosaveService) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (s *AutosaveService) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			err := s.save(ctx)
			if err != nil {
				s.log.Warn("autosave failed", logger.Error(err))
			} else {
				s.log.Debug("autosave complete")
			}
			if s.onSaved != nil {
				s.onSaved(err)
			}
		}
	}
}
