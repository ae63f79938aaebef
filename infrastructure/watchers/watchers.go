package watchers

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptWatcher flips to interrupted on the first SIGINT or SIGTERM and
// cancels any context derived through WithContext.
type InterruptWatcher struct {
	signalChan  chan os.Signal
	interrupted chan struct{}
	once        sync.Once
	startOnce   sync.Once
}

func InitializeInterruptWatcher() *InterruptWatcher {
	return &InterruptWatcher{
		signalChan:  make(chan os.Signal, 1),
		interrupted: make(chan struct{}),
	}
}

func (watcher *InterruptWatcher) StartBackgroundWatcher() {
	watcher.startOnce.Do(func() {
		signal.Notify(watcher.signalChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-watcher.signalChan
			signal.Stop(watcher.signalChan)
			watcher.markInterrupted()
		}()
	})
}

func (watcher *InterruptWatcher) ForceInterrupt() {
	watcher.markInterrupted()
}

func (watcher *InterruptWatcher) IsInterrupted() bool {
	select {
	case <-watcher.interrupted:
		return true
	default:
		return false
	}
}

// WithContext returns a child of parent that is cancelled once the watcher is
// interrupted, so in-flight requests and rate limit waits stop early.
func (watcher *InterruptWatcher) WithContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case <-watcher.interrupted:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

func (watcher *InterruptWatcher) markInterrupted() {
	watcher.once.Do(func() {
		close(watcher.interrupted)
	})
}
