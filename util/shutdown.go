package util

import (
	"os"
	"os/signal"
	"sync"
)

// ShutdownGuard facilitates coordinating the shutdown of the local server and its components.
type ShutdownGuard struct {
	sync.Mutex
	sync.WaitGroup
	ShuttingDown chan struct{}
}

// NewShutdownGuard creates a new ShutdownGuard.
func NewShutdownGuard() *ShutdownGuard {
	return &ShutdownGuard{
		ShuttingDown: make(chan struct{}),
	}
}

// InitiateShutdown signals to all components that they should begin shutting down.
func (s *ShutdownGuard) InitiateShutdown() {
	s.Lock()
	defer s.Unlock()

	select {
	case <-s.ShuttingDown:
		// already closed
	default:
		close(s.ShuttingDown)
	}
}

// ShutdownOnSignal initiates a shutdown when the process receives one of the signals.
func (s *ShutdownGuard) ShutdownOnSignal(signals ...os.Signal) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	go func() {
		select {
		case <-c:
			s.InitiateShutdown()
		case <-s.ShuttingDown:
		}
		signal.Stop(c)
	}()
}

// ShutdownAndWait initiates a shutdown, and waits for all components to finish.
func (s *ShutdownGuard) ShutdownAndWait() {
	s.InitiateShutdown()
	s.Wait()
}
