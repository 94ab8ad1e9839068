package console

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sync"
)

// CleanupHandler restores the terminal when the process is terminated by
// a signal or unwinds through a panic.
type CleanupHandler struct {
	mu       sync.Mutex
	funcs    map[int]func() error
	order    []int
	nextID   int
	errOut   io.Writer
	signals  chan os.Signal
	raise    func(os.Signal)
	stopOnce sync.Once
	done     chan struct{}
}

// NewCleanupHandler creates a handler. Nothing is intercepted until
// Install is called.
func NewCleanupHandler() *CleanupHandler {
	return &CleanupHandler{
		funcs:  make(map[int]func() error),
		errOut: os.Stderr,
		raise:  reRaiseSignal,
		done:   make(chan struct{}),
	}
}

// Install starts intercepting termination signals. On delivery the
// registered functions run and the signal is re-raised.
func (h *CleanupHandler) Install() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.signals != nil {
		return
	}

	h.signals = make(chan os.Signal, 1)
	if sigs := signalsToCapture(); len(sigs) > 0 {
		signal.Notify(h.signals, sigs...)
	}

	go func() {
		select {
		case sig := <-h.signals:
			h.Cleanup()
			h.raise(sig)
		case <-h.done:
		}
	}()
}

// Stop stops intercepting signals. Registered functions are kept.
func (h *CleanupHandler) Stop() {
	h.stopOnce.Do(func() {
		h.mu.Lock()
		if h.signals != nil {
			signal.Stop(h.signals)
		}
		h.mu.Unlock()
		close(h.done)
	})
}

// Register adds a cleanup function and returns a func that removes it.
func (h *CleanupHandler) Register(fn func() error) (unregister func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.funcs[id] = fn
	h.order = append(h.order, id)

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.funcs, id)
		h.order = slices.DeleteFunc(h.order, func(v int) bool { return v == id })
	}
}

// Cleanup runs the registered functions newest first and forgets them.
func (h *CleanupHandler) Cleanup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.order) - 1; i >= 0; i-- {
		fn, ok := h.funcs[h.order[i]]
		if !ok {
			continue
		}
		if err := fn(); err != nil {
			fmt.Fprintf(h.errOut, "Cleanup error: %v\n", err)
		}
	}

	h.funcs = make(map[int]func() error)
	h.order = h.order[:0]
}

// EnsureCleanup should be deferred in main. It runs cleanup and re-panics
// if the deferring function is panicking.
func (h *CleanupHandler) EnsureCleanup() {
	if r := recover(); r != nil {
		h.Cleanup()
		panic(r)
	}
	h.Cleanup()
}
