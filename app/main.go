// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"runtime"
	"sync"

	"stackbox.org/internal/thread"
)

// mainLoop runs functions in order on a goroutine locked to its OS
// thread.
type mainLoop struct {
	once sync.Once

	mu    sync.Mutex
	funcs []func()
	// wakeups is notified when funcs is non-empty.
	wakeups chan struct{}
}

var loop mainLoop

func (l *mainLoop) start() {
	l.once.Do(func() {
		l.wakeups = make(chan struct{}, 1)
		ready := make(chan struct{})
		go func() {
			runtime.LockOSThread()
			// Don't UnlockOSThread to avoid reuse by the Go runtime.
			thread.SetMain()
			close(ready)
			for range l.wakeups {
				l.flush()
			}
		}()
		<-ready
	})
}

func (l *mainLoop) flush() {
	for {
		l.mu.Lock()
		if len(l.funcs) == 0 {
			l.mu.Unlock()
			return
		}
		f := l.funcs[0]
		l.funcs[0] = nil
		l.funcs = l.funcs[1:]
		l.mu.Unlock()
		f()
	}
}

func (l *mainLoop) post(f func()) {
	l.start()
	l.mu.Lock()
	l.funcs = append(l.funcs, f)
	l.mu.Unlock()
	select {
	case l.wakeups <- struct{}{}:
	default:
	}
}

// Run schedules f on the main thread and returns immediately.
// Functions run in the order they were scheduled. Run is safe for
// concurrent use, including from the main thread.
func Run(f func()) {
	loop.post(f)
}

// Call runs f on the main thread and waits for it to return. Called
// from the main thread, Call runs f directly. Call starts the main
// loop if it isn't running.
func Call(f func()) {
	loop.start()
	if OnMain() {
		f()
		return
	}
	done := make(chan struct{})
	loop.post(func() {
		defer close(done)
		f()
	})
	<-done
}

// OnMain reports whether the caller may act as the main thread. It is
// true for every goroutine when the main loop has not started or
// thread identity is unavailable.
func OnMain() bool {
	m, ok := thread.Main()
	return m || !ok
}
