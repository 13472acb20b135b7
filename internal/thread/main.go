// SPDX-License-Identifier: Unlicense OR MIT

package thread

import "sync/atomic"

var mainID atomic.Uint64

// SetMain registers the calling thread as the main thread. The caller
// must have locked its goroutine to the thread.
func SetMain() {
	mainID.Store(ID())
}

// ClearMain unregisters the main thread.
func ClearMain() {
	mainID.Store(0)
}

// Main reports whether the caller runs on the main thread. The ok
// result is false when no main thread is registered or thread identity
// is unsupported, in which case isMain is meaningless.
func Main() (isMain, ok bool) {
	m := mainID.Load()
	if m == 0 || !supported {
		return false, false
	}
	return ID() == m, true
}

// MustMain panics with a message naming op unless the caller may be on
// the main thread.
func MustMain(op string) {
	if m, ok := Main(); ok && !m {
		panic(op + " called off the main thread")
	}
}

// MustNotMain panics with a message naming op if the caller is known to
// run on the main thread.
func MustNotMain(op string) {
	if m, ok := Main(); ok && m {
		panic(op + " called on the main thread")
	}
}
