// SPDX-License-Identifier: Unlicense OR MIT

// Package thread identifies operating system threads.
//
// Goroutines that have called runtime.LockOSThread keep their thread
// exclusively, so comparing thread IDs tells whether code runs on such
// a goroutine.
package thread

// ID returns the identifier of the calling OS thread. It returns 0 on
// platforms where thread identity is unavailable.
func ID() uint64 {
	return id()
}

// Supported reports whether ID returns meaningful values on this
// platform.
func Supported() bool {
	return supported
}
