// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux && !windows

package thread

const supported = false

func id() uint64 {
	return 0
}
