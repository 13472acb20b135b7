// SPDX-License-Identifier: Unlicense OR MIT

package thread

import "golang.org/x/sys/unix"

const supported = true

func id() uint64 {
	return uint64(unix.Gettid())
}
