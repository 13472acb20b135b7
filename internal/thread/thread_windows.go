// SPDX-License-Identifier: Unlicense OR MIT

package thread

import "golang.org/x/sys/windows"

const supported = true

func id() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
