//go:build windows

// File: internal/hostwait/hostwait_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows blocking wait via SleepEx, non-alertable.

package hostwait

import "golang.org/x/sys/windows"

func sleepMS(ms uint32) {
	windows.SleepEx(ms, false)
}
