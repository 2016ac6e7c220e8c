// File: internal/hostwait/hostwait.go
// Package hostwait provides the OS-level blocking wait primitive used
// by the event scheduler. It is the only suspension point in the port
// runtime.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package hostwait

// SleepMS blocks the calling thread for ms milliseconds using the
// platform wait facility. A zero ms returns immediately.
func SleepMS(ms uint32) {
	if ms == 0 {
		return
	}
	sleepMS(ms)
}
