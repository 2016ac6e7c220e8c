//go:build !linux && !windows

// File: internal/hostwait/hostwait_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable fallback for platforms without a dedicated wait path.

package hostwait

import "time"

func sleepMS(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
