//go:build linux

// File: internal/hostwait/hostwait_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux blocking wait via poll(2) with an empty descriptor set.

package hostwait

import (
	"time"

	"golang.org/x/sys/unix"
)

func sleepMS(ms uint32) {
	deadline := time.Now().Add(time.Duration(ms) * time.Millisecond)
	for {
		remain := time.Until(deadline)
		if remain <= 0 {
			return
		}
		_, err := unix.Poll(nil, int(remain/time.Millisecond)+1)
		if err != unix.EINTR {
			return
		}
		// interrupted by a signal; wait out the remainder
	}
}
