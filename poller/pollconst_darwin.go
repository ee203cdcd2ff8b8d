//go:build darwin
// +build darwin

// File: poller/pollconst_darwin.go
// Author: momentics <momentics@gmail.com>
//
// On macOS golang.org/x/sys/unix defines POLLRDBAND directly.

package poller

import "golang.org/x/sys/unix"

const unixPollRDBand = unix.POLLRDBAND
