//go:build linux
// +build linux

// File: poller/pollconst_linux.go
// Author: momentics <momentics@gmail.com>
//
// golang.org/x/sys/unix does not define POLLRDBAND for Linux, so the
// value from <bits/poll.h> is supplied here.

package poller

const unixPollRDBand = 0x200 // POLLRDBAND
