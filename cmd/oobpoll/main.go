// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// oobpoll polls a freshly created, unconnected TCP socket for urgent and
// priority-band readability and prints which of the two bits the host
// reports. With no peer to deliver out-of-band data, the poll normally
// blocks until the process is terminated.

package main

import (
	"os"

	"github.com/momentics/oobpoll/probe"
)

func main() {
	os.Exit(probe.Run(probe.DefaultEnv(), os.Stdout))
}
