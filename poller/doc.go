// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package poller provides the blocking readiness-poll primitive over raw
// socket handles, implemented with WSAPoll on Windows and poll(2) on
// Unix-like hosts.
package poller
