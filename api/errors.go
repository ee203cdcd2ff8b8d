// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across oobpoll packages.

package api

import "fmt"

var (
	ErrNotSupported = fmt.Errorf("operation not supported on this platform")
	ErrNoDescriptor = fmt.Errorf("poll requires at least one descriptor")
)
