//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

// File: poller/poller_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.

package poller

import "github.com/momentics/oobpoll/api"

// New returns an error for unsupported platforms.
func New() (api.Poller, error) {
	return nil, api.ErrNotSupported
}
