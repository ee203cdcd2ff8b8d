//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

// File: netsys/netsys_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.

package netsys

import "github.com/momentics/oobpoll/api"

// Startup returns an error for unsupported platforms.
func Startup() (api.Stack, error) {
	return nil, api.ErrNotSupported
}

// NewStreamSocket returns an error for unsupported platforms.
func NewStreamSocket() (api.Socket, error) {
	return nil, api.ErrNotSupported
}
