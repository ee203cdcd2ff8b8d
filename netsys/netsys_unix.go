//go:build linux || darwin
// +build linux darwin

// File: netsys/netsys_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix-like subsystem token and raw stream socket construction.

package netsys

import (
	"fmt"

	"github.com/momentics/oobpoll/api"
	"golang.org/x/sys/unix"
)

// unixStack is a state token only: POSIX sockets need no host handshake, but
// callers still acquire and release the stack so every platform follows the
// same resource discipline.
type unixStack struct {
	closed bool
}

// Startup acquires the networking-subsystem token.
func Startup() (api.Stack, error) {
	return &unixStack{}, nil
}

// Close retires the token. Later calls are no-ops.
func (s *unixStack) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return nil
}

// unixSocket is a raw, unconnected stream file descriptor.
type unixSocket struct {
	fd     int
	closed bool
}

// NewStreamSocket creates an IPv4 TCP stream socket. The socket is not bound,
// connected, or listened on.
func NewStreamSocket() (api.Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	return &unixSocket{fd: fd}, nil
}

// Handle returns the raw file descriptor for poll registration.
func (s *unixSocket) Handle() uintptr {
	return uintptr(s.fd)
}

// Close closes the file descriptor. Later calls are no-ops.
func (s *unixSocket) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return unix.Close(s.fd)
}
