//go:build windows
// +build windows

// File: netsys/netsys_windows.go
// Author: momentics <momentics@gmail.com>
//
// Winsock subsystem handshake and raw stream socket construction.

package netsys

import (
	"fmt"

	"github.com/momentics/oobpoll/api"
	"golang.org/x/sys/windows"
)

// winsockVersion requests winsock 2.2, the MAKEWORD(2,2) handshake.
const winsockVersion = 0x0202

// winStack holds the process-wide winsock initialization token.
type winStack struct {
	closed bool
}

// Startup initializes winsock requesting version 2.2. The returned Stack must
// be closed after the last socket operation.
func Startup() (api.Stack, error) {
	var data windows.WSAData
	if err := windows.WSAStartup(winsockVersion, &data); err != nil {
		return nil, fmt.Errorf("WSAStartup: %w", err)
	}
	return &winStack{}, nil
}

// Close releases the winsock subsystem. Later calls are no-ops.
func (s *winStack) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return windows.WSACleanup()
}

// winSocket is a raw, unconnected winsock stream handle.
type winSocket struct {
	h      windows.Handle
	closed bool
}

// NewStreamSocket creates an IPv4 TCP stream socket. The socket is not bound,
// connected, or listened on.
func NewStreamSocket() (api.Socket, error) {
	h, err := windows.Socket(windows.AF_INET, windows.SOCK_STREAM, windows.IPPROTO_TCP)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	return &winSocket{h: h}, nil
}

// Handle returns the raw socket handle for poll registration.
func (s *winSocket) Handle() uintptr {
	return uintptr(s.h)
}

// Close destroys the socket handle. Later calls are no-ops.
func (s *winSocket) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return windows.Closesocket(s.h)
}
