//go:build windows
// +build windows

// File: poller/poller_windows.go
// Author: momentics <momentics@gmail.com>
//
// WSAPoll-based readiness poll for Windows. WSAPoll is not surfaced by
// golang.org/x/sys/windows, so the proc is resolved from ws2_32.dll directly.

package poller

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/momentics/oobpoll/api"
	"golang.org/x/sys/windows"
)

var (
	modws2_32   = windows.NewLazySystemDLL("ws2_32.dll")
	procWSAPoll = modws2_32.NewProc("WSAPoll")
)

// Winsock poll bits (winsock2.h).
const (
	pollRDNorm = 0x0100 // POLLRDNORM
	pollRDBand = 0x0200 // POLLRDBAND
	pollPri    = 0x0400 // POLLPRI
	pollWRNorm = 0x0010 // POLLWRNORM / POLLOUT
	pollErr    = 0x0001 // POLLERR
	pollHup    = 0x0002 // POLLHUP
	pollNval   = 0x0004 // POLLNVAL

	socketError = -1 // SOCKET_ERROR
)

// wsaPollFD is the WSAPOLLFD structure passed to WSAPoll.
type wsaPollFD struct {
	fd      windows.Handle
	events  int16
	revents int16
}

// windowsPoller wraps WSAPoll.
type windowsPoller struct{}

// New constructs the platform Poller.
func New() (api.Poller, error) {
	if err := procWSAPoll.Find(); err != nil {
		return nil, fmt.Errorf("WSAPoll lookup: %w", err)
	}
	return &windowsPoller{}, nil
}

// Wait blocks in WSAPoll until a requested event fires, the timeout elapses,
// or the call returns SOCKET_ERROR.
func (p *windowsPoller) Wait(fds []api.PollDescriptor, timeoutMs int) (int, error) {
	if len(fds) == 0 {
		return 0, api.ErrNoDescriptor
	}
	pfds := make([]wsaPollFD, len(fds))
	for i := range fds {
		pfds[i] = wsaPollFD{
			fd:     windows.Handle(fds[i].Handle),
			events: toNative(fds[i].Events),
		}
	}
	r1, _, e1 := procWSAPoll.Call(
		uintptr(unsafe.Pointer(&pfds[0])),
		uintptr(len(pfds)),
		uintptr(timeoutMs),
	)
	if int32(r1) == socketError {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return 0, fmt.Errorf("WSAPoll: %w", errno)
		}
		return 0, fmt.Errorf("WSAPoll: %w", windows.WSAEINVAL)
	}
	for i := range fds {
		fds[i].Revents = fromNative(pfds[i].revents)
	}
	return int(int32(r1)), nil
}

// toNative translates a neutral event mask into winsock poll bits.
func toNative(m api.EventMask) int16 {
	var ev int16
	if m&api.EventReadable != 0 {
		ev |= pollRDNorm
	}
	if m&api.EventWritable != 0 {
		ev |= pollWRNorm
	}
	if m&api.EventUrgent != 0 {
		ev |= pollPri
	}
	if m&api.EventPriorityBand != 0 {
		ev |= pollRDBand
	}
	return ev
}

// fromNative translates returned winsock poll bits back into the neutral
// mask. Bits without a neutral equivalent are dropped.
func fromNative(ev int16) api.EventMask {
	var m api.EventMask
	if ev&pollRDNorm != 0 {
		m |= api.EventReadable
	}
	if ev&pollWRNorm != 0 {
		m |= api.EventWritable
	}
	if ev&pollPri != 0 {
		m |= api.EventUrgent
	}
	if ev&pollRDBand != 0 {
		m |= api.EventPriorityBand
	}
	if ev&pollErr != 0 {
		m |= api.EventErr
	}
	if ev&pollHup != 0 {
		m |= api.EventHangup
	}
	if ev&pollNval != 0 {
		m |= api.EventInvalid
	}
	return m
}
