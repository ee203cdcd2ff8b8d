//go:build linux || darwin
// +build linux darwin

// File: poller/poller_unix.go
// Author: momentics <momentics@gmail.com>
//
// poll(2)-based readiness poll for Unix-like systems (Linux, macOS).

package poller

import (
	"fmt"

	"github.com/momentics/oobpoll/api"
	"golang.org/x/sys/unix"
)

// unixPoller wraps poll(2) via golang.org/x/sys/unix.
type unixPoller struct{}

// New constructs the platform Poller.
func New() (api.Poller, error) {
	return &unixPoller{}, nil
}

// Wait blocks in poll(2) until a requested event fires, the timeout elapses,
// or the call fails. An EINTR-interrupted wait is restarted, not surfaced.
func (p *unixPoller) Wait(fds []api.PollDescriptor, timeoutMs int) (int, error) {
	if len(fds) == 0 {
		return 0, api.ErrNoDescriptor
	}
	pfds := make([]unix.PollFd, len(fds))
	for i := range fds {
		pfds[i] = unix.PollFd{
			Fd:     int32(fds[i].Handle),
			Events: toNative(fds[i].Events),
		}
	}
	var n int
	for {
		var err error
		n, err = unix.Poll(pfds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("poll: %w", err)
		}
		break
	}
	for i := range fds {
		fds[i].Revents = fromNative(pfds[i].Revents)
	}
	return n, nil
}

// toNative translates a neutral event mask into poll(2) bits.
func toNative(m api.EventMask) int16 {
	var ev int16
	if m&api.EventReadable != 0 {
		ev |= unix.POLLIN
	}
	if m&api.EventWritable != 0 {
		ev |= unix.POLLOUT
	}
	if m&api.EventUrgent != 0 {
		ev |= unix.POLLPRI
	}
	if m&api.EventPriorityBand != 0 {
		ev |= unixPollRDBand
	}
	return ev
}

// fromNative translates returned poll(2) bits back into the neutral mask.
// Bits without a neutral equivalent are dropped.
func fromNative(ev int16) api.EventMask {
	var m api.EventMask
	if ev&unix.POLLIN != 0 {
		m |= api.EventReadable
	}
	if ev&unix.POLLOUT != 0 {
		m |= api.EventWritable
	}
	if ev&unix.POLLPRI != 0 {
		m |= api.EventUrgent
	}
	if ev&unixPollRDBand != 0 {
		m |= api.EventPriorityBand
	}
	if ev&unix.POLLERR != 0 {
		m |= api.EventErr
	}
	if ev&unix.POLLHUP != 0 {
		m |= api.EventHangup
	}
	if ev&unix.POLLNVAL != 0 {
		m |= api.EventInvalid
	}
	return m
}
