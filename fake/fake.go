// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing. Each fake records its lifecycle calls on
// a shared Journal so tests can assert acquisition/release ordering.

package fake

import "github.com/momentics/oobpoll/api"

// Journal records lifecycle events in call order.
type Journal struct {
	Events []string
}

// Record appends one event.
func (j *Journal) Record(event string) {
	if j == nil {
		return
	}
	j.Events = append(j.Events, event)
}

// Stack is a fake api.Stack.
type Stack struct {
	Journal    *Journal
	CloseErr   error
	CloseCount int
}

// Close implements api.Stack.
func (s *Stack) Close() error {
	s.CloseCount++
	if s.CloseCount == 1 {
		s.Journal.Record("stack.close")
	}
	return s.CloseErr
}

// Socket is a fake api.Socket.
type Socket struct {
	Journal    *Journal
	RawHandle  uintptr
	CloseErr   error
	CloseCount int
}

// Handle implements api.Socket.
func (s *Socket) Handle() uintptr {
	return s.RawHandle
}

// Close implements api.Socket.
func (s *Socket) Close() error {
	s.CloseCount++
	if s.CloseCount == 1 {
		s.Journal.Record("socket.close")
	}
	return s.CloseErr
}

// Poller is a fake api.Poller. Wait records the call, captures the request,
// writes Revents into every descriptor, and returns N and Err as scripted.
type Poller struct {
	Journal *Journal
	Revents api.EventMask
	N       int
	Err     error

	// Captured from the last Wait call.
	GotFds     []api.PollDescriptor
	GotTimeout int
}

// Wait implements api.Poller.
func (p *Poller) Wait(fds []api.PollDescriptor, timeoutMs int) (int, error) {
	p.Journal.Record("poll.wait")
	p.GotFds = append([]api.PollDescriptor(nil), fds...)
	p.GotTimeout = timeoutMs
	if p.Err != nil {
		return 0, p.Err
	}
	for i := range fds {
		fds[i].Revents = p.Revents
	}
	return p.N, nil
}
