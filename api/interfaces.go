// File: api/interfaces.go
// Author: momentics <momentics@gmail.com>
//
// Core interfaces for the host networking subsystem, raw stream sockets,
// and the blocking readiness poll.

package api

// Stack is an opaque handle to the host networking subsystem. On hosts that
// require an explicit init/teardown handshake (winsock), Close performs the
// teardown; elsewhere it only retires the token. Close is idempotent: the
// underlying release happens exactly once and later calls return nil.
//
// A Stack must be obtained before any socket operation and closed after the
// last socket is closed.
type Stack interface {
	Close() error
}

// Socket is an opaque handle to an unconnected stream endpoint. Handle
// exposes the raw descriptor for registration with a Poller. Close is
// idempotent in the same sense as Stack.Close.
type Socket interface {
	Handle() uintptr
	Close() error
}

// Poller performs one blocking readiness poll over a set of descriptors.
type Poller interface {
	// Wait blocks until a requested event is ready on at least one
	// descriptor, the timeout elapses, or the host call fails. timeoutMs is
	// in milliseconds; WaitForever blocks indefinitely. It returns the
	// number of descriptors with a non-empty returned mask and writes each
	// descriptor's Revents in place. Revents is meaningful only after a nil
	// error.
	Wait(fds []PollDescriptor, timeoutMs int) (int, error)
}
