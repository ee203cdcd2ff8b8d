// File: api/poll.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral readiness-poll types shared by all poller implementations.

package api

// EventMask is a bit set of readiness conditions. Requested masks select the
// conditions a poll waits for; returned masks carry the conditions that are
// actually ready. Platform pollers translate to and from native poll bits;
// native bits with no neutral equivalent are dropped from returned masks.
type EventMask uint32

const (
	// EventReadable: normal-band data can be read without blocking.
	EventReadable EventMask = 1 << iota
	// EventWritable: data can be written without blocking.
	EventWritable
	// EventUrgent: out-of-band (expedited) data is available.
	EventUrgent
	// EventPriorityBand: data at a non-normal priority band is available.
	// Some hosts report this as equivalent to or a superset of EventUrgent.
	EventPriorityBand
	// EventErr: an error condition is pending on the descriptor.
	EventErr
	// EventHangup: the peer hung up.
	EventHangup
	// EventInvalid: the descriptor is not an open socket.
	EventInvalid
)

// WaitForever is the timeout sentinel meaning "block until an event fires".
const WaitForever = -1

// PollDescriptor pairs a socket handle with a requested event mask and
// receives the returned mask written by Poller.Wait.
type PollDescriptor struct {
	Handle  uintptr
	Events  EventMask
	Revents EventMask
}

// Has reports whether every bit of want is set in m.
func (m EventMask) Has(want EventMask) bool {
	return m&want == want
}
