// File: probe/probe.go
// Author: momentics <momentics@gmail.com>
//
// The out-of-band readiness probe: one subsystem handshake, one unconnected
// IPv4 stream socket, one blocking poll for urgent and priority-band
// readability, one report. The socket is deliberately never connected, so in
// normal operation the poll blocks until the process is terminated; the probe
// demonstrates the shape of the poll call, not data transfer.

package probe

import (
	"fmt"
	"io"

	"github.com/momentics/oobpoll/api"
)

// Report literals. The winsock names are kept on every platform: they are the
// probe's output contract.
const (
	msgStartupFailed = "WSAStartup failed."
	msgSocketFailed  = "Socket creation failed."
	msgPollFailed    = "WSAPoll failed."
	msgUrgent        = "Urgent data can be read."
	msgPriorityBand  = "Priority data can be read."
)

// watchMask is the one requested event set: urgent plus priority-band
// readability, nothing else.
const watchMask = api.EventUrgent | api.EventPriorityBand

// Env bundles the platform seams the probe runs against. DefaultEnv wires the
// real netsys and poller packages; tests substitute fakes.
type Env struct {
	Startup         func() (api.Stack, error)
	NewStreamSocket func() (api.Socket, error)
	NewPoller       func() (api.Poller, error)
}

// Run executes the probe against env, writing report lines to out, and
// returns the process exit code. Resources are released in reverse order of
// acquisition on every path, each exactly once.
func Run(env Env, out io.Writer) int {
	stack, err := env.Startup()
	if err != nil {
		fmt.Fprintln(out, msgStartupFailed)
		return 1
	}
	defer stack.Close()

	sock, err := env.NewStreamSocket()
	if err != nil {
		fmt.Fprintln(out, msgSocketFailed)
		return 1
	}
	defer sock.Close()

	// A poller that cannot be built fails the same way a failed wait does:
	// the socket exists, the poll never happened.
	p, err := env.NewPoller()
	if err != nil {
		fmt.Fprintln(out, msgPollFailed)
		return 1
	}

	fds := []api.PollDescriptor{{
		Handle: sock.Handle(),
		Events: watchMask,
	}}
	if _, err := p.Wait(fds, api.WaitForever); err != nil {
		fmt.Fprintln(out, msgPollFailed)
		return 1
	}

	report(out, fds[0].Revents)
	return 0
}
