// File: probe/env.go
// Author: momentics <momentics@gmail.com>

package probe

import (
	"github.com/momentics/oobpoll/netsys"
	"github.com/momentics/oobpoll/poller"
)

// DefaultEnv wires the probe to the real platform implementations.
func DefaultEnv() Env {
	return Env{
		Startup:         netsys.Startup,
		NewStreamSocket: netsys.NewStreamSocket,
		NewPoller:       poller.New,
	}
}
