// File: probe/report.go
// Author: momentics <momentics@gmail.com>
//
// Classification of a returned event mask into report lines.

package probe

import (
	"fmt"
	"io"

	"github.com/eapache/queue"
	"github.com/momentics/oobpoll/api"
)

// report classifies revents and emits the matching lines, urgent first. The
// two checks are independent: either, both, or neither line may fire. Bits
// outside the watched set produce no output. Lines are staged on a FIFO so
// classification order and emission order cannot drift apart.
func report(out io.Writer, revents api.EventMask) {
	lines := queue.New()
	if revents&api.EventUrgent != 0 {
		lines.Add(msgUrgent)
	}
	if revents&api.EventPriorityBand != 0 {
		lines.Add(msgPriorityBand)
	}
	for lines.Length() > 0 {
		fmt.Fprintln(out, lines.Remove().(string))
	}
}
