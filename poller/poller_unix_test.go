//go:build linux || darwin
// +build linux darwin

// File: poller/poller_unix_test.go
// Author: momentics <momentics@gmail.com>

package poller

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/oobpoll/api"
)

func TestWaitReadablePipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)

	p, err := New()
	require.NoError(t, err)

	fds := []api.PollDescriptor{{Handle: r.Fd(), Events: api.EventReadable}}
	n, err := p.Wait(fds, api.WaitForever)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, fds[0].Revents.Has(api.EventReadable))
}

func TestWaitEmptyPipeTimesOut(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	p, err := New()
	require.NoError(t, err)

	fds := []api.PollDescriptor{{Handle: r.Fd(), Events: api.EventReadable}}
	n, err := p.Wait(fds, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, api.EventMask(0), fds[0].Revents)
}

func TestWaitClosedWriterBecomesReady(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, w.Close())

	p, err := New()
	require.NoError(t, err)

	// EOF surfaces as POLLHUP or POLLIN depending on the host.
	fds := []api.PollDescriptor{{Handle: r.Fd(), Events: api.EventReadable}}
	n, err := p.Wait(fds, api.WaitForever)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotZero(t, fds[0].Revents&(api.EventHangup|api.EventReadable))
}

func TestWaitNoDescriptors(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, err = p.Wait(nil, 0)
	assert.ErrorIs(t, err, api.ErrNoDescriptor)
}

func TestMaskTranslationRoundTrip(t *testing.T) {
	masks := []api.EventMask{
		api.EventReadable,
		api.EventWritable,
		api.EventUrgent,
		api.EventPriorityBand,
		api.EventUrgent | api.EventPriorityBand,
	}
	for _, m := range masks {
		assert.Equal(t, m, fromNative(toNative(m)), "mask 0x%x", uint32(m))
	}
}
