//go:build linux || darwin
// +build linux darwin

// File: netsys/netsys_unix_test.go
// Author: momentics <momentics@gmail.com>

package netsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackLifecycle(t *testing.T) {
	stack, err := Startup()
	require.NoError(t, err)

	assert.NoError(t, stack.Close())
	assert.NoError(t, stack.Close(), "second close is a no-op")
}

func TestStreamSocketLifecycle(t *testing.T) {
	stack, err := Startup()
	require.NoError(t, err)
	defer stack.Close()

	sock, err := NewStreamSocket()
	require.NoError(t, err)
	assert.NotZero(t, sock.Handle())

	assert.NoError(t, sock.Close())
	assert.NoError(t, sock.Close(), "second close is a no-op")
}
