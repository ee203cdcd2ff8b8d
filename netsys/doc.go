// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package netsys owns the host networking-subsystem lifecycle and raw stream
// socket construction. On Windows the subsystem is winsock and Startup/Close
// map to WSAStartup/WSACleanup; on POSIX hosts no handshake exists and the
// stack is a state token only, kept so callers release resources the same way
// everywhere.
package netsys
