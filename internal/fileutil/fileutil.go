// Package fileutil holds the file modes used when writing converted metadata.
package fileutil

import "os"

// OwnerReadWrite is the mode for files written by the CLI (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the mode for files written on behalf of MCP clients, which
// may run under a different user than the server.
const ReadableByAll os.FileMode = 0o644
