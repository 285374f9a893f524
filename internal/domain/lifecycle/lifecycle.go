// Package lifecycle holds shared constants for process start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of every delivery and the store
// connection teardown.
const DefaultTimeout = 10 * time.Second
