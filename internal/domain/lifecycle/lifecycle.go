// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as server shutdown and the
// initial database ping.
const DefaultTimeout = 10 * time.Second
