// Package lifecycle holds process-wide lifecycle settings shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (DB ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
