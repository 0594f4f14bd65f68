// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of every delivery.
const DefaultTimeout = 30 * time.Second
