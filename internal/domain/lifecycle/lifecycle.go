// Package lifecycle holds shared timing constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook and graceful server shutdown.
const DefaultTimeout = 10 * time.Second
