// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds individual lifecycle operations such as the initial
// database ping and graceful server shutdown.
const DefaultTimeout = 30 * time.Second
