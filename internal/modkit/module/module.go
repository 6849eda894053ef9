// Package module defines the contract every mountable module satisfies and
// the bootstrap registry modules use to find each other's ports
package module

import phttp "wordlebot/internal/platform/net/http"

// Module mounts routes and exposes a port set for cross wiring
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
