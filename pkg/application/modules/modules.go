// Package modules runs the long-lived servers of the application inside one
// errgroup and shuts them down when the group context is cancelled.
package modules

import "saftz/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
