// Package driving defines the interfaces external actors use to reach
// core services: the "driving" ports of the hexagon. The CLI and the
// review TUI both talk to the application exclusively through them.
//
// The implementations live in internal/core/services.
package driving
