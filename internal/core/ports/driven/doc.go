// Package driven defines the interfaces core services call OUT to
// infrastructure: the "driven" or secondary ports of the hexagon.
// Core depends on these interfaces; adapter packages implement them.
//
// # Required ports
//
// Without these the application cannot run:
//
//   - FileStore: filesystem access for documents, backups and fallbacks
//   - ConfigStore: persisted application settings
//
// # Optional ports
//
// These may be nil and the application degrades gracefully:
//
//   - RunStore: run-history persistence. Without it, completed runs
//     are simply not recorded.
//
// Ports may import the domain package and nothing else internal;
// no port may depend on an adapter.
package driven
