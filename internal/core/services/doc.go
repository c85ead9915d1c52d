// Package services implements the driving ports. A service carries
// the business logic for one concern (clean, restore, history,
// settings) and reaches infrastructure only through driven ports.
// The sole dependency beyond the hexagon is run ID generation.
package services
