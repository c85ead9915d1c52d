// Package tui implements the interactive review screen: the doomed
// lines of a pending clean run, navigable and confirmable before
// anything touches the filesystem. It is a driving adapter; all work
// goes through the core service ports.
package tui

import (
	"github.com/custodia-labs/linecull/internal/core/ports/driving"
)

// Ports bundles the services the review screen needs, as one
// injection point.
type Ports struct {
	// Clean previews and executes line removal.
	Clean driving.CleanService
}

// NewPorts wraps the given services for injection into the TUI.
func NewPorts(clean driving.CleanService) *Ports {
	return &Ports{
		Clean: clean,
	}
}

// Validate reports the first missing required port.
func (p *Ports) Validate() error {
	if p.Clean == nil {
		return ErrMissingCleanService
	}
	return nil
}
