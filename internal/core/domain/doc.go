// Package domain holds the core entities of Linecull, the innermost
// layer of the hexagon:
//
//   - Document: an in-memory working copy of a text file, split into lines
//   - deletion-set normalization: dedupe, bounds-drop, descending sort
//   - RemoveLines: order-independent keep-mask removal
//   - RemovalResult and Outcome: what a finished run reports
//   - AppSettings: the write-retry and history knobs
//
// Everything in this package imports the standard library only. All
// other packages depend on domain, never the reverse.
package domain
