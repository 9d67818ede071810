// Package app wires application dependencies for the CLI and server.
//
// It loads Config from YAML, builds the logger, the file store, the
// posterior sampler and the comparison service, and exposes them via the
// Wire struct for commands to use.
package app
