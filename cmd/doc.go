// Package cmd implements all sub-commands that make up the designfmt
// command-line interface.  Each file in this directory registers a single
// sub-command (parse, format, list-types, check).  The plumbing that is
// shared between commands such as configuration loading or formatter
// bootstrap is located in shared.go.
package cmd
