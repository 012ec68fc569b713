// Package cli implements the stubd command-line interface.
//
// Commands:
//
//   - serve: answer HTTP requests from a stub file
//   - validate: check a stub file without serving it
//   - match: report which stub a request would hit
package cli
