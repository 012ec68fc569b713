// Package logging builds the structured loggers used across stubd.
//
// Loggers are plain *slog.Logger values. The registry, the transport, the
// handler and the CLI all accept one through SetLogger and default to Nop,
// so library users get silence unless they opt in:
//
//	log := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatJSON,
//	})
//	reg.SetLogger(logging.Component(log, "registry"))
package logging
