// Package logger provides console logging for utilkit applications
// using zerolog.
//
// Prefixed writes plain "{prefix} {message}" lines to standard output and
// "{prefix} [ERROR] {message}" lines to standard error. Logger is the
// leveled, structured logger used for diagnostics.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//	  prefix: "[APP]"
//
// # Usage
//
//	p := logger.NewPrefixed(logger.WithPrefix("[APP]"))
//	p.Log("started")   // [APP] started
//	p.Error("failed")  // [APP] [ERROR] failed
//
//	log := logger.WithComponent("cli")
//	log.Info("config loaded", logger.Fields("file", path))
package logger
