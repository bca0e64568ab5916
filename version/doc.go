// Package version reports the utilkit build version.
//
// Version and Commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/utilkit/version.Version=1.0.0"
//
// When Commit is not set, the VCS revision recorded by the Go toolchain is
// used.
package version
