// Package buildinfo carries the release identity stamped in at link time:
//
//	go build -ldflags "-X github.com/cleared-dev/ledgerbook/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build identity for --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
