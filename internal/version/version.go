// Package version holds the build version, set with
// -ldflags "-X github.com/bnema/witrix-cli/internal/version.Version=...".
package version

var Version = "dev"

// UserAgent is sent with every API request.
func UserAgent() string {
	return "wx/" + Version
}
