// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "jellytv"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// ClientName is reported to the media server in the authorization header.
	ClientName = "jellytv"

	// UserAgent is sent with every request to the media server.
	UserAgent = ClientName + "/" + Version
)

// Logo is printed above the root command help.
const Logo = `
   _      _ _       _
  (_)___ | | |_   _| |___   __
  | / -_)| | | | | |  _\ \ / /
 _/ \___||_|_|\_, |\__|\_\_/
|__/          |__/
`

// Build metadata, set with -ldflags "-X github.com/jellytv/jellytv/constant.Revision=...".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
