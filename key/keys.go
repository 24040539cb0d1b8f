// Package key defines the configuration identifiers shared by viper, flags and environment bindings.
package key

// Media server connection. Setting all three skips the stored login session.
const (
	ServerURL    = "server.url"
	ServerUserID = "server.user_id"
	ServerToken  = "server.token"
)

// API transport.
const (
	APITimeout    = "api.timeout"
	APIDeviceName = "api.device_name"
)

// Episode rendering.
const (
	EpisodesShowOverview  = "episodes.show_overview"
	EpisodesOverviewWidth = "episodes.overview_width"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface.
const (
	TUIItemSpacing = "tui.item_spacing"
)

// Logging.
const (
	LogsWrite      = "logs.write"
	LogsLevel      = "logs.level"
	LogsJson       = "logs.json"
	LogsMaxSize    = "logs.max_size"
	LogsMaxBackups = "logs.max_backups"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
