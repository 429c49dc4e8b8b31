package config

// Metadata endpoint and encoding table.
const (
	FetchEndpoint = "fetch.endpoint"
	FormatsTable  = "formats.table"
)

// Optional signature deciphering.
const (
	CipherPlayerScript = "cipher.player_script"
)

// HTTP client.
const (
	HTTPTimeout     = "http.timeout"
	HTTPMaxAttempts = "http.max_attempts"
	HTTPUserAgent   = "http.user_agent"
	HTTPProxy       = "http.proxy"
)

// Logging.
const (
	LogLevel      = "log.level"
	LogFormat     = "log.format"
	LogOutput     = "log.output"
	LogComponents = "log.components"
	LogShowCaller = "log.show_caller"
	LogTimestamp  = "log.timestamp"
)

// Command line.
const (
	CliColored       = "cli.colored"
	DownloadOutput   = "download.output"
	DownloadProgress = "download.progress"
)
