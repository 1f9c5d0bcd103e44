package version

// Set at build time with -ldflags "-X github.com/jsando/patterns/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
