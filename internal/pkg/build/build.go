package build

// Values are replaced by the build script using ldflags.
var (
	BuildVersion = "dev"
	BuildDate    = "-"
	GitCommit    = "-"
)
