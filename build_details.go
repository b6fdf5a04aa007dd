package edmxconv

import "fmt"

// version is stamped with -ldflags "-X github.com/erraggy/edmxconv.version=..."
// by release builds and stays "dev" otherwise.
var version = "dev"

// Version returns the release version, or "dev" for builds from source.
func Version() string {
	return version
}

// UserAgent returns the identifier edmxconv reports to MCP clients and in logs
func UserAgent() string {
	return fmt.Sprintf("edmxconv/%s", version)
}
