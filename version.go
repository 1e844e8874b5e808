package rodut

import "fmt"

const (
	major = 1
	minor = 0
	patch = 1
)

// StringVersion returns the API version reported by GET /rodut/v1/version.
func StringVersion() string {
	return fmt.Sprintf("v%d.%d.%d", major, minor, patch)
}
