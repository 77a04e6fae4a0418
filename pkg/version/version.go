package version

import "github.com/Masterminds/semver"

// These are set at link time by the release build. The defaults mark a
// development build.
var (
	GitVersion = "v0.0.0-dev"
	GitCommit  = ""
	BuildDate  = ""
)

// BuildInfo describes the client build.
type BuildInfo struct {
	GitVersion string `json:"gitVersion"`
	GitCommit  string `json:"gitCommit,omitempty"`
	BuildDate  string `json:"buildDate,omitempty"`
}

// Get returns the client's build information.
func Get() BuildInfo {
	return BuildInfo{
		GitVersion: GitVersion,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
	}
}

// Semver parses the build's version, or nil for development builds with an
// unparseable version string.
func (b BuildInfo) Semver() *semver.Version {
	v, err := semver.NewVersion(b.GitVersion)
	if err != nil {
		return nil
	}
	return v
}
