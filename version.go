// Package blueprints holds build metadata for the blueprint editor.
package blueprints

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Set at build time with -ldflags "-X github.com/iw2rmb/blueprints.Commit=...".
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// Describe is the one-line banner printed by `blueprints version`.
func Describe() string {
	return fmt.Sprintf("blueprints %s (%s) built %s with %s %s/%s",
		VersionTag(), Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded Version is valid SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
