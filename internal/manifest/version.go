package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CurrentVersion is written into new manifests.
const CurrentVersion = "1"

// supportedVersions is the range of manifest versions this build can read.
const supportedVersions = "^1"

// ErrUnsupportedVersion is returned for manifests outside supportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported manifest version")

// CheckVersion reports whether a manifest version can be read.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing manifest version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w %q (supported: %s)", ErrUnsupportedVersion, version, supportedVersions)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
