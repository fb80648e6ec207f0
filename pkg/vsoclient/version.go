package vsoclient

import (
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// apiVersionPattern splits "5.0-preview.2" into version, preview marker and resource version
var apiVersionPattern = regexp.MustCompile(`(\d+(\.\d+)?)(-preview(\.(\d+))?)?`)

// NegotiateAPIVersion picks the version to send for a resource.
//
// The requested version is kept when the location can serve it: it is released, or
// it is a preview within the location's max version whose resource version (if
// given) the location knows. Otherwise the newest version the location offers is
// sent instead.
func NegotiateAPIVersion(location *ResourceLocation, requested string) string {
	var (
		apiVersion       *semver.Version
		apiVersionString string
	)

	if requested != "" {
		if m := apiVersionPattern.FindStringSubmatch(requested); m != nil && m[1] != "" {
			apiVersionString = m[1]
			apiVersion = parseVersion(m[1])
			isPreview := m[3] != ""
			resourceVersion := 0
			if m[5] != "" {
				resourceVersion, _ = strconv.Atoi(m[5])
			}

			released := parseVersion(location.ReleasedVersion)
			maxVersion := parseVersion(location.MaxVersion)
			if apiVersion != nil &&
				(lessOrEqual(apiVersion, released) ||
					(resourceVersion == 0 && isPreview && lessOrEqual(apiVersion, maxVersion)) ||
					(resourceVersion != 0 && lessOrEqual(apiVersion, maxVersion) && resourceVersion <= location.ResourceVersion)) {
				return requested
			}
		}
	}

	if maxVersion := parseVersion(location.MaxVersion); apiVersion != nil && maxVersion != nil && apiVersion.LessThan(maxVersion) {
		return apiVersionString + "-preview"
	}
	if location.MaxVersion == location.ReleasedVersion {
		return location.MaxVersion
	}
	return location.MaxVersion + "-preview." + strconv.Itoa(location.ResourceVersion)
}

// parseVersion accepts the service's "major.minor" strings. Unparseable values yield nil.
func parseVersion(s string) *semver.Version {
	if s == "" {
		return nil
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil
	}
	return v
}

func lessOrEqual(a, b *semver.Version) bool {
	if a == nil || b == nil {
		return false
	}
	return !a.GreaterThan(b)
}
