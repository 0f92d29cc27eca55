package util

import (
	"fmt"
	"strconv"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// CompareDebianVersions compares two package versions using the dpkg ordering rules.
//
// Return 0 if they are equal, 1 if the first version is greater than the second
// and -1 if the second is greater than the first.
func CompareDebianVersions(version1 string, version2 string) (int, error) {
	v1, err := debversion.NewVersion(version1)
	if err != nil {
		return 0, fmt.Errorf("Invalid version %q: %w", version1, err)
	}

	v2, err := debversion.NewVersion(version2)
	if err != nil {
		return 0, fmt.Errorf("Invalid version %q: %w", version2, err)
	}

	if v1.Equal(v2) {
		return 0, nil
	}

	if v1.LessThan(v2) {
		return -1, nil
	}

	return 1, nil
}

// ReleaseMajor returns the leading integer of an OS release string ("7.9" is 7).
// A release without a leading number is 0.
func ReleaseMajor(release string) int {
	release = strings.TrimSpace(release)

	end := 0
	for end < len(release) && release[end] >= '0' && release[end] <= '9' {
		end++
	}

	major, err := strconv.Atoi(release[:end])
	if err != nil {
		return 0
	}

	return major
}

// ReleaseAtLeast returns whether a "major.minor" release is at least the given one.
func ReleaseAtLeast(release string, major int, minor int) bool {
	releaseMajor := ReleaseMajor(release)
	if releaseMajor != major {
		return releaseMajor > major
	}

	_, rest, found := strings.Cut(strings.TrimSpace(release), ".")
	if !found {
		return minor == 0
	}

	return ReleaseMajor(rest) >= minor
}
