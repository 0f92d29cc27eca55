// Package version holds the release version of xtables.
package version

// Version contains the version number.
var Version = "0.3.0"

