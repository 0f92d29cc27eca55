package attr

import (
	"fmt"
	"regexp"
)

// ICMP families.
const (
	FamilyInet  = "inet"
	FamilyInet6 = "inet6"
)

var icmpNumeric = regexp.MustCompile(`\d{1,2}$`)

var icmpTypes = map[string]map[string]string{
	FamilyInet: {
		"echo-reply":              "0",
		"destination-unreachable": "3",
		"source-quench":           "4",
		"redirect":                "6",
		"echo-request":            "8",
		"router-advertisement":    "9",
		"router-solicitation":     "10",
		"time-exceeded":           "11",
		"parameter-problem":       "12",
		"timestamp-request":       "13",
		"timestamp-reply":         "14",
		"address-mask-request":    "17",
		"address-mask-reply":      "18",
	},
	FamilyInet6: {
		"destination-unreachable": "1",
		"too-big":                 "2",
		"time-exceeded":           "3",
		"parameter-problem":       "4",
		"echo-request":            "128",
		"echo-reply":              "129",
		"router-solicitation":     "133",
		"router-advertisement":    "134",
		"neighbour-solicitation":  "135",
		"neighbour-advertisement": "136",
		"redirect":                "137",
	},
}

// ICMPNameToNumber converts an ICMP type name into its number for the given family.
// Values already ending in one or two digits are returned as is, whatever the family.
func ICMPNameToNumber(value string, family string) (Value, error) {
	if icmpNumeric.MatchString(value) {
		return Some(value), nil
	}

	table, ok := icmpTypes[family]
	if !ok {
		return None(), fmt.Errorf("Unsupported protocol family %q: %w", family, ErrInvalidArgument)
	}

	number, ok := table[value]
	if !ok {
		return None(), nil
	}

	return Some(number), nil
}
