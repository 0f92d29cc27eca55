package attr

import (
	"regexp"
)

var logLevelNumeric = regexp.MustCompile(`^[0-7]$`)

var logLevels = map[string]string{
	"panic":   "0",
	"alert":   "1",
	"crit":    "2",
	"err":     "3",
	"error":   "3",
	"warn":    "4",
	"warning": "4",
	"not":     "5",
	"notice":  "5",
	"info":    "6",
	"debug":   "7",
}

// LogLevelNameToNumber converts a syslog level name into its severity number.
func LogLevelNameToNumber(value string) Value {
	if logLevelNumeric.MatchString(value) {
		return Some(value)
	}

	level, ok := logLevels[value]
	if !ok {
		return None()
	}

	return Some(level)
}
