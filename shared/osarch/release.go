package osarch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// osReleasePaths lists the os-release files in lookup order.
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// GetOSRelease returns a map with the content of the first os-release file found.
// An empty map is returned when no os-release file exists.
func GetOSRelease() (map[string]string, error) {
	for _, osPath := range osReleasePaths {
		osRelease, err := getOSRelease(osPath)
		if err != nil {
			return nil, err
		}

		if len(osRelease) > 0 {
			return osRelease, nil
		}
	}

	return map[string]string{}, nil
}

// IDLike returns the ID followed by the ID_LIKE entries of an os-release map, lowercased.
func IDLike(osRelease map[string]string) []string {
	ids := []string{}

	id := strings.ToLower(osRelease["ID"])
	if id != "" {
		ids = append(ids, id)
	}

	for _, like := range strings.Fields(strings.ToLower(osRelease["ID_LIKE"])) {
		ids = append(ids, like)
	}

	return ids
}

func getOSRelease(filename string) (map[string]string, error) {
	osRelease := make(map[string]string)

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return osRelease, nil
		}

		return osRelease, err
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.SplitN(line, "=", 2)
		if len(tokens) != 2 {
			return osRelease, fmt.Errorf("%s: invalid format on line %d", filename, i+1)
		}

		osRelease[tokens[0]] = strings.Trim(tokens[1], `'"`)
	}

	return osRelease, nil
}
