package facts

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lxc/xtables/internal/util"
	"github.com/lxc/xtables/shared/logger"
	"github.com/lxc/xtables/shared/osarch"
	"github.com/lxc/xtables/shared/subprocess"
)

// osNames maps os-release IDs to distribution names.
var osNames = map[string]string{
	"almalinux":           "AlmaLinux",
	"amzn":                "Amazon",
	"arch":                "Archlinux",
	"centos":              "CentOS",
	"cloudlinux":          "CloudLinux",
	"debian":              "Debian",
	"fedora":              "Fedora",
	"ol":                  "OracleLinux",
	"opensuse":            "OpenSuSE",
	"opensuse-leap":       "OpenSuSE",
	"opensuse-tumbleweed": "OpenSuSE",
	"rhel":                "RedHat",
	"rocky":               "Rocky",
	"scientific":          "Scientific",
	"sled":                "SLED",
	"sles":                "SLES",
	"ubuntu":              "Ubuntu",
	"virtuozzo":           "VirtuozzoLinux",
	"xenenterprise":       "XenServer",
}

// osFamilies maps os-release IDs (including ID_LIKE entries) to OS families.
var osFamilies = map[string]string{
	"almalinux":           "RedHat",
	"amzn":                "RedHat",
	"arch":                "Archlinux",
	"centos":              "RedHat",
	"cloudlinux":          "RedHat",
	"debian":              "Debian",
	"fedora":              "RedHat",
	"ol":                  "RedHat",
	"opensuse":            "Suse",
	"opensuse-leap":       "Suse",
	"opensuse-tumbleweed": "Suse",
	"rhel":                "RedHat",
	"rocky":               "RedHat",
	"scientific":          "RedHat",
	"sled":                "Suse",
	"sles":                "Suse",
	"suse":                "Suse",
	"ubuntu":              "Debian",
	"virtuozzo":           "RedHat",
	"xenenterprise":       "RedHat",
}

var packageVersion = regexp.MustCompile(`\d+\.\d+`)

type cachedFact struct {
	value string
	ok    bool
}

// System computes facts from the running system and caches them until flushed.
type System struct {
	mu    sync.Mutex
	cache map[string]cachedFact

	// releaseSource provides os_name and os_release when picking the persistence package.
	releaseSource Provider

	readOSRelease func() (map[string]string, error)
	runCommand    func(ctx context.Context, name string, arg ...string) (string, error)
}

// NewSystem returns a fact provider reading os-release and the dpkg database.
func NewSystem() *System {
	return &System{
		cache:         map[string]cachedFact{},
		readOSRelease: osarch.GetOSRelease,
		runCommand:    subprocess.RunCommandContext,
	}
}

// SetReleaseSource makes the package version fact read os_name and os_release from p,
// usually a Layered provider on top of s, so that overridden values pick the package.
func (s *System) SetReleaseSource(p Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseSource = p
}

// Fact returns the named fact, computing it on first use.
func (s *System) Fact(name string) (string, bool) {
	s.mu.Lock()
	cached, ok := s.cache[name]
	s.mu.Unlock()

	if ok {
		return cached.value, cached.ok
	}

	// Computed unlocked as the release source may call back into s.
	value, ok := s.compute(name)

	s.mu.Lock()
	s.cache[name] = cachedFact{value: value, ok: ok}
	s.mu.Unlock()

	return value, ok
}

// Flush drops the cached value of the named fact.
func (s *System) Flush(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cache, name)
}

func (s *System) compute(name string) (string, bool) {
	switch name {
	case OSFamily, OSName, OSRelease:
		osRelease, err := s.readOSRelease()
		if err != nil {
			logger.Warn("Failed to read os-release", logger.Ctx{"err": err})
			return "", false
		}

		return osReleaseFact(name, osRelease)
	case IptablesPersistentVersion:
		return s.persistentVersion()
	}

	return "", false
}

func osReleaseFact(name string, osRelease map[string]string) (string, bool) {
	var value string

	switch name {
	case OSName:
		value = osName(osRelease)
	case OSFamily:
		value = osFamily(osRelease)
	case OSRelease:
		value = osRelease["VERSION_ID"]
	}

	return value, value != ""
}

func osName(osRelease map[string]string) string {
	id := strings.ToLower(osRelease["ID"])
	if id == "" {
		return ""
	}

	name, ok := osNames[id]
	if ok {
		return name
	}

	return cases.Title(language.Und).String(id)
}

func osFamily(osRelease map[string]string) string {
	for _, id := range osarch.IDLike(osRelease) {
		family, ok := osFamilies[id]
		if ok {
			return family
		}
	}

	return ""
}

// persistentVersion returns the installed version of the package providing the
// "save" action, netfilter-persistent on newer releases and iptables-persistent before.
func (s *System) persistentVersion() (string, bool) {
	s.mu.Lock()
	source := s.releaseSource
	s.mu.Unlock()

	if source == nil {
		source = s
	}

	name, _ := source.Fact(OSName)
	if !slices.Contains([]string{"Debian", "Ubuntu"}, name) {
		return "", false
	}

	release, _ := source.Fact(OSRelease)

	pkg := "iptables-persistent"
	if (name == "Debian" && util.ReleaseAtLeast(release, 8, 0)) || (name == "Ubuntu" && util.ReleaseAtLeast(release, 14, 10)) {
		pkg = "netfilter-persistent"
	}

	out, err := s.runCommand(context.Background(), "dpkg-query", "-Wf", "${Version}", pkg)
	if err != nil {
		logger.Debug("Persistence package not installed", logger.Ctx{"package": pkg, "err": err})
		return "", false
	}

	version := strings.TrimSpace(out)
	if !packageVersion.MatchString(version) {
		return "", false
	}

	return version, true
}
