// Package facts provides the operating system facts used to pick a rule persistence strategy.
package facts

// Fact names.
const (
	OSFamily                  = "os_family"
	OSName                    = "os_name"
	OSRelease                 = "os_release"
	IptablesPersistentVersion = "iptables_persistent_version"
)

// Names lists every known fact.
var Names = []string{OSFamily, OSName, OSRelease, IptablesPersistentVersion}

// Provider looks up facts. Values may be cached; Flush drops the cached value of a fact
// so the next lookup recomputes it.
type Provider interface {
	Fact(name string) (string, bool)
	Flush(name string)
}

// Static is a fixed set of facts.
type Static map[string]string

// Fact returns the named fact. Empty values count as absent.
func (s Static) Fact(name string) (string, bool) {
	value, ok := s[name]
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

// Flush does nothing, static facts never change.
func (s Static) Flush(name string) {}

// Layered returns facts from Overrides first and from Base otherwise.
type Layered struct {
	Overrides Static
	Base      Provider
}

// Fact returns the named fact.
func (l Layered) Fact(name string) (string, bool) {
	value, ok := l.Overrides.Fact(name)
	if ok {
		return value, true
	}

	if l.Base == nil {
		return "", false
	}

	return l.Base.Fact(name)
}

// Flush flushes the fact from the base provider.
func (l Layered) Flush(name string) {
	if l.Base != nil {
		l.Base.Flush(name)
	}
}

// Snapshot reads all the known facts from p.
func Snapshot(p Provider) map[string]string {
	snapshot := map[string]string{}
	for _, name := range Names {
		value, ok := p.Fact(name)
		if ok {
			snapshot[name] = value
		}
	}

	return snapshot
}
