package persist

// OSKey selects the rule persistence strategy of a platform.
type OSKey int

// Platforms with a known persistence strategy.
const (
	OSKeyUnsupported OSKey = iota
	OSKeyRedHat
	OSKeyFedora
	OSKeyDebian
	OSKeyDebianManual
	OSKeyArchlinux
	OSKeyAmazon
	OSKeySuse
)

var osKeyNames = map[OSKey]string{
	OSKeyUnsupported:  "Unsupported",
	OSKeyRedHat:       "RedHat",
	OSKeyFedora:       "Fedora",
	OSKeyDebian:       "Debian",
	OSKeyDebianManual: "Debian_manual",
	OSKeyArchlinux:    "Archlinux",
	OSKeyAmazon:       "Amazon",
	OSKeySuse:         "Suse",
}

// String returns the platform name of the key.
func (k OSKey) String() string {
	name, ok := osKeyNames[k]
	if !ok {
		return osKeyNames[OSKeyUnsupported]
	}

	return name
}

// parseOSKey maps an OS family to its key. Families without a strategy map to OSKeyUnsupported.
func parseOSKey(family string) OSKey {
	for key, name := range osKeyNames {
		if key != OSKeyUnsupported && name == family {
			return key
		}
	}

	return OSKeyUnsupported
}

// redHatNames are the distributions reported as part of the RedHat family.
var redHatNames = []string{
	"RedHat", "CentOS", "Fedora", "Scientific", "SL", "SLC", "Ascendos", "CloudLinux", "PSBM",
	"OracleLinux", "OVS", "OEL", "Amazon", "XenServer", "VirtuozzoLinux", "Rocky", "AlmaLinux",
}

// debianNames are the distributions reported as part of the Debian family.
var debianNames = []string{"Debian", "Ubuntu"}

// systemdRedHatNames are the RedHat rebuilds persisting through the systemd-era init scripts from release 7.
var systemdRedHatNames = []string{
	"RedHat", "CentOS", "Scientific", "SL", "SLC", "Ascendos", "CloudLinux", "PSBM",
	"OracleLinux", "OVS", "OEL", "XenServer", "VirtuozzoLinux", "Rocky", "AlmaLinux",
}
