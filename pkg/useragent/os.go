package useragent

import (
	"regexp"
	"strings"
)

// OS is an operating system name with its version, if present.
type OS struct {
	Name    string
	Version string
}

var (
	windowsPhoneKeywords = newKeywordSet("windows phone")
	windowsKeywords      = newKeywordSet("windows")
	iOSKeywords          = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords        = newKeywordSet("macintosh", "mac os x")
	harmonyOSKeywords    = newKeywordSet("harmonyos")
	androidKeywords      = newKeywordSet("android")
	fireOSKeywords       = newKeywordSet("kindle", "silk")
	chromeOSKeywords     = newKeywordSet("cros", "chromeos", "chrome os")
	linuxKeywords        = newKeywordSet("linux", "ubuntu", "debian", "fedora", "mint", "x11")

	windowsPhoneVersion = regexp.MustCompile(`windows phone(?: os)? ([\d.]+)`)
	windowsVersion      = regexp.MustCompile(`windows nt ([\d.]+)`)
	iOSVersion          = regexp.MustCompile(`(?:cpu|iphone) (?:iphone )?os ([\d_]+)`)
	macOSVersion        = regexp.MustCompile(`mac os x ([\d_.]+)`)
	androidVersion      = regexp.MustCompile(`android ([\d.]+)`)
	harmonyOSVersion    = regexp.MustCompile(`harmonyos[/ ]?([\d.]+)`)
	chromeOSVersion     = regexp.MustCompile(`cros \S+ ([\d.]+)`)
)

// ParseOS identifies the operating system of a lower-cased UA string.
// Windows is checked first since it dominates desktop traffic.
func ParseOS(lowerUA string) OS {
	if lowerUA == "" {
		return OS{Name: Unknown, Version: Unknown}
	}

	switch {
	case windowsKeywords.contains(lowerUA):
		if windowsPhoneKeywords.contains(lowerUA) {
			return OS{Name: OSWindowsPhone, Version: versionOf(lowerUA, windowsPhoneVersion)}
		}
		v := versionOf(lowerUA, windowsVersion)
		if v != Unknown {
			v = "NT " + v
		}
		return OS{Name: OSWindows, Version: v}
	case iOSKeywords.contains(lowerUA):
		return OS{Name: OSiOS, Version: dotted(versionOf(lowerUA, iOSVersion))}
	case macOSKeywords.contains(lowerUA):
		return OS{Name: OSMacOS, Version: dotted(versionOf(lowerUA, macOSVersion))}
	case harmonyOSKeywords.contains(lowerUA):
		return OS{Name: OSHarmonyOS, Version: versionOf(lowerUA, harmonyOSVersion)}
	case androidKeywords.contains(lowerUA):
		return OS{Name: OSAndroid, Version: versionOf(lowerUA, androidVersion)}
	case fireOSKeywords.contains(lowerUA):
		return OS{Name: OSFireOS, Version: Unknown}
	case chromeOSKeywords.contains(lowerUA):
		return OS{Name: OSChromeOS, Version: versionOf(lowerUA, chromeOSVersion)}
	case linuxKeywords.contains(lowerUA):
		return OS{Name: OSLinux, Version: Unknown}
	}

	return OS{Name: Unknown, Version: Unknown}
}

func versionOf(ua string, re *regexp.Regexp) string {
	if v := extractVersion(ua, re); v != "" {
		return v
	}
	return Unknown
}

// dotted turns Apple's 10_15_7 notation into 10.15.7.
func dotted(v string) string {
	return strings.ReplaceAll(v, "_", ".")
}
