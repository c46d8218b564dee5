package useragent

import "strings"

// keywordSet is a set of substrings; contains reports whether any occurs.
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "ping", "lighthouse", "slurp", "daum", "sogou", "yeti", "facebook", "twitter", "slack", "linkedin", "whatsapp", "telegram", "discord", "camo asset", "generator", "monitor", "analyzer", "validator", "fetcher", "scraper", "check")
	tvKeywords      = newKeywordSet("smart-tv", "smarttv", "appletv", "googletv", "android tv", "webos", "tizen")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo", "wiiu")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk")
	mobileKeywords  = newKeywordSet("mobile", "iphone", "android", "windows phone", "iemobile", "blackberry", "nokia")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "ubuntu", "fedora", "debian", "chromeos", "cros")
)

// ParseDeviceType classifies a lower-cased UA string.
// Order matters: iOS devices first, then bots, then Android phone/tablet split.
func ParseDeviceType(lowerUA string) string {
	if lowerUA == "" {
		return DeviceTypeUnknown
	}

	if strings.Contains(lowerUA, "ipad") {
		return DeviceTypeTablet
	}
	if strings.Contains(lowerUA, "iphone") {
		return DeviceTypeMobile
	}

	if botKeywords.contains(lowerUA) {
		return DeviceTypeBot
	}

	// Android tablets omit the "mobile" token.
	if strings.Contains(lowerUA, "android") && !tvKeywords.contains(lowerUA) {
		if strings.Contains(lowerUA, "mobile") {
			return DeviceTypeMobile
		}
		return DeviceTypeTablet
	}

	switch {
	case tvKeywords.contains(lowerUA):
		return DeviceTypeTV
	case consoleKeywords.contains(lowerUA):
		return DeviceTypeConsole
	case tabletKeywords.contains(lowerUA):
		return DeviceTypeTablet
	case mobileKeywords.contains(lowerUA):
		return DeviceTypeMobile
	case strings.Contains(lowerUA, "windows") &&
		(strings.Contains(lowerUA, "touch") || strings.Contains(lowerUA, "tablet")):
		return DeviceTypeTablet
	case desktopKeywords.contains(lowerUA):
		return DeviceTypeDesktop
	}

	return DeviceTypeUnknown
}

// categoryOf maps a device type to its reporting category.
func categoryOf(deviceType string) string {
	switch deviceType {
	case DeviceTypeDesktop:
		return CategoryPC
	case DeviceTypeMobile, DeviceTypeTablet:
		return CategorySmartPhone
	case DeviceTypeBot:
		return CategoryCrawler
	case DeviceTypeTV, DeviceTypeConsole:
		return CategoryAppliance
	default:
		return Unknown
	}
}
