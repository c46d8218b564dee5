package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent is the classification of a User-Agent header.
// Fields that cannot be determined hold Unknown.
type UserAgent struct {
	raw        string
	deviceType string

	Name        string `json:"name"`
	Category    string `json:"category"`
	OS          string `json:"os"`
	OSVersion   string `json:"os_version"`
	BrowserType string `json:"browser_type"`
	Version     string `json:"version"`
	Vendor      string `json:"vendor"`
}

// String returns the raw user agent string.
func (ua UserAgent) String() string { return ua.raw }

// DeviceType returns the device type (mobile, desktop, tablet, bot, ...).
func (ua UserAgent) DeviceType() string { return ua.deviceType }

// IsBot returns true if the user agent is a crawler.
func (ua UserAgent) IsBot() bool { return ua.deviceType == DeviceTypeBot }

// IsMobile returns true for phones.
func (ua UserAgent) IsMobile() bool { return ua.deviceType == DeviceTypeMobile }

// IsDesktop returns true for desktop computers.
func (ua UserAgent) IsDesktop() bool { return ua.deviceType == DeviceTypeDesktop }

// IsTablet returns true for tablets.
func (ua UserAgent) IsTablet() bool { return ua.deviceType == DeviceTypeTablet }

// IsUnknown returns true if nothing about the device could be determined.
func (ua UserAgent) IsUnknown() bool {
	return ua.deviceType == DeviceTypeUnknown || ua.deviceType == ""
}

// unknownUserAgent is the classification of an empty or unrecognized string.
func unknownUserAgent(raw string) UserAgent {
	return UserAgent{
		raw:         raw,
		deviceType:  DeviceTypeUnknown,
		Name:        Unknown,
		Category:    Unknown,
		OS:          Unknown,
		OSVersion:   Unknown,
		BrowserType: Unknown,
		Version:     Unknown,
		Vendor:      Unknown,
	}
}

// knownBots maps UA substrings to display names; checked in order.
var knownBots = []struct{ keyword, name string }{
	{"adsbot-google", "AdsBot"},
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandexbot", "YandexBot"},
	{"baiduspider", "Baiduspider"},
	{"twitterbot", "Twitterbot"},
	{"facebookexternalhit", "facebook"},
	{"linkedinbot", "LinkedInBot"},
	{"slackbot", "Slackbot"},
	{"telegrambot", "TelegramBot"},
}

var botVendorMap = map[string]string{
	"Googlebot":   "Google",
	"AdsBot":      "Google",
	"Bingbot":     "Microsoft",
	"YandexBot":   "Yandex",
	"Baiduspider": "Baidu",
}

var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

var titleCaser = cases.Title(language.English)

// extractBotName returns a display name for a crawler UA.
func extractBotName(lowerUA string) string {
	for _, bot := range knownBots {
		if strings.Contains(lowerUA, bot.keyword) {
			return bot.name
		}
	}
	for _, pattern := range botNamePatterns {
		if matches := pattern.FindStringSubmatch(lowerUA); len(matches) > 1 {
			return titleCaser.String(matches[1])
		}
	}
	return "Unknown Bot"
}

// Parse classifies ua. The returned UserAgent is always usable; the error
// explains why some fields remained Unknown.
func Parse(ua string) (UserAgent, error) {
	if strings.TrimSpace(ua) == "" {
		return unknownUserAgent(ua), ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)
	result := unknownUserAgent(ua)
	result.deviceType = ParseDeviceType(lowerUA)
	result.Category = categoryOf(result.deviceType)

	os := ParseOS(lowerUA)
	result.OS = os.Name
	result.OSVersion = os.Version

	if result.deviceType == DeviceTypeBot {
		name := extractBotName(lowerUA)
		result.Name = name
		result.BrowserType = BrowserTypeCrawler
		if vendor, ok := botVendorMap[name]; ok {
			result.Vendor = vendor
		}
		return result, nil
	}

	browser := ParseBrowser(lowerUA)
	if browser.Name != Unknown {
		result.Name = browser.Name
		result.Version = browser.Version
		result.Vendor = browser.Vendor
		result.BrowserType = BrowserTypeBrowser
	}

	switch {
	case result.deviceType == DeviceTypeUnknown && browser.Name == Unknown && os.Name == Unknown:
		return result, ErrMalformedUserAgent
	case result.deviceType == DeviceTypeUnknown:
		return result, ErrUnknownDevice
	}

	return result, nil
}

// Classify is Parse without the error: missing or unrecognized input yields
// Unknown fields.
func Classify(ua string) UserAgent {
	result, _ := Parse(ua)
	return result
}
