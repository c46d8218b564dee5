package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information.
type Browser struct {
	Name    string
	Version string
	Vendor  string
}

// BrowserPattern defines how a browser is recognized.
type BrowserPattern struct {
	Name     string
	Vendor   string
	Keywords []string
	Excludes []string
	Regex    *regexp.Regexp
	// AnyKeyword matches when any keyword is present instead of all of them.
	AnyKeyword bool
}

// extractVersion returns the first capture group of regex, capped at 20 chars.
func extractVersion(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		if len(version) > 20 {
			version = version[:20]
		}
		return version
	}
	return ""
}

func matchPattern(ua string, pattern BrowserPattern) bool {
	if pattern.AnyKeyword {
		matched := false
		for _, keyword := range pattern.Keywords {
			if strings.Contains(ua, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	} else {
		for _, keyword := range pattern.Keywords {
			if !strings.Contains(ua, keyword) {
				return false
			}
		}
	}
	for _, exclude := range pattern.Excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	return true
}

// browserPatterns are tried in order. Chromium derivatives come before Chrome,
// and Chrome before Safari.
var browserPatterns = []BrowserPattern{
	{Name: BrowserEdge, Vendor: "Microsoft", Keywords: []string{"edg/", "edge/", "edga/", "edgios/"}, AnyKeyword: true, Regex: regexp.MustCompile(`(?:edge|edg|edga|edgios)/([\d.]+)`)},
	{Name: BrowserSamsung, Vendor: "Samsung", Keywords: []string{"samsungbrowser"}, Regex: regexp.MustCompile(`samsungbrowser/([\d.]+)`)},
	{Name: BrowserUC, Vendor: "UCWeb", Keywords: []string{"ucbrowser"}, Regex: regexp.MustCompile(`ucbrowser/([\d.]+)`)},
	{Name: BrowserQQ, Vendor: "Tencent", Keywords: []string{"qqbrowser"}, Regex: regexp.MustCompile(`qqbrowser/([\d.]+)`)},
	{Name: BrowserHuawei, Vendor: "Huawei", Keywords: []string{"huaweibrowser"}, Regex: regexp.MustCompile(`huaweibrowser/([\d.]+)`)},
	{Name: BrowserVivo, Vendor: "Vivo", Keywords: []string{"vivobrowser"}, Regex: regexp.MustCompile(`vivobrowser/([\d.]+)`)},
	{Name: BrowserMIUI, Vendor: "Xiaomi", Keywords: []string{"miuibrowser"}, Regex: regexp.MustCompile(`miuibrowser/([\d.]+)`)},
	{Name: BrowserYandex, Vendor: "Yandex", Keywords: []string{"yabrowser", "yandexbrowser"}, AnyKeyword: true, Regex: regexp.MustCompile(`(?:yabrowser|yandexbrowser)/([\d.]+)`)},
	{Name: BrowserVivaldi, Vendor: "Vivaldi Technologies", Keywords: []string{"vivaldi"}, Regex: regexp.MustCompile(`vivaldi/([\d.]+)`)},
	{Name: BrowserBrave, Vendor: "Brave Software", Keywords: []string{"brave"}, Regex: regexp.MustCompile(`brave/([\d.]+)`)},
	{Name: BrowserOpera, Vendor: "Opera", Keywords: []string{"opr/", "opera"}, AnyKeyword: true, Regex: regexp.MustCompile(`(?:opr|opera)[/ ]([\d.]+)`)},
	{Name: BrowserChrome, Vendor: "Google", Keywords: []string{"chrome/", "crios/"}, AnyKeyword: true, Regex: regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`)},
	{Name: BrowserFirefox, Vendor: "Mozilla", Keywords: []string{"firefox/", "fxios/"}, AnyKeyword: true, Regex: regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`)},
	{Name: BrowserSafari, Vendor: "Apple", Keywords: []string{"safari"}, Excludes: []string{"chrome", "firefox", "android"}, Regex: regexp.MustCompile(`version/([\d.]+)`)},
	{Name: BrowserIE, Vendor: "Microsoft", Keywords: []string{"msie"}, Regex: regexp.MustCompile(`msie ([\d.]+)`)},
}

// ParseBrowser identifies the browser of a lower-cased UA string.
func ParseBrowser(lowerUA string) Browser {
	// IE 11 dropped the MSIE token.
	if strings.Contains(lowerUA, "trident/") && !strings.Contains(lowerUA, "msie") {
		return Browser{Name: BrowserIE, Version: "11.0", Vendor: "Microsoft"}
	}

	for _, pattern := range browserPatterns {
		if matchPattern(lowerUA, pattern) {
			version := extractVersion(lowerUA, pattern.Regex)
			if version == "" {
				version = Unknown
			}
			return Browser{Name: pattern.Name, Version: version, Vendor: pattern.Vendor}
		}
	}

	return Browser{Name: Unknown, Version: Unknown, Vendor: Unknown}
}
