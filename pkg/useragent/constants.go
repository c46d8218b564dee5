package useragent

// Unknown is reported for every field that cannot be determined.
const Unknown = "UNKNOWN"

// Device types
const (
	DeviceTypeBot     = "bot"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeDesktop = "desktop"
	DeviceTypeTV      = "tv"
	DeviceTypeConsole = "console"
	DeviceTypeUnknown = "unknown"
)

// Categories group device types the way the echo output reports them.
const (
	CategoryPC         = "pc"
	CategorySmartPhone = "smartphone"
	CategoryCrawler    = "crawler"
	CategoryAppliance  = "appliance"
)

// Browser types
const (
	BrowserTypeBrowser = "browser"
	BrowserTypeCrawler = "crawler"
)

// Operating system names
const (
	OSWindows      = "Windows"
	OSWindowsPhone = "Windows Phone OS"
	OSMacOS        = "Mac OSX"
	OSiOS          = "iOS"
	OSAndroid      = "Android"
	OSLinux        = "Linux"
	OSChromeOS     = "ChromeOS"
	OSHarmonyOS    = "HarmonyOS"
	OSFireOS       = "Fire OS"
)

// Browser names
const (
	BrowserChrome  = "Chrome"
	BrowserFirefox = "Firefox"
	BrowserSafari  = "Safari"
	BrowserEdge    = "Edge"
	BrowserOpera   = "Opera"
	BrowserIE      = "Internet Explorer"
	BrowserSamsung = "SamsungBrowser"
	BrowserUC      = "UC Browser"
	BrowserQQ      = "QQ Browser"
	BrowserHuawei  = "Huawei Browser"
	BrowserVivo    = "Vivo Browser"
	BrowserMIUI    = "MIUI Browser"
	BrowserBrave   = "Brave"
	BrowserVivaldi = "Vivaldi"
	BrowserYandex  = "Yandex Browser"
)
