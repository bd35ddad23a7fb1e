package tennis

import (
	"fmt"
	"strings"
)

const (
	// DefaultFlagWidth is the flag image width used when none is requested.
	DefaultFlagWidth = 20
	unknownISOCode   = "un"
	flagURLTemplate  = "https://flagcdn.com/w%d/%s.png"
)

var iocToISO = map[string]string{
	"USA": "us", "ESP": "es", "SRB": "rs", "ITA": "it", "GBR": "gb",
	"RUS": "ru", "GER": "de", "FRA": "fr", "SUI": "ch", "AUT": "at",
	"AUS": "au", "ARG": "ar", "CRO": "hr", "CAN": "ca", "JPN": "jp",
	"GRE": "gr", "BEL": "be", "NED": "nl", "SWE": "se", "POL": "pl",
	"NOR": "no", "BUL": "bg", "RSA": "za", "CZE": "cz", "CHL": "cl",
	"POR": "pt", "KAZ": "kz", "DEN": "dk", "FIN": "fi", "BRA": "br",
	"KOR": "kr", "UKR": "ua", "GEO": "ge", "HUN": "hu", "ROU": "ro",
	"IND": "in", "URU": "uy", "COL": "co", "CHN": "cn", "TPE": "tw",
	"MEX": "mx", "SVK": "sk", "SLO": "si", "DOM": "do", "TUN": "tn",
	"LAT": "lv", "EST": "ee", "MDA": "md", "LTU": "lt", "CYP": "cy",
	"BLR": "by",
}

// ISOCountryCode maps a three-letter IOC code to its lowercase ISO 3166
// alpha-2 code. Unknown codes map to "un".
func ISOCountryCode(ioc string) string {
	if iso, ok := iocToISO[strings.ToUpper(strings.TrimSpace(ioc))]; ok {
		return iso
	}
	return unknownISOCode
}

// FlagURL returns the flag image for an IOC code. A non-positive width uses
// DefaultFlagWidth.
func FlagURL(ioc string, width int) string {
	if width <= 0 {
		width = DefaultFlagWidth
	}
	return fmt.Sprintf(flagURLTemplate, width, ISOCountryCode(ioc))
}
