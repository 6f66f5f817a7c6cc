package services

import "strings"

// caribbeanCountryCodes maps the nations served by the product to ISO 3166
// alpha-2 codes for geocode restriction. Lookup is case-insensitive exact
// match; an unknown country simply means no restriction is applied.
var caribbeanCountryCodes = map[string]string{
	"anguilla":                         "AI",
	"antigua and barbuda":              "AG",
	"aruba":                            "AW",
	"bahamas":                          "BS",
	"barbados":                         "BB",
	"belize":                           "BZ",
	"bermuda":                          "BM",
	"british virgin islands":           "VG",
	"cayman islands":                   "KY",
	"cuba":                             "CU",
	"curacao":                          "CW",
	"dominica":                         "DM",
	"dominican republic":               "DO",
	"grenada":                          "GD",
	"guadeloupe":                       "GP",
	"guyana":                           "GY",
	"haiti":                            "HT",
	"jamaica":                          "JM",
	"martinique":                       "MQ",
	"montserrat":                       "MS",
	"puerto rico":                      "PR",
	"saint kitts and nevis":            "KN",
	"saint lucia":                      "LC",
	"saint vincent and the grenadines": "VC",
	"suriname":                         "SR",
	"trinidad and tobago":              "TT",
	"turks and caicos":                 "TC",
	"us virgin islands":                "VI",
}

func CountryCodeFor(country string) string {
	return caribbeanCountryCodes[strings.ToLower(strings.TrimSpace(country))]
}
