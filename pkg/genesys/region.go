package genesys

import "fmt"

// DefaultRegion is used when the configured environment is empty or unknown.
const DefaultRegion = "us_east_1"

// regionHosts maps Genesys Cloud region names to their base host.
var regionHosts = map[string]string{
	"us_east_1":      "mypurecloud.com",
	"eu_west_1":      "mypurecloud.ie",
	"ap_southeast_2": "mypurecloud.com.au",
	"ap_northeast_1": "mypurecloud.jp",
	"eu_central_1":   "mypurecloud.de",
	"us_west_2":      "usw2.pure.cloud",
	"ca_central_1":   "cac1.pure.cloud",
	"ap_northeast_2": "apne2.pure.cloud",
	"eu_west_2":      "euw2.pure.cloud",
	"ap_south_1":     "aps1.pure.cloud",
	"us_east_2":      "use2.us-gov-pure.cloud",
	"sa_east_1":      "sae1.pure.cloud",
}

// Region is a resolved Genesys Cloud environment.
type Region struct {
	Name string
	Host string
}

// ResolveRegion looks up a region by name. The second return value is false when the name was
// unknown and the default region was returned instead.
func ResolveRegion(name string) (Region, bool) {
	if host, ok := regionHosts[name]; ok {
		return Region{Name: name, Host: host}, true
	}
	return Region{Name: DefaultRegion, Host: regionHosts[DefaultRegion]}, false
}

// APIURL is the REST base URL, e.g. https://api.mypurecloud.com.
func (r Region) APIURL() string {
	return fmt.Sprintf("https://api.%s", r.Host)
}

// TokenURL is the client-credentials token endpoint for the region.
func (r Region) TokenURL() string {
	return fmt.Sprintf("https://login.%s/oauth/token", r.Host)
}
