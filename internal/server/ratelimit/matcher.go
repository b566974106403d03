package ratelimit

import "strings"

// unlimited is returned for routes that are never throttled.
var unlimited = EndpointConfig{Path: "/health", Method: "GET"}

// MatchEndpoint picks the limit tier for a request. An exact path wins;
// otherwise the longest configured prefix ending in "/" applies, so "/users/"
// covers every "/users/{id}/..." lookup. A nil result means the default tier.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == unlimited.Path && method == unlimited.Method {
		tier := unlimited
		return &tier
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
