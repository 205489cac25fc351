package fetch

import (
	"fmt"
	"net/http"
	"net/url"
)

// proxyFunc routes requests through the configured proxies, per scheme.
// With neither set, the standard HTTP(S)_PROXY environment applies.
func proxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	parse := func(raw string) (*url.URL, error) {
		if raw == "" {
			return nil, nil
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", raw, err)
		}
		return u, nil
	}
	httpURL, httpErr := parse(httpProxy)
	httpsURL, httpsErr := parse(httpsProxy)

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return httpsURL, httpsErr
		}
		if httpProxy != "" {
			return httpURL, httpErr
		}
		return http.ProxyFromEnvironment(req)
	}
}
