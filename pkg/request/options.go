package request

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Options configure transport behavior for a request. The zero value is not
// meaningful; use DefaultOptions.
type Options struct {
	FollowRedirects bool
	VerifySSL       bool
	AttachCookies   bool
	ProxyURL        string
	Timeout         float64 // seconds
}

// DefaultOptions returns the options every request starts with.
func DefaultOptions() Options {
	return Options{
		FollowRedirects: true,
		VerifySSL:       true,
		AttachCookies:   true,
		Timeout:         5.0,
	}
}

// HTTPClient builds an *http.Client from the persisted options. Redirect,
// TLS, and proxy semantics stay inside net/http; this only shapes the
// configuration.
func (o Options) HTTPClient() (*http.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}
	if !o.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if o.ProxyURL != "" {
		proxy, err := url.Parse(o.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   time.Duration(o.Timeout * float64(time.Second)),
	}
	if !o.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return client, nil
}
