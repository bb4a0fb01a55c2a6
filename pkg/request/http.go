package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// BuildHTTP converts the request definition into an executable *http.Request.
// Disabled headers, params, form fields, and cookies are skipped; order among
// enabled entries is preserved. The entity itself is not modified.
func (r *Request) BuildHTTP(ctx context.Context) (*http.Request, error) {
	var (
		body        io.Reader
		contentType string
	)
	switch b := r.Body.(type) {
	case nil:
	case JSONBody:
		payload, err := json.Marshal(map[string]any(b))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	case FormBody:
		body = strings.NewReader(encodePairs(enabled(b)))
		contentType = "application/x-www-form-urlencoded"
	case RawBody:
		body = strings.NewReader(string(b))
	default:
		return nil, fmt.Errorf("unsupported body type %T", r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, h := range enabled(r.Headers) {
		req.Header.Add(h.Name, h.Value)
	}

	if params := enabled(r.Params); len(params) > 0 {
		encoded := encodePairs(params)
		if req.URL.RawQuery != "" {
			req.URL.RawQuery += "&" + encoded
		} else {
			req.URL.RawQuery = encoded
		}
	}

	if r.Options.AttachCookies {
		for _, c := range enabled(r.Cookies) {
			req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}

	// Digest auth needs the server challenge, so it is left to the transport
	// layer; only basic auth can be applied up front.
	if r.Auth != nil && r.Auth.Type == AuthBasic {
		req.SetBasicAuth(r.Auth.Username.Reveal(), r.Auth.Password.Reveal())
	}

	return req, nil
}

// enabled filters a field list down to the entries still switched on, keeping
// their relative order.
func enabled(fields []Field) []Field {
	var out []Field
	for _, f := range fields {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

// encodePairs urlencodes fields pairwise. url.Values is a map and would lose
// entry order, so the query string is assembled by hand.
func encodePairs(fields []Field) string {
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(f.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(f.Value))
	}
	return sb.String()
}
