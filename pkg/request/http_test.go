package request

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"testing"
	"time"
)

func TestBuildHTTP_FiltersDisabledAndKeepsOrder(t *testing.T) {
	r := New()
	r.URL = "https://example.com/search"
	r.Headers = []Field{
		NewField("Accept", "application/json"),
		{Name: "X-Debug", Value: "1", Enabled: false},
		NewField("X-Trace", "on"),
	}
	r.Params = []Field{
		NewField("q", "go"),
		{Name: "page", Value: "2", Enabled: false},
		NewField("limit", "10"),
	}
	r.Cookies = []Field{
		NewField("session", "abc"),
		{Name: "theme", Value: "dark", Enabled: false},
	}

	req, err := r.BuildHTTP(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.Header.Get("X-Debug"); got != "" {
		t.Errorf("disabled header was sent: %q", got)
	}
	if got := req.Header.Get("X-Trace"); got != "on" {
		t.Errorf("X-Trace = %q, want %q", got, "on")
	}
	if got := req.URL.RawQuery; got != "q=go&limit=10" {
		t.Errorf("RawQuery = %q, want %q", got, "q=go&limit=10")
	}
	if got := req.Header.Get("Cookie"); got != "session=abc" {
		t.Errorf("Cookie = %q, want %q", got, "session=abc")
	}

	// The entity itself keeps its disabled entries.
	if len(r.Headers) != 3 || len(r.Params) != 3 {
		t.Errorf("BuildHTTP must not mutate the request, got %+v", r)
	}
}

func TestBuildHTTP_AppendsToExistingQuery(t *testing.T) {
	r := New()
	r.URL = "https://example.com/items?a=1"
	r.Params = []Field{NewField("b", "2")}

	req, err := r.BuildHTTP(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.URL.RawQuery; got != "a=1&b=2" {
		t.Errorf("RawQuery = %q, want %q", got, "a=1&b=2")
	}
}

func TestBuildHTTP_JSONBody(t *testing.T) {
	r := New()
	r.Method = "POST"
	r.URL = "https://example.com/users"
	r.Body = JSONBody{"name": "ada", "admin": true}

	req, err := r.BuildHTTP(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}

	payload, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	want := map[string]any{"name": "ada", "admin": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
}

func TestBuildHTTP_FormBody(t *testing.T) {
	r := New()
	r.Method = "POST"
	r.URL = "https://example.com/login"
	r.Body = FormBody{
		NewField("user", "ada lovelace"),
		{Name: "debug", Value: "1", Enabled: false},
		NewField("remember", "yes"),
	}

	req, err := r.BuildHTTP(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want form urlencoded", got)
	}

	payload, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if got := string(payload); got != "user=ada+lovelace&remember=yes" {
		t.Errorf("body = %q, want %q", got, "user=ada+lovelace&remember=yes")
	}
}

func TestBuildHTTP_RawBodyHasNoImplicitContentType(t *testing.T) {
	r := New()
	r.Method = "POST"
	r.URL = "https://example.com/raw"
	r.Body = RawBody("plain payload")

	req, err := r.BuildHTTP(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Content-Type"); got != "" {
		t.Errorf("Content-Type = %q, want none for raw bodies", got)
	}
	payload, _ := io.ReadAll(req.Body)
	if string(payload) != "plain payload" {
		t.Errorf("body = %q", payload)
	}
}

func TestBuildHTTP_BasicAuth(t *testing.T) {
	r := New()
	r.URL = "https://example.com/private"
	r.Auth = &Auth{Type: AuthBasic, Username: "alice", Password: "hunter2"}

	req, err := r.BuildHTTP(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:hunter2"))
	if got := req.Header.Get("Authorization"); got != want {
		t.Errorf("Authorization = %q, want %q", got, want)
	}
}

func TestBuildHTTP_DigestAuthDeferredToTransport(t *testing.T) {
	r := New()
	r.URL = "https://example.com/private"
	r.Auth = &Auth{Type: AuthDigest, Username: "alice", Password: "hunter2"}

	req, err := r.BuildHTTP(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "" {
		t.Errorf("digest auth needs the server challenge, got header %q", got)
	}
}

func TestBuildHTTP_AttachCookiesDisabled(t *testing.T) {
	r := New()
	r.URL = "https://example.com"
	r.Cookies = []Field{NewField("session", "abc")}
	r.Options.AttachCookies = false

	req, err := r.BuildHTTP(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Cookie"); got != "" {
		t.Errorf("cookies attached despite attach_cookies=false: %q", got)
	}
}

func TestHTTPClient_FromOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client, err := DefaultOptions().HTTPClient()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want 5s", client.Timeout)
		}
		if client.CheckRedirect != nil {
			t.Error("redirects should follow by default")
		}
	})

	t.Run("redirects off", func(t *testing.T) {
		opts := DefaultOptions()
		opts.FollowRedirects = false
		client, err := opts.HTTPClient()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.CheckRedirect == nil {
			t.Fatal("CheckRedirect not set")
		}
		if err := client.CheckRedirect(nil, nil); err != http.ErrUseLastResponse {
			t.Errorf("CheckRedirect returned %v, want ErrUseLastResponse", err)
		}
	})

	t.Run("tls verification off", func(t *testing.T) {
		opts := DefaultOptions()
		opts.VerifySSL = false
		client, err := opts.HTTPClient()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		transport, ok := client.Transport.(*http.Transport)
		if !ok {
			t.Fatalf("Transport is %T", client.Transport)
		}
		if transport.TLSClientConfig == nil || !transport.TLSClientConfig.InsecureSkipVerify {
			t.Error("InsecureSkipVerify not set")
		}
	})

	t.Run("proxy", func(t *testing.T) {
		opts := DefaultOptions()
		opts.ProxyURL = "http://proxy.internal:3128"
		client, err := opts.HTTPClient()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		transport := client.Transport.(*http.Transport)
		req, _ := http.NewRequest("GET", "https://example.com", nil)
		proxy, err := transport.Proxy(req)
		if err != nil {
			t.Fatalf("proxy func: %v", err)
		}
		if proxy == nil || proxy.Host != "proxy.internal:3128" {
			t.Errorf("proxy = %v, want proxy.internal:3128", proxy)
		}
	})

	t.Run("invalid proxy", func(t *testing.T) {
		opts := DefaultOptions()
		opts.ProxyURL = "://not-a-url"
		if _, err := opts.HTTPClient(); err == nil {
			t.Error("expected error for invalid proxy url")
		}
	})
}
