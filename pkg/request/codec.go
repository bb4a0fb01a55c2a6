package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedDocument reports a document that is not well-formed YAML or
// fails the request field contract.
var ErrMalformedDocument = errors.New("malformed request document")

// doc is the on-disk shape of a request. Every key is optional; an absent key
// means "use the default", which keeps persisted documents minimal and
// diff-friendly. Cookies, the file path, and credentials have no keys here at
// all — they are runtime state.
type doc struct {
	Name        string         `yaml:"name,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Method      string         `yaml:"method,omitempty"`
	URL         string         `yaml:"url,omitempty"`
	JSONBody    map[string]any `yaml:"json_body,omitempty"`
	FormData    []fieldDoc     `yaml:"form_data,omitempty"`
	Content     string         `yaml:"content,omitempty"`
	Auth        *authDoc       `yaml:"auth,omitempty"`
	Headers     []fieldDoc     `yaml:"headers,omitempty"`
	Params      []fieldDoc     `yaml:"params,omitempty"`
	Options     *optionsDoc    `yaml:"options,omitempty"`
	Version     string         `yaml:"restbook_version,omitempty"`
}

type fieldDoc struct {
	Name    string `yaml:"name"`
	Value   string `yaml:"value,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"` // absent means enabled
}

type authDoc struct {
	Type string `yaml:"type"`
}

// optionsDoc uses pointers for every defaulted field so that "explicitly
// false" survives a round-trip while default values stay off disk.
type optionsDoc struct {
	FollowRedirects *bool    `yaml:"follow_redirects,omitempty"`
	VerifySSL       *bool    `yaml:"verify_ssl,omitempty"`
	AttachCookies   *bool    `yaml:"attach_cookies,omitempty"`
	ProxyURL        string   `yaml:"proxy_url,omitempty"`
	Timeout         *float64 `yaml:"timeout,omitempty"`
}

// Encode serializes the persisted fields of r to a YAML document. Fields at
// their default are omitted, multi-line strings are written in literal block
// style, and runtime-only state (cookies, path, credentials) never appears.
func Encode(r *Request) ([]byte, error) {
	d := doc{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
	}
	if r.Method != "GET" {
		d.Method = r.Method
	}

	switch b := r.Body.(type) {
	case nil:
	case JSONBody:
		d.JSONBody = b
	case FormBody:
		d.FormData = encodeFields(b)
	case RawBody:
		d.Content = string(b)
	default:
		return nil, fmt.Errorf("unsupported body type %T", r.Body)
	}

	if r.Auth != nil {
		d.Auth = &authDoc{Type: string(r.Auth.Type)}
	}
	d.Headers = encodeFields(r.Headers)
	d.Params = encodeFields(r.Params)
	d.Options = encodeOptions(r.Options)
	if r.Version != "" && r.Version != Version {
		d.Version = r.Version
	}

	var node yaml.Node
	if err := node.Encode(&d); err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	blockifyStrings(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a YAML document into a request. Omitted keys take the entity
// defaults. Any YAML or field-contract failure is reported as
// ErrMalformedDocument.
func Decode(data []byte) (*Request, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d doc
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	r := New()
	r.Name = d.Name
	r.Description = d.Description
	if d.Method != "" {
		r.Method = d.Method
	}
	r.URL = d.URL

	populated := 0
	if d.JSONBody != nil {
		populated++
		r.Body = JSONBody(d.JSONBody)
	}
	if d.FormData != nil {
		populated++
		r.Body = FormBody(decodeFields(d.FormData))
	}
	if d.Content != "" {
		populated++
		r.Body = RawBody(d.Content)
	}
	if populated > 1 {
		return nil, fmt.Errorf("%w: json_body, form_data and content are mutually exclusive", ErrMalformedDocument)
	}

	if d.Auth != nil {
		r.Auth = &Auth{Type: AuthType(d.Auth.Type)}
	}
	r.Headers = decodeFields(d.Headers)
	r.Params = decodeFields(d.Params)
	if d.Options != nil {
		applyOptions(&r.Options, d.Options)
	}
	if d.Version != "" {
		r.Version = d.Version
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return r, nil
}

func encodeFields(fields []Field) []fieldDoc {
	if len(fields) == 0 {
		return nil
	}
	out := make([]fieldDoc, len(fields))
	for i, f := range fields {
		out[i] = fieldDoc{Name: f.Name, Value: f.Value}
		if !f.Enabled {
			disabled := false
			out[i].Enabled = &disabled
		}
	}
	return out
}

func decodeFields(fields []fieldDoc) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Name: f.Name, Value: f.Value, Enabled: f.Enabled == nil || *f.Enabled}
	}
	return out
}

func encodeOptions(o Options) *optionsDoc {
	defaults := DefaultOptions()
	var d optionsDoc
	set := false
	if o.FollowRedirects != defaults.FollowRedirects {
		d.FollowRedirects = &o.FollowRedirects
		set = true
	}
	if o.VerifySSL != defaults.VerifySSL {
		d.VerifySSL = &o.VerifySSL
		set = true
	}
	if o.AttachCookies != defaults.AttachCookies {
		d.AttachCookies = &o.AttachCookies
		set = true
	}
	if o.ProxyURL != defaults.ProxyURL {
		d.ProxyURL = o.ProxyURL
		set = true
	}
	if o.Timeout != defaults.Timeout {
		d.Timeout = &o.Timeout
		set = true
	}
	if !set {
		return nil
	}
	return &d
}

func applyOptions(o *Options, d *optionsDoc) {
	if d.FollowRedirects != nil {
		o.FollowRedirects = *d.FollowRedirects
	}
	if d.VerifySSL != nil {
		o.VerifySSL = *d.VerifySSL
	}
	if d.AttachCookies != nil {
		o.AttachCookies = *d.AttachCookies
	}
	if d.ProxyURL != "" {
		o.ProxyURL = d.ProxyURL
	}
	if d.Timeout != nil {
		o.Timeout = *d.Timeout
	}
}

// blockifyStrings walks an encoded node tree and forces literal block style
// on multi-line string scalars so persisted documents diff cleanly. YAML
// cannot represent trailing spaces inside a literal block, so each line is
// right-trimmed first.
func blockifyStrings(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		lines := strings.Split(n.Value, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, " \t")
		}
		n.Value = strings.Join(lines, "\n")
		n.Style = yaml.LiteralStyle
		return
	}
	for _, child := range n.Content {
		blockifyStrings(child)
	}
}
