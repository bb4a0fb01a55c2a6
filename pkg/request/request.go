// Package request models a single saved HTTP request definition: the fields
// that persist to a .restbook.yaml document, the runtime-only state layered on
// top of them, and the transform into an executable net/http request.
package request

// Version is stamped into every new request so documents can be migrated by
// future releases.
const Version = "0.4.0"

// Field is one header, query parameter, or cookie entry. Disabled entries are
// kept around so they can be re-enabled later, but they are skipped when
// building the executable request.
type Field struct {
	Name    string
	Value   string
	Enabled bool
}

// NewField returns an enabled field.
func NewField(name, value string) Field {
	return Field{Name: name, Value: value, Enabled: true}
}

// Request is one saved HTTP request definition.
type Request struct {
	Name        string
	Description string
	Method      string
	URL         string

	// Body is the payload, if any. At most one representation exists at a
	// time; see the Body interface.
	Body Body

	// Auth is nil when the request carries no credentials.
	Auth *Auth

	Headers []Field
	Params  []Field

	// Cookies are runtime state (captured from responses); they are never
	// written to the document.
	Cookies []Field

	Options Options

	// Version of restbook that created the document.
	Version string

	// Path is where the document lives on disk. Empty until the request is
	// saved or loaded; derived from the file location, never stored in it.
	Path string
}

// New returns a request with every field at its default.
func New() *Request {
	return &Request{
		Method:  "GET",
		Options: DefaultOptions(),
		Version: Version,
	}
}
