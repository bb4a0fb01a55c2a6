package request

// Secret is a string that must not leak into logs or rendered output. It
// formats as a fixed mask; the raw value is only reachable through Reveal.
type Secret string

const secretMask = "**********"

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return secretMask
}

func (s Secret) GoString() string { return s.String() }

// Reveal returns the underlying value.
func (s Secret) Reveal() string { return string(s) }

// AuthType selects the authentication scheme for a request.
type AuthType string

const (
	AuthBasic  AuthType = "basic"
	AuthDigest AuthType = "digest"
)

// Auth carries the credentials for a request. Basic and digest share the same
// payload, so the scheme is a validated tag rather than one variant per
// scheme; inconsistent combinations cannot be represented. Only the type is
// persisted — credentials are secrets and stay out of the document.
type Auth struct {
	Type     AuthType
	Username Secret
	Password Secret
}
