package request

// Body is the payload of a request. A nil Body means no payload; otherwise
// exactly one of the three representations below is in play. Making this a
// closed interface keeps the representations mutually exclusive by
// construction instead of by convention.
type Body interface {
	isBody()
}

// JSONBody is a structured JSON object payload.
type JSONBody map[string]any

// FormBody is an ordered list of form fields, urlencoded on send. Disabled
// fields are retained in the document but excluded from the wire form.
type FormBody []Field

// RawBody is an opaque payload sent as-is.
type RawBody string

func (JSONBody) isBody() {}
func (FormBody) isBody() {}
func (RawBody) isBody()  {}
