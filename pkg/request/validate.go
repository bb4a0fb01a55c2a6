package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var httpMethods = []any{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// Validate checks the field contract a request must satisfy before it can be
// persisted or executed. The codec runs this on every decode, so a document
// with an unknown method or auth scheme is rejected as malformed.
func (r *Request) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Method, validation.Required, validation.In(httpMethods...)),
	); err != nil {
		return err
	}

	if r.Auth != nil {
		if err := validation.ValidateStruct(r.Auth,
			validation.Field(&r.Auth.Type, validation.Required, validation.In(AuthBasic, AuthDigest)),
		); err != nil {
			return err
		}
	}

	return validation.ValidateStruct(&r.Options,
		validation.Field(&r.Options.Timeout, validation.Min(0.0)),
	)
}
