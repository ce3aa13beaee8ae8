package cryogena

import (
	"errors"
	"fmt"

	"github.com/hasura/go-graphql-client"
)

// TransportError means the network call itself failed: no usable response
// ever arrived. The workspace state must be left untouched.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cryogena: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError means the transport succeeded but the operation layer
// reported errors. Message carries the first reported message verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("cryogena: %s", e.Message)
}

// IsTransportError reports whether err is a network-level failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRemoteError reports whether err is an operation-layer failure.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// classifyError maps errors coming out of the GraphQL layer onto the two
// failure classes. The graphql client tags its own request/decode
// failures with an extensions code; anything else in the errors list came
// from the server's operation layer.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var gqlErrs graphql.Errors
	if errors.As(err, &gqlErrs) && len(gqlErrs) > 0 {
		first := gqlErrs[0]
		if code, ok := first.Extensions["code"].(string); ok {
			switch code {
			case "request_error", "json_encode_error", "json_decode_error":
				return &TransportError{Err: first}
			}
		}
		return &RemoteError{Message: first.Message}
	}

	return &TransportError{Err: err}
}
