package model

import "fmt"

// ErrorKind classifies adapter failures for server-side logging. The
// wire contract collapses every kind to one generic 500 response, so
// the kind never leaves the process.
type ErrorKind string

const (
	// ErrKindConfig means a required credential or identifier was
	// absent; no network call was attempted.
	ErrKindConfig ErrorKind = "config_missing"
	// ErrKindUpstream means the upstream answered with a non-2xx
	// status or a structured error payload.
	ErrKindUpstream ErrorKind = "upstream_failure"
	// ErrKindNetwork means the transport itself failed.
	ErrKindNetwork ErrorKind = "network_failure"
)

// AdapterError is the internal structured error produced by the
// upstream adapters.
type AdapterError struct {
	Kind ErrorKind
	Err  error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

func ConfigError(msg string) *AdapterError {
	return &AdapterError{Kind: ErrKindConfig, Err: fmt.Errorf("%s", msg)}
}

func UpstreamError(err error) *AdapterError {
	return &AdapterError{Kind: ErrKindUpstream, Err: err}
}

func NetworkError(err error) *AdapterError {
	return &AdapterError{Kind: ErrKindNetwork, Err: err}
}
