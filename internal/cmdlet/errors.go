package cmdlet

import (
	"errors"
	"fmt"
	"net"
)

// Argument errors, raised before any call is made.
var (
	ErrSelectConflict  = errors.New("conflicting output selection")
	ErrUnknownSelector = errors.New("unknown selector")
	ErrNoPassThru      = errors.New("operation has no pass-through parameter")
	ErrRequiredEmpty   = errors.New("required parameter is empty")
	ErrRequiredMissing = errors.New("required parameter is missing")
	ErrInvalidArgument = errors.New("invalid argument")
)

// EndpointError is a name-resolution failure reported with a clearer message.
// The original error stays reachable through Unwrap.
type EndpointError struct {
	Host string
	Err  error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("unable to resolve service endpoint %q, check the region and your network connection: %v", e.Host, e.Err)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// WrapNetworkError re-wraps err when a DNS lookup failure is part of its chain.
// Any other error is returned unchanged.
func WrapNetworkError(err error) error {
	if err == nil {
		return nil
	}

	var endpointErr *EndpointError
	if errors.As(err, &endpointErr) {
		return err
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &EndpointError{Host: dnsErr.Name, Err: err}
	}
	return err
}
