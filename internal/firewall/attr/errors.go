package attr

import (
	"errors"
)

// ErrInvalidArgument is returned for arguments the normalizer cannot work with.
var ErrInvalidArgument = errors.New("Invalid argument")

// ErrLookupFailure is returned when a service name is unknown.
var ErrLookupFailure = errors.New("Service lookup failed")

// ErrResolutionFailure is returned when a hostname yields no usable address.
var ErrResolutionFailure = errors.New("Hostname resolution failed")
