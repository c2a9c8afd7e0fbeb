package lowpass

import "errors"

var (
	// ErrInvalidArgument reports construction arguments that disagree in length.
	ErrInvalidArgument = errors.New("lowpass: invalid argument")
	// ErrOutOfRange reports a measurement, reset vector or channel index that
	// does not match the filter's channel count.
	ErrOutOfRange = errors.New("lowpass: out of range")
)
