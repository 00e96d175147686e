package price_estimate

import "errors"

var (
	ErrInvalidWeight      = errors.New("invalid package weight")
	ErrUnknownPackageType = errors.New("unknown package type")
	ErrUnknownServiceTier = errors.New("unknown service tier")
)
