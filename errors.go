// SPDX-License-Identifier: EPL-2.0

package txac

import "errors"

var (
	// ErrShortHeader indicates data that starts with the magic but is too
	// short to hold a header.
	ErrShortHeader = errors.New("txac: short header")

	// ErrUnsupportedVersion indicates a header version this package does not read.
	ErrUnsupportedVersion = errors.New("txac: unsupported header version")

	// ErrInvalidHeader indicates header fields that cannot describe a stream.
	ErrInvalidHeader = errors.New("txac: invalid header")

	// ErrInvalidGain indicates a gain that is not a finite number of decibels.
	ErrInvalidGain = errors.New("txac: invalid gain")
)
