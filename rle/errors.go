// SPDX-License-Identifier: EPL-2.0

package rle

import "errors"

var (
	// ErrMalformedToken reports a token that matches none of the token forms.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidCount reports an exact run or near repeat with an unusable count.
	ErrInvalidCount = errors.New("invalid repeat count")
)
