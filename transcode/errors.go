// SPDX-License-Identifier: EPL-2.0

package transcode

import "errors"

var (
	// ErrTranscodeFailed indicates ffmpeg could not be started or exited
	// with a non-zero status.
	ErrTranscodeFailed = errors.New("transcode: ffmpeg conversion failed")

	// ErrEmptyInput indicates a decoded input without samples.
	ErrEmptyInput = errors.New("transcode: input has no samples")
)
