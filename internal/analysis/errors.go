package analysis

import "errors"

// ErrEmptyInput is returned by Analyze when given empty or whitespace-only
// text. Extraction failures upstream must be handled before analysis; the
// analyzer itself never retries.
var ErrEmptyInput = errors.New("no text provided for analysis")
