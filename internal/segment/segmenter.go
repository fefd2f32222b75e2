// Package segment divides content into contiguous character ranges for the
// beat map timeline.
package segment

import (
	"errors"
	"fmt"
)

// ErrInvalidCount reports a non-positive segment count. Segmentation fails
// fast instead of silently producing an empty timeline.
var ErrInvalidCount = errors.New("segment count must be positive")

// Span is a half-open character range [Start, End) into the content.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Split divides [0, contentLen) into count contiguous, gapless spans. Each
// span covers floor(contentLen/count) characters; the final span absorbs the
// integer-division remainder. For contentLen == 0 every span is degenerate
// (Start == End == 0).
func Split(contentLen, count int) ([]Span, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if contentLen < 0 {
		return nil, fmt.Errorf("content length must be non-negative: %d", contentLen)
	}

	size := contentLen / count
	spans := make([]Span, count)
	for i := 0; i < count; i++ {
		start := i * size
		end := start + size
		if i == count-1 {
			end = contentLen
		}
		spans[i] = Span{Start: start, End: end}
	}
	return spans, nil
}
