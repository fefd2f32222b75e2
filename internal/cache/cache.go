// Package cache provides an in-memory result cache so repeated analyses of
// identical content skip rescoring.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Cache defines the interface for caching marshaled analysis results.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for an analysis run. The key covers everything
// that changes the segment list: the content itself, the segment count, and
// the spike threshold.
func Key(content string, segmentCount int, threshold float64) string {
	h := sha256.New()
	h.Write([]byte(content))
	fmt.Fprintf(h, "|%d|%g", segmentCount, threshold)
	return "beatmap:v1:" + hex.EncodeToString(h.Sum(nil))
}
