// Package utils holds small cross-cutting helpers shared by app/controllers
// and app/services, the way the teacher's helpers/utils package does.
package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateUUID returns a v4-shaped random identifier, used as the
// X-Request-ID of an HTTP request that arrives without one and as the
// ReviewID of each queued alias review (each call yields a new, unrelated
// id), carried over from the teacher's helpers/utils/uuid.go (there used
// for batch-job ids).
func GenerateUUID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
