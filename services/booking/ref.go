package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

const refAttempts = 10

// generateRef produces a 6-character uppercase hex reference.
func generateRef() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// uniqueRef allocates a reference not yet present in the bookings
// collection, regenerating on collision.
func (s *DefaultBookingService) uniqueRef(ctx context.Context) (string, error) {
	for i := 0; i < refAttempts; i++ {
		ref, err := generateRef()
		if err != nil {
			return "", err
		}
		exists, err := s.Repo.RefExists(ctx, ref)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}
	}
	return "", errors.New("failed to allocate a unique booking reference")
}
