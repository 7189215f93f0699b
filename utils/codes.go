package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewBookingID returns a fresh unique booking identifier.
func NewBookingID() string {
	return uuid.New().String()
}

// NewConfirmationCode returns an 8-character uppercase code derived from 4
// random bytes, hex-encoded. Codes are not checked for uniqueness against
// existing bookings; at the engine's capacity ceiling the collision
// probability is negligible.
func NewConfirmationCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
