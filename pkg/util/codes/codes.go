// Package codes generates short human-readable booking references.
package codes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrInvalidLength = errors.New("invalid code length")

const (
	// BookingRefLength is the length of generated booking references.
	BookingRefLength = 8

	// Uppercase alphanumeric excluding ambiguous characters (0/O, 1/I/L).
	charsetBookingRef = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// GenerateBookingRef creates a booking reference, e.g. "K7TMQ2XB".
// Patients quote it over the phone, so the charset avoids lookalikes.
func GenerateBookingRef() (string, error) {
	return generateFromCharset(BookingRefLength, charsetBookingRef)
}

// NormalizeBookingRef prepares user input for lookup: uppercase, trimmed,
// dashes removed.
func NormalizeBookingRef(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	return strings.ReplaceAll(code, "-", "")
}

// FormatBookingRef inserts a dash for readability, "K7TMQ2XB" -> "K7TM-Q2XB".
func FormatBookingRef(code string) string {
	if len(code) <= 4 {
		return code
	}
	return code[:4] + "-" + code[4:]
}

func generateFromCharset(length int, charset string) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	var sb strings.Builder
	sb.Grow(length)
	max := big.NewInt(int64(len(charset)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random index: %w", err)
		}
		sb.WriteByte(charset[n.Int64()])
	}
	return sb.String(), nil
}
