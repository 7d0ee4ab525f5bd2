package utils

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

// bookingCodeAlphabet avoids 0/O and 1/I confusion in phone support calls
const bookingCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// GenerateBookingCode generates a short human-readable booking reference
// like "CB7KQ2M9XT"
func GenerateBookingCode() (string, error) {
	const codeLen = 8

	bytes := make([]byte, codeLen)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("CB")
	for _, b := range bytes {
		sb.WriteByte(bookingCodeAlphabet[int(b)%len(bookingCodeAlphabet)])
	}
	return sb.String(), nil
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsValidPhoneNumber checks for a 10-digit Indian mobile number
func IsValidPhoneNumber(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[6-9][0-9]{9}$`)
	return phoneRegex.MatchString(phone)
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits
// visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
