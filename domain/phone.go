package domain

import (
	"regexp"
	"strings"
)

// Canonical phone rule: leading + followed by 7-15 digits. Applied after
// trimming, both to donor registration and to the relay requester's number.
var phonePattern = regexp.MustCompile(`^\+\d{7,15}$`)

var nonDigit = regexp.MustCompile(`[^\d]`)

func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// MaskPhone redacts a number for display: first two digits, asterisks,
// last digit. Too-short numbers collapse to "hidden". Display aid only,
// the exposure policy decides whether the raw number ships at all.
func MaskPhone(phone string) string {
	digits := nonDigit.ReplaceAllString(phone, "")
	if len(digits) < 4 {
		return "hidden"
	}
	return digits[:2] + strings.Repeat("*", len(digits)-3) + digits[len(digits)-1:]
}

// PhonePolicy controls whether list responses include raw phone numbers.
// Mask-only mode is required for the contact relay's privacy guarantee to
// hold.
type PhonePolicy int

const (
	PhonePolicyExpose PhonePolicy = iota
	PhonePolicyMaskOnly
)

func (p PhonePolicy) Exposes() bool {
	return p == PhonePolicyExpose
}
