package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MinHolderAge        = 18
	NationalIDLength    = 10
	MinPasswordLength   = 8
	AccountNumberLength = 8
	MinOperationAmount  = "0.01"
)

var (
	nationalIDRegex = regexp.MustCompile(`^[0-9]{10}$`)

	// Latin letters including the accented set used in Spanish names.
	holderNameRegex = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúñÑ\s]+$`)

	accountNumberRegex = regexp.MustCompile(`^[0-9]{8}$`)
)

// ValidateAge checks the holder is of legal age.
func ValidateAge(age int) error {
	if age < MinHolderAge {
		return ErrUnderage
	}
	return nil
}

// ValidateNationalID checks the national identifier is exactly 10 digits.
func ValidateNationalID(nationalID string) error {
	if !nationalIDRegex.MatchString(nationalID) {
		return ErrInvalidNationalID
	}
	return nil
}

// ValidateHolderName checks a first or last name contains only letters
// (including Latin-accented letters) and spaces.
func ValidateHolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if !holderNameRegex.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ValidatePassword checks password length before hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// ValidateAccountNumber checks an allocated account number shape.
func ValidateAccountNumber(number string) error {
	if !accountNumberRegex.MatchString(number) {
		return fmt.Errorf("account number must be exactly %d digits", AccountNumberLength)
	}
	return nil
}

// ValidateAmount checks an operation amount: strictly positive, at least
// one cent, and at most two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinOperationAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrInvalidAmount, MinOperationAmount)
	}

	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: at most two decimal places", ErrInvalidAmount)
	}

	return nil
}
