package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAge(t *testing.T) {
	t.Parallel()

	if err := ValidateAge(17); !errors.Is(err, ErrUnderage) {
		t.Fatalf("expected ErrUnderage for age 17, got %v", err)
	}

	if err := ValidateAge(18); err != nil {
		t.Fatalf("expected age 18 to pass, got %v", err)
	}

	if err := ValidateAge(65); err != nil {
		t.Fatalf("expected age 65 to pass, got %v", err)
	}
}

func TestValidateNationalID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		nationalID string
		wantErr    bool
	}{
		{name: "valid ten digits", nationalID: "1234567890", wantErr: false},
		{name: "too short", nationalID: "123", wantErr: true},
		{name: "too long", nationalID: "12345678901", wantErr: true},
		{name: "letters rejected", nationalID: "12345abc90", wantErr: true},
		{name: "empty rejected", nationalID: "", wantErr: true},
		{name: "leading zeros allowed", nationalID: "0012345678", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNationalID(tt.nationalID)
			if tt.wantErr && !errors.Is(err, ErrInvalidNationalID) {
				t.Fatalf("expected ErrInvalidNationalID, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateHolderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		holder  string
		wantErr bool
	}{
		{name: "plain name", holder: "Maria", wantErr: false},
		{name: "two words", holder: "Maria Fernanda", wantErr: false},
		{name: "accented letters", holder: "José Ibáñez", wantErr: false},
		{name: "digits rejected", holder: "Maria2", wantErr: true},
		{name: "punctuation rejected", holder: "O'Brien", wantErr: true},
		{name: "empty rejected", holder: "", wantErr: true},
		{name: "spaces only rejected", holder: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHolderName(tt.holder)
			if tt.wantErr && !errors.Is(err, ErrInvalidName) {
				t.Fatalf("expected ErrInvalidName, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	if err := ValidatePassword("short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	if err := ValidatePassword("1234567"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword for 7 characters, got %v", err)
	}

	if err := ValidatePassword("12345678"); err != nil {
		t.Fatalf("expected 8 characters to pass, got %v", err)
	}
}

func TestValidateAccountNumber(t *testing.T) {
	t.Parallel()

	if err := ValidateAccountNumber("00123456"); err != nil {
		t.Fatalf("expected 8 digits with leading zeros to pass, got %v", err)
	}

	if err := ValidateAccountNumber("1234567"); err == nil {
		t.Fatal("expected 7 digits to fail")
	}

	if err := ValidateAccountNumber("12a45678"); err == nil {
		t.Fatal("expected letters to fail")
	}
}

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	if err := ValidateAmount(decimal.NewFromFloat(100.25)); err != nil {
		t.Fatalf("expected valid amount, got %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}

	if err := ValidateAmount(decimal.NewFromInt(-10)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative, got %v", err)
	}

	if err := ValidateAmount(decimal.RequireFromString("0.001")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount below one cent, got %v", err)
	}

	if err := ValidateAmount(decimal.RequireFromString("10.123")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for sub-cent precision, got %v", err)
	}
}
