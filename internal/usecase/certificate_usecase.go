package usecase

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/iho/caribank/internal/domain"
)

// certificateTemplate is the body of the bank certificate document. The
// original institution printed this to PDF; rendering to PDF stays with
// the presentation layer, the core only produces the text.
var certificateTemplate = template.Must(template.New("certificate").Parse(
	`{{.BankName}}
Bank Certificate

Date: {{.IssuedAt}}

By means of this document, {{.BankName}} certifies that:

Mr./Ms. {{.HolderName}}, identified with national id number {{.NationalID}}, holds the {{.AccountType}} account No. {{.AccountNumber}} at our institution.

The aforementioned account currently maintains a balance of ${{.Balance}} and is in active standing.

This certificate is issued at the request of the interested party, for whatever purposes they deem appropriate.

_____________________
General Manager
{{.BankName}}

This document is informational only and does not represent a negotiable instrument.
`))

// certificateView is the pre-formatted data fed to the template.
type certificateView struct {
	BankName      string
	IssuedAt      string
	HolderName    string
	NationalID    string
	AccountType   string
	AccountNumber string
	Balance       string
}

// Certificates issues read-only account certificates.
type Certificates struct {
	bankName string
	now      func() time.Time
}

// NewCertificates creates a certificate issuer for the named bank.
func NewCertificates(bankName string) *Certificates {
	return &Certificates{
		bankName: bankName,
		now:      time.Now,
	}
}

// Issue takes a snapshot of the account for certification.
func (c *Certificates) Issue(account domain.Account) *domain.Certificate {
	return &domain.Certificate{
		BankName:      c.bankName,
		HolderName:    account.HolderName(),
		NationalID:    account.NationalID,
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		Balance:       account.Balance,
		IssuedAt:      c.now().UTC(),
	}
}

// Render produces the human-readable certificate document.
func (c *Certificates) Render(cert *domain.Certificate) (string, error) {
	view := certificateView{
		BankName:      cert.BankName,
		IssuedAt:      cert.IssuedAt.Format("January 2, 2006"),
		HolderName:    cert.HolderName,
		NationalID:    cert.NationalID,
		AccountType:   string(cert.AccountType),
		AccountNumber: cert.AccountNumber,
		Balance:       cert.Balance.StringFixed(2),
	}

	var b strings.Builder
	if err := certificateTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render certificate: %w", err)
	}

	return b.String(), nil
}
