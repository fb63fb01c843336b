package handler

import (
	"net/http"

	"github.com/iho/caribank/internal/adapter/http/dto"
	"github.com/iho/caribank/internal/adapter/http/middleware"
	"github.com/iho/caribank/internal/domain"
	"github.com/iho/caribank/internal/infrastructure/metrics"
)

// CertificateIssuer defines the behavior needed by CertificateHandler.
type CertificateIssuer interface {
	Issue(account domain.Account) *domain.Certificate
	Render(cert *domain.Certificate) (string, error)
}

// CertificateHandler issues balance certificates for the session account.
type CertificateHandler struct {
	issuer   CertificateIssuer
	sessions SessionRegistry
	metrics  *metrics.Metrics
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(issuer CertificateIssuer, sessions SessionRegistry, m *metrics.Metrics) *CertificateHandler {
	return &CertificateHandler{
		issuer:   issuer,
		sessions: sessions,
		metrics:  m,
	}
}

// Issue renders a certificate over the session's current balance.
func (h *CertificateHandler) Issue(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	session, err := h.sessions.Get(claims.SessionID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "session unavailable", err.Error())

		return
	}

	cert := h.issuer.Issue(session.Account())

	document, err := h.issuer.Render(cert)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render certificate", err.Error())
		return
	}

	h.metrics.CertificatesIssued.Inc()
	writeJSON(w, http.StatusOK, dto.CertificateFromDomain(cert, document))
}
