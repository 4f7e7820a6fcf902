package quotes

import (
	"regexp"
	"strings"
)

// QuoteRequest represents one prospective customer's service inquiry as
// submitted by the quote form. It is transient: validated, rendered
// into a notification email and discarded.
type QuoteRequest struct {
	Service string `json:"service"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Address string `json:"address"`
	Details string `json:"details"`
}

// emailPattern accepts a simple local@domain.tld shape. The client-side
// validator uses the identical expression so both sides agree on
// accept/reject.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// serviceLabels maps service codes to their display labels. Unknown
// codes render literally so future codes degrade gracefully.
var serviceLabels = map[string]string{
	"menage":      "Ménage débarras",
	"copropriete": "Nettoyage copropriété",
	"locaux":      "Nettoyage locaux",
	"vitres":      "Nettoyage de vitres",
	"chantier":    "Nettoyage fin de chantier",
	"debarras":    "Débarras",
}

// Default placeholders substituted for absent optional fields before
// the notification template is rendered.
const (
	placeholderDate    = "Non spécifiée"
	placeholderAddress = "Non spécifiée"
	placeholderDetails = "Aucun détail fourni"
)

// Validate checks the required fields: service, name, phone present and
// email present with a valid shape. Either everything passes or the
// request is rejected before any email is constructed.
func (q *QuoteRequest) Validate() error {
	if strings.TrimSpace(q.Service) == "" ||
		strings.TrimSpace(q.Name) == "" ||
		strings.TrimSpace(q.Phone) == "" ||
		strings.TrimSpace(q.Email) == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(q.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ApplyDefaults fills absent optional fields with their literal
// placeholder text. The renderer never distinguishes "absent" from
// "explicitly unspecified"; both arrive here as the placeholder.
func (q *QuoteRequest) ApplyDefaults() {
	if strings.TrimSpace(q.Date) == "" {
		q.Date = placeholderDate
	}
	if strings.TrimSpace(q.Address) == "" {
		q.Address = placeholderAddress
	}
	if strings.TrimSpace(q.Details) == "" {
		q.Details = placeholderDetails
	}
}

// ServiceLabel returns the display label for a service code, falling
// back to the raw code when unrecognized.
func ServiceLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}
