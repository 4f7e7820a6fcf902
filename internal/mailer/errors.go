package mailer

import (
	"errors"
	"strings"
)

// ErrMissingCredentials is returned when a sender is asked to deliver
// mail before its credentials are configured.
var ErrMissingCredentials = errors.New("mailer: identifiants SMTP manquants")

// translations maps provider error-text fragments to friendlier
// operator-facing explanations. Matching is case-insensitive on the
// full error text. New providers or wordings get a new row here, not a
// new branch in the handler.
var translations = []struct {
	fragment string
	message  string
}{
	{"not verified", "L'adresse d'expédition n'est pas vérifiée auprès du fournisseur d'envoi. Vérifiez le domaine d'expédition dans la configuration."},
	{"rate limit", "Le service d'envoi d'emails est temporairement saturé. Veuillez réessayer dans quelques instants."},
}

// FriendlyMessage returns a human-readable explanation for a delivery
// error. Known provider wordings are substituted; anything else passes
// through verbatim. Purely cosmetic, never a retry trigger.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, tr := range translations {
		if strings.Contains(lower, tr.fragment) {
			return tr.message
		}
	}
	return msg
}
