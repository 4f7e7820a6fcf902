package quotes

import (
	"fmt"
	"html"
	"time"
)

// RenderNotification builds the HTML notification email for a quote
// request. The document is self-contained (inline styles, table layout)
// because it is consumed by email clients, not a browser. Output is
// deterministic for a given request and year.
func RenderNotification(q QuoteRequest) string {
	return renderNotification(q, time.Now().Year())
}

func renderNotification(q QuoteRequest, year int) string {
	return fmt.Sprintf(notificationTemplate,
		html.EscapeString(ServiceLabel(q.Service)),
		html.EscapeString(q.Name),
		html.EscapeString(q.Email),
		html.EscapeString(q.Phone),
		formatBlock("Date souhaitée:", q.Date),
		formatBlock("Adresse:", q.Address),
		formatBlock("Détails de la demande:", q.Details),
		year,
	)
}

// formatBlock renders one optional labelled section, or nothing when
// the value is empty.
func formatBlock(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(`<table border="0" cellpadding="0" cellspacing="0" width="100%%" style="margin-bottom: 20px;">
              <tr>
                <td style="font-weight: bold; padding-bottom: 5px; color: #ffffff;">%s</td>
              </tr>
              <tr>
                <td style="color: #ffffff;">%s</td>
              </tr>
            </table>`, html.EscapeString(label), html.EscapeString(value))
}

const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Nouvelle demande de devis - CI NETTOYAGE</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; line-height: 1.6; color: #333333; background-color: #f9f9f9;">
  <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="max-width: 600px; margin: 0 auto;">
    <tr>
      <td bgcolor="#FFCC00" style="padding: 40px 30px; text-align: center; color: #000000;">
        <h1 style="margin: 0; font-size: 28px; font-weight: bold; color: #000000;">CI NETTOYAGE</h1>
        <h2 style="margin: 10px 0 0 0; font-size: 22px; font-weight: bold; color: #000000;">Nouvelle demande de devis</h2>
      </td>
    </tr>
    <tr>
      <td bgcolor="#222222" style="padding: 10px 30px; text-align: center; color: #ffffff;">
        <p style="margin: 0; font-size: 16px;">Détails de la demande</p>
      </td>
    </tr>
    <tr>
      <td bgcolor="#222222" style="padding: 30px; color: #ffffff;">
        <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="margin-bottom: 20px;">
          <tr>
            <td style="font-weight: bold; padding-bottom: 5px; color: #ffffff;">Service demandé:</td>
          </tr>
          <tr>
            <td style="color: #ffffff;">%s</td>
          </tr>
        </table>
        <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="margin-bottom: 20px;">
          <tr>
            <td style="font-weight: bold; padding-bottom: 5px; color: #ffffff;">Informations du client:</td>
          </tr>
          <tr>
            <td style="color: #ffffff;">Nom: %s</td>
          </tr>
          <tr>
            <td style="color: #ffffff;">Email: %s</td>
          </tr>
          <tr>
            <td style="color: #ffffff;">Téléphone: %s</td>
          </tr>
        </table>
        %s
        %s
        %s
      </td>
    </tr>
    <tr>
      <td bgcolor="#f0f0f0" style="padding: 20px; text-align: center; font-size: 12px; color: #666666;">
        <p style="margin: 0 0 10px 0;">© %d CI NETTOYAGE - Tous droits réservés</p>
        <p style="margin: 0;">Ce message a été généré automatiquement, merci de ne pas y répondre.</p>
      </td>
    </tr>
  </table>
</body>
</html>
`
