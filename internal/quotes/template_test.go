package quotes

import (
	"strings"
	"testing"
)

func fullRequest() QuoteRequest {
	q := QuoteRequest{
		Service: "menage",
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Phone:   "0600000000",
	}
	q.ApplyDefaults()
	return q
}

func TestRenderNotification_Deterministic(t *testing.T) {
	q := fullRequest()

	a := renderNotification(q, 2024)
	b := renderNotification(q, 2024)
	if a != b {
		t.Fatal("identical input at the same instant must render byte-identical output")
	}
}

func TestRenderNotification_AlwaysRendersRequiredFields(t *testing.T) {
	out := renderNotification(fullRequest(), 2024)

	for _, want := range []string{
		"Ménage débarras",
		"Nom: Jean Dupont",
		"Email: jean@example.com",
		"Téléphone: 0600000000",
		"© 2024 CI NETTOYAGE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderNotification_PlaceholdersForAbsentOptionals(t *testing.T) {
	out := renderNotification(fullRequest(), 2024)

	if !strings.Contains(out, "Non spécifiée") {
		t.Error("expected the unspecified placeholder for date/address")
	}
	if !strings.Contains(out, "Aucun détail fourni") {
		t.Error("expected the no-details placeholder")
	}
}

func TestRenderNotification_LiteralOptionalValues(t *testing.T) {
	q := QuoteRequest{
		Service: "vitres",
		Name:    "Marie",
		Email:   "marie@example.com",
		Phone:   "0611111111",
		Date:    "2024-06-01",
	}
	q.ApplyDefaults()
	out := renderNotification(q, 2024)

	if !strings.Contains(out, "2024-06-01") {
		t.Error("provided date must render literally")
	}
	if !strings.Contains(out, "Date souhaitée:") {
		t.Error("expected the date block label")
	}
}

func TestRenderNotification_UnknownServiceCode(t *testing.T) {
	q := fullRequest()
	q.Service = "xyz"
	out := renderNotification(q, 2024)

	if !strings.Contains(out, ">xyz<") {
		t.Error("unrecognized service code must render as the literal code")
	}
}

func TestRenderNotification_EscapesValues(t *testing.T) {
	q := fullRequest()
	q.Name = `<script>alert("x")</script>`
	out := renderNotification(q, 2024)

	if strings.Contains(out, "<script>") {
		t.Error("user input must be escaped in the rendered email")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("expected escaped markup in output")
	}
}

func TestRenderNotification_SelfContained(t *testing.T) {
	out := renderNotification(fullRequest(), 2024)

	if strings.Contains(out, "<link") || strings.Contains(out, "stylesheet") {
		t.Error("email must not reference external stylesheets")
	}
	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("expected a complete HTML document")
	}
}
