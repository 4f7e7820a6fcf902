package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("EMAIL_PROVIDER", "")
	t.Setenv("EMAIL_TO", "")
	t.Setenv("SMTP_PORT", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.EmailProvider != "auto" {
		t.Fatalf("expected default email provider auto, got %s", cfg.EmailProvider)
	}
	// Historical owner mailbox, kept as an explicit documented default.
	if cfg.EmailTo != "c.inettoyage83@gmail.com" {
		t.Fatalf("expected default destination mailbox, got %s", cfg.EmailTo)
	}
	if cfg.SMTPHost != "smtp.gmail.com" || cfg.SMTPPort != 587 {
		t.Fatalf("expected gmail relay defaults, got %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EMAIL_PROVIDER", "SendGrid")
	t.Setenv("EMAIL_TO", "owner@example.com")
	t.Setenv("SENDGRID_API_KEY", "SG.test")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ci-nettoyage.fr, https://www.ci-nettoyage.fr")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.EmailProvider != "sendgrid" {
		t.Fatalf("expected normalized provider, got %s", cfg.EmailProvider)
	}
	if cfg.EmailTo != "owner@example.com" {
		t.Fatalf("expected destination override, got %s", cfg.EmailTo)
	}
	if cfg.SendGridAPIKey != "SG.test" {
		t.Fatalf("expected api key override, got %s", cfg.SendGridAPIKey)
	}
	if cfg.SMTPPort != 2525 {
		t.Fatalf("expected smtp port override, got %d", cfg.SMTPPort)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.ci-nettoyage.fr" {
		t.Fatalf("expected two trimmed origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestGetEnvAsIntFallback(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	cfg := Load()
	if cfg.SMTPPort != 587 {
		t.Fatalf("expected fallback on unparsable int, got %d", cfg.SMTPPort)
	}
}
