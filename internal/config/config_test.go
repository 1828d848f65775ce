package config

import (
	"reflect"
	"testing"
	"time"
)

func lookup(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromLookupDefaults(t *testing.T) {
	cfg := FromLookup(lookup(nil))

	if cfg.Server.Port != "8085" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.ContactMail.SMTP.Port != 587 || cfg.RFQMail.SMTP.Port != 587 {
		t.Errorf("smtp ports = %d, %d", cfg.ContactMail.SMTP.Port, cfg.RFQMail.SMTP.Port)
	}
	if cfg.Cache.TTL != 600*time.Second {
		t.Errorf("cache ttl = %v", cfg.Cache.TTL)
	}
	if cfg.Cache.RedisURL != "" || cfg.Database.URL != "" {
		t.Error("cache and database should be unset by default")
	}
}

func TestMailConfigsAreIndependent(t *testing.T) {
	cfg := FromLookup(lookup(map[string]string{
		"EMAIL_HOST":     "smtp.example.com",
		"EMAIL_PORT":     "465",
		"EMAIL_USER":     "rfq@example.com",
		"EMAIL_PASSWORD": "secret",
		"SMTP_HOST":      "smtp.example.com",
	}))

	if m := cfg.RFQMail.Missing(); len(m) != 0 {
		t.Errorf("rfq config should be complete, missing %v", m)
	}
	if m := cfg.ContactMail.Missing(); !reflect.DeepEqual(m, []string{"SMTP_USER", "SMTP_PASSWORD"}) {
		t.Errorf("contact missing = %v", m)
	}
	if cfg.RFQMail.SMTP.Port != 465 {
		t.Errorf("rfq port = %d", cfg.RFQMail.SMTP.Port)
	}
	if cfg.RFQMail.To != "rfq@example.com" || cfg.RFQMail.From != "rfq@example.com" {
		t.Errorf("rfq addresses should default to the smtp user: %+v", cfg.RFQMail)
	}
}

func TestPortFallback(t *testing.T) {
	for _, v := range []string{"", "abc", "0", "70000"} {
		if got := port(v); got != 587 {
			t.Errorf("port(%q) = %d", v, got)
		}
	}
	if got := port("2525"); got != 2525 {
		t.Errorf("port(2525) = %d", got)
	}
}

func TestMailAddressOverrides(t *testing.T) {
	cfg := FromLookup(lookup(map[string]string{
		"SMTP_USER":          "relay@example.com",
		"CONTACT_FROM_EMAIL": "  ",
		"CONTACT_TO_EMAIL":   "sales@example.com",
		"EMAIL_USER":         "rfq-relay@example.com",
		"RFQ_FROM_EMAIL":     "quotes@example.com",
	}))

	tests := []struct {
		name, got, want string
	}{
		{"contact from falls back on blank", cfg.ContactMail.From, "relay@example.com"},
		{"contact to override", cfg.ContactMail.To, "sales@example.com"},
		{"rfq from override", cfg.RFQMail.From, "quotes@example.com"},
		{"rfq to falls back", cfg.RFQMail.To, "rfq-relay@example.com"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
