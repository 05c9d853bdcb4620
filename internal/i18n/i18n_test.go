package i18n

import "testing"

func TestParseFallsBackToSpanish(t *testing.T) {
	cases := map[string]Language{
		"es":  ES,
		"pt":  PT,
		"PT ": PT,
		"":    ES,
		"en":  ES,
		"fr":  ES,
	}
	for raw, want := range cases {
		if got := Parse(raw); got != want {
			t.Fatalf("Parse(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestTextComplete(t *testing.T) {
	full := Text{ES: "hola", PT: "olá"}
	if !full.Complete() {
		t.Fatal("expected full text to be complete")
	}
	missing := Text{ES: "hola"}
	if missing.Complete() {
		t.Fatal("text without portuguese must be incomplete")
	}
	blank := Text{ES: "hola", PT: "  "}
	if blank.Complete() {
		t.Fatal("whitespace-only translation must count as missing")
	}
}

func TestTableValidate(t *testing.T) {
	good := Table{"total": {ES: "TOTAL", PT: "TOTAL"}}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := Table{"total": {ES: "TOTAL"}}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation error for missing translation")
	}
}

func TestTableGetReturnsKeyOnMiss(t *testing.T) {
	table := Table{"total": {ES: "TOTAL", PT: "TOTAL"}}
	if got := table.Get("missing", ES); got != "missing" {
		t.Fatalf("expected key echo, got %q", got)
	}
	if got := table.Get("total", PT); got != "TOTAL" {
		t.Fatalf("got %q", got)
	}
}
