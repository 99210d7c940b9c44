package format

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	short := "short response"

	if got := Truncate(short, "hint"); got != short {
		t.Fatalf("text within the limit must pass through unchanged")
	}

	long := strings.Repeat("a", CharacterLimit+500)
	result := Truncate(long, "Reduce num_results.")

	if !strings.Contains(result, "[Response truncated from 25500 characters. Reduce num_results.]") {
		t.Fatalf("missing truncation footer: %q", result[len(result)-120:])
	}

	if len(result) > CharacterLimit {
		t.Fatalf("truncated response exceeds the limit: %d", len(result))
	}

	// Truncating an already truncated response must be a no-op.
	if got := Truncate(result, "Reduce num_results."); got != result {
		t.Fatal("truncation is not idempotent")
	}
}

func TestTruncateRuneBoundary(t *testing.T) {
	// "€" is three bytes, so the cut offset lands mid-rune and must back
	// off instead of splitting it.
	long := strings.Repeat("€", CharacterLimit)
	result := Truncate(long, "hint")

	if !utf8.ValidString(result) {
		t.Fatal("truncated response contains invalid UTF-8")
	}

	if len(result) > CharacterLimit {
		t.Fatalf("truncated response exceeds the limit: %d", len(result))
	}
}

func TestPreviewRuneBoundary(t *testing.T) {
	// "é" is two bytes; a max of 3 falls inside the second rune.
	got := Preview("éé", 3)

	if got != "é..." {
		t.Fatalf("unexpected preview: %q", got)
	}

	if !utf8.ValidString(got) {
		t.Fatal("preview contains invalid UTF-8")
	}
}

func TestJSON(t *testing.T) {
	result := JSON([]byte(`{"a":1,"b":[2,3]}`))

	if !strings.Contains(result, "\n  \"a\": 1") {
		t.Fatalf("expected two-space indent, got %q", result)
	}

	// Invalid JSON passes through verbatim.
	if got := JSON([]byte("not json")); got != "not json" {
		t.Fatalf("unexpected passthrough: %q", got)
	}
}

func TestScore(t *testing.T) {
	if got := Score(0.8); got != "0.80" {
		t.Fatalf("unexpected score: %q", got)
	}

	if got := Score(0.123); got != "0.12" {
		t.Fatalf("unexpected score: %q", got)
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("abc", 10); got != "abc" {
		t.Fatalf("unexpected preview: %q", got)
	}

	if got := Preview("abcdefghij", 5); got != "abcde..." {
		t.Fatalf("unexpected preview: %q", got)
	}
}

func TestTitleURL(t *testing.T) {
	if got := Title(""); got != "Untitled" {
		t.Fatalf("unexpected title: %q", got)
	}

	if got := URL(""); got != "N/A" {
		t.Fatalf("unexpected url: %q", got)
	}
}
