package utils

import (
	"strings"
	"testing"
)

func TestStripTags(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text stays", "plain text stays"},
		{"<b>bold</b> text", "bold text"},
		{"&lt;b&gt;escaped markup&lt;/b&gt;", "escaped markup"},
		{"<script>alert(1)</script>after", "after"},
		{"<p><p><p>", ""},
	}
	for _, c := range cases {
		if got := StripTags(c.in); got != c.want {
			t.Errorf("StripTags(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeFieldDropsScripts(t *testing.T) {
	cleaned, safe := SanitizeField("<script>alert(1)</script>hello there")
	if safe {
		t.Error("Expected script input to be flagged unsafe")
	}
	if strings.Contains(cleaned, "script") {
		t.Errorf("Script survived sanitization: %q", cleaned)
	}
	if !strings.Contains(cleaned, "hello there") {
		t.Errorf("Legitimate text lost: %q", cleaned)
	}
}

func TestSanitizeFieldKeepsPlainText(t *testing.T) {
	in := "just a normal description of a problem"
	cleaned, safe := SanitizeField(in)
	if !safe {
		t.Error("Plain text flagged as unsafe")
	}
	if cleaned != in {
		t.Errorf("Plain text changed: %q -> %q", in, cleaned)
	}
}
