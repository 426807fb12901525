package util

import "testing"

func TestHashUserKey(t *testing.T) {
	id := "google:12345"
	got := HashUserKey(id)
	if got != HashUserKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestHashCanonical(t *testing.T) {
	type payload struct {
		Content  string   `json:"content"`
		Keywords []string `json:"keywords"`
	}

	a, err := HashCanonical(payload{Content: "x", Keywords: []string{"go"}})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashCanonical(payload{Content: "x", Keywords: []string{"go"}})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a != b {
		t.Fatalf("equal payloads hashed differently: %s vs %s", a, b)
	}

	c, _ := HashCanonical(payload{Content: "y", Keywords: []string{"go"}})
	if a == c {
		t.Fatalf("distinct payloads collided")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(a))
	}
}
