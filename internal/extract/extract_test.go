package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + body + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytes_DocxFromZipMime(t *testing.T) {
	data := buildDocx(t, "Led a team of five engineers")

	text, err := TextFromBytes(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if !strings.Contains(text, "Led a team of five engineers") {
		t.Fatalf("extracted text missing body: %q", text)
	}
}

func TestTextFromBytes_PlainText(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("  Senior Product Manager\n"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("plain text extraction failed: %v", err)
	}
	if text != "Senior Product Manager" {
		t.Fatalf("expected trimmed text, got %q", text)
	}
}

func TestTextFromBytes_ExtFallbackWhenOctetStream(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("markdown body"), "application/octet-stream", "notes.md")
	if err != nil {
		t.Fatalf("extension fallback failed: %v", err)
	}
	if text != "markdown body" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}
