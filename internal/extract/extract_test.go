package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const docXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Ada Lovelace</w:t></w:r></w:p>
    <w:p><w:r><w:t>Backend engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestTextDocx(t *testing.T) {
	t.Parallel()

	data := buildDocx(t, docXML)
	text, err := Text(context.Background(), data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "Ada Lovelace") || !strings.Contains(text, "Backend engineer") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextDocxSentAsZip(t *testing.T) {
	t.Parallel()

	data := buildDocx(t, docXML)
	text, err := Text(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("extract zip-labelled docx: %v", err)
	}
	if !strings.Contains(text, "Ada Lovelace") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextUnsupportedMime(t *testing.T) {
	t.Parallel()

	if _, err := Text(context.Background(), []byte("hello"), "text/plain", "resume.txt"); err == nil {
		t.Fatalf("expected error for unsupported mime type")
	}
}

func TestTextCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Text(ctx, buildDocx(t, docXML), mimeDOCX, "resume.docx"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestStripDocxXMLParagraphBreaks(t *testing.T) {
	t.Parallel()

	got := stripDocxXML(docXML)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected paragraph breaks, got %q", got)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	t.Parallel()

	docx := buildDocx(t, docXML)
	tests := []struct {
		name     string
		mimeType string
		fileName string
		data     []byte
		want     string
	}{
		{name: "pdf passthrough", mimeType: "application/pdf", want: mimePDF},
		{name: "charset stripped", mimeType: "application/pdf; charset=binary", want: mimePDF},
		{name: "uppercase", mimeType: "APPLICATION/PDF", want: mimePDF},
		{name: "zip with docx payload", mimeType: "application/zip", data: docx, want: mimeDOCX},
		{name: "zip with docx extension", mimeType: "application/zip", fileName: "cv.docx", want: mimeDOCX},
		{name: "plain zip stays zip", mimeType: "application/zip", fileName: "cv.zip", want: "application/zip"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeMimeType(tt.mimeType, tt.fileName, tt.data); got != tt.want {
				t.Fatalf("normalizeMimeType = %q, want %q", got, tt.want)
			}
		})
	}
}
