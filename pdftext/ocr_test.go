package pdftext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubRunner fakes pdftoppm and tesseract. pdftoppm "renders" pages by
// creating empty PNG files under the requested prefix; tesseract returns
// canned text.
type stubRunner struct {
	pages int
	text  string
	fail  bool
}

func (s stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if s.fail {
		return nil, []byte("boom"), errors.New("exit status 1")
	}
	switch {
	case strings.Contains(name, "pdftoppm"):
		prefix := args[len(args)-1]
		for i := 1; i <= s.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case strings.Contains(name, "tesseract"):
		return []byte(s.text), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func TestOCRPDF(t *testing.T) {
	e := New(Config{})
	e.runner = stubRunner{pages: 2, text: "Well File No: 12345"}

	pages, err := e.ocrPDF(context.Background(), "in.pdf")
	if err != nil {
		t.Fatalf("ocrPDF: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if !strings.Contains(pages[0], "12345") {
		t.Errorf("page text = %q", pages[0])
	}
}

func TestOCRPDFMaxPages(t *testing.T) {
	e := New(Config{MaxPages: 1})
	e.runner = stubRunner{pages: 3, text: "page text"}

	pages, err := e.ocrPDF(context.Background(), "in.pdf")
	if err != nil {
		t.Fatalf("ocrPDF: %v", err)
	}
	if len(pages) != 1 {
		t.Errorf("got %d pages, want 1 (MaxPages cap)", len(pages))
	}
}

func TestOCRPDFFailure(t *testing.T) {
	e := New(Config{})
	e.runner = stubRunner{fail: true}

	if _, err := e.ocrPDF(context.Background(), "in.pdf"); err == nil {
		t.Fatal("expected error when pdftoppm fails")
	}
}

func TestExtractFallsBackToOCR(t *testing.T) {
	// WHAT: a file with no readable text layer goes through the OCR path.
	// WHY: pre-2000 filings are plain scans; they are the reason OCR exists here.
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.pdf")
	if err := os.WriteFile(path, []byte("not really a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New(Config{})
	e.runner = stubRunner{pages: 1, text: "OCR RECOVERED TEXT"}

	doc, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Method != "ocr" {
		t.Errorf("method = %q, want ocr", doc.Method)
	}
	if !strings.Contains(doc.Text, "OCR RECOVERED TEXT") {
		t.Errorf("text = %q", doc.Text)
	}
}

func TestExtractUnreadableAndNoOCR(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.pdf")
	if err := os.WriteFile(path, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New(Config{})
	e.runner = stubRunner{fail: true}

	if _, err := e.Extract(context.Background(), path); err == nil {
		t.Fatal("expected error when both native and OCR fail")
	}
}
