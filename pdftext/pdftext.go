// Package pdftext extracts the text of scanned oil-well filings.
//
// Completion reports arrive as PDFs of wildly varying vintage: recent ones
// carry a native text layer, older ones are plain scans. Extract reads the
// text layer first (pure Go, via pdfcpu) and falls back to rasterizing the
// pages and running tesseract when the native layer is absent or garbled.
//
// Usage:
//
//	ex := pdftext.New(pdftext.Config{})
//	doc, err := ex.Extract(ctx, "/archive/W11745.pdf")
//	fmt.Println(doc.Method, len(doc.Pages), "pages")
package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Document is the extraction result for one PDF.
type Document struct {
	Path    string             `json:"path"`
	Pages   []string           `json:"pages"`
	Text    string             `json:"text"`
	Method  string             `json:"method"` // "native" or "ocr"
	Quality *ExtractionQuality `json:"quality,omitempty"`
}

// Extractor pulls text out of PDF files.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

// New creates an Extractor with the given configuration.
func New(cfg Config) *Extractor {
	cfg.defaults()
	return &Extractor{
		cfg:    cfg,
		runner: execRunner{},
		logger: cfg.Logger,
	}
}

// Extract returns the text of the PDF at path, one entry per page.
// The native text layer wins when it yields enough plausible text;
// otherwise the pages are rasterized and OCRed.
func (e *Extractor) Extract(ctx context.Context, path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("pdftext: stat %s: %w", path, err)
	}
	if info.Size() > e.cfg.MaxFileSize {
		return nil, fmt.Errorf("pdftext: %s: %d bytes exceeds limit %d", path, info.Size(), e.cfg.MaxFileSize)
	}

	pages, quality, nerr := extractNative(path)
	native := strings.Join(pages, "\n")

	if nerr == nil && len(native) >= e.cfg.MinNativeTextLen && !quality.NeedsOCR() {
		return &Document{
			Path:    path,
			Pages:   pages,
			Text:    native,
			Method:  "native",
			Quality: quality,
		}, nil
	}

	e.logger.Info("native text layer insufficient, running ocr",
		"path", path,
		"native_chars", len(native),
		"read_error", nerr != nil)

	ocrPages, oerr := e.ocrPDF(ctx, path)
	if oerr != nil {
		// A thin native layer still beats nothing when OCR is unavailable.
		if nerr == nil && native != "" {
			e.logger.Warn("ocr failed, keeping native text", "path", path, "error", oerr)
			return &Document{
				Path:    path,
				Pages:   pages,
				Text:    native,
				Method:  "native",
				Quality: quality,
			}, nil
		}
		return nil, fmt.Errorf("pdftext: ocr %s: %w", path, oerr)
	}

	return &Document{
		Path:    path,
		Pages:   ocrPages,
		Text:    strings.Join(ocrPages, "\n"),
		Method:  "ocr",
		Quality: quality,
	}, nil
}
