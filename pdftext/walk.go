package pdftext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// sidecarPath returns the cache file stored next to the PDF:
// /archive/W11745.pdf -> /archive/W11745.txt
func sidecarPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".txt"
}

// readSidecar returns the cached text for pdfPath when the sidecar exists,
// is non-empty, and is at least as fresh as the PDF itself.
func readSidecar(pdfPath string) (string, bool) {
	side := sidecarPath(pdfPath)
	sideInfo, err := os.Stat(side)
	if err != nil || sideInfo.Size() == 0 {
		return "", false
	}
	pdfInfo, err := os.Stat(pdfPath)
	if err == nil && sideInfo.ModTime().Before(pdfInfo.ModTime()) {
		return "", false
	}
	data, err := os.ReadFile(side)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// TextForFile returns the extracted text of one PDF, consulting the
// sidecar .txt cache first. OCR on a 300 DPI scan takes tens of seconds
// per page; the cache makes re-runs over a large archive cheap.
func (e *Extractor) TextForFile(ctx context.Context, pdfPath string) (string, error) {
	if text, ok := readSidecar(pdfPath); ok {
		e.logger.Debug("using cached text", "path", pdfPath)
		return text, nil
	}

	doc, err := e.Extract(ctx, pdfPath)
	if err != nil {
		return "", err
	}

	if werr := os.WriteFile(sidecarPath(pdfPath), []byte(doc.Text), 0o644); werr != nil {
		e.logger.Warn("failed to write text cache", "path", pdfPath, "error", werr)
	}
	return doc.Text, nil
}

// ListPDFs returns the paths of all PDFs directly under dir, sorted by
// filename.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pdftext: read dir %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Walk calls fn with the text of every PDF directly under dir, in sorted
// filename order. Extraction failures are logged and skipped; the count of
// skipped files is returned. fn returning an error stops the walk.
func (e *Extractor) Walk(ctx context.Context, dir string, fn func(path, text string) error) (failed int, err error) {
	paths, err := ListPDFs(dir)
	if err != nil {
		return 0, err
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		text, err := e.TextForFile(ctx, path)
		if err != nil {
			e.logger.Error("extraction failed", "path", path, "error", err)
			failed++
			continue
		}
		if err := fn(path, text); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
