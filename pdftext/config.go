package pdftext

import "log/slog"

// Config configures the extractor.
type Config struct {
	// MaxFileSize is the maximum PDF size to process (default: 100 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// MinNativeTextLen is the minimum number of characters the native
	// extraction must yield before it is trusted; below this the document
	// is treated as a scanned image and OCR runs (default: 50).
	MinNativeTextLen int `json:"min_native_text_len" yaml:"min_native_text_len"`

	// Pdftoppm and Tesseract are binary names or absolute paths.
	Pdftoppm  string `json:"pdftoppm" yaml:"pdftoppm"`
	Tesseract string `json:"tesseract" yaml:"tesseract"`

	// TesseractLang is the OCR language (default: "eng").
	TesseractLang string `json:"tesseract_lang" yaml:"tesseract_lang"`

	// DPI is the rasterization resolution for scanned pages (default: 300).
	DPI int `json:"dpi" yaml:"dpi"`

	// MaxPages caps how many pages are OCRed per document; 0 = no limit.
	MaxPages int `json:"max_pages" yaml:"max_pages"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.MinNativeTextLen <= 0 {
		c.MinNativeTextLen = 50
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.TesseractLang == "" {
		c.TesseractLang = "eng"
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
