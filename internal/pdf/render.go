// Package pdf renders report pages to raster images for the vision model
// and exposes document metadata. Rendering is delegated to MuPDF via go-fitz;
// structural validation is delegated to pdfcpu.
package pdf

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI renders at 3x the PDF 72dpi baseline.
const DefaultDPI = 216

// Document wraps an open PDF and renders pages on demand.
type Document struct {
	path string
	doc  *fitz.Document
	dpi  float64
}

// Open opens the PDF at path for rendering. DPI <= 0 falls back to DefaultDPI.
func Open(path string, dpi float64) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Document{path: path, doc: doc, dpi: dpi}, nil
}

// Path returns the source file path.
func (d *Document) Path() string { return d.path }

// NumPages returns the page count.
func (d *Document) NumPages() int { return d.doc.NumPage() }

// Metadata returns the document information dictionary. Missing or
// unreadable metadata yields an empty map, never an error.
func (d *Document) Metadata() map[string]string {
	meta := d.doc.Metadata()
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// RenderPNG renders the zero-based page to PNG bytes at the configured DPI.
func (d *Document) RenderPNG(page int) ([]byte, error) {
	img, err := d.doc.ImageDPI(page, d.dpi)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", page+1, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page %d: %w", page+1, err)
	}
	return buf.Bytes(), nil
}

// Close releases the underlying document.
func (d *Document) Close() error {
	return d.doc.Close()
}
