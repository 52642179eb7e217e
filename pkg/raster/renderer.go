package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// Renderer turns the first page of a stored document into a PNG.
type Renderer interface {
	Render(ctx context.Context, path string) ([]byte, error)
}

var (
	// ErrRender marks an expected rasterization failure (unreadable or
	// malformed document). Callers map it to an invalid-input response
	// instead of an internal error.
	ErrRender = errors.New("render failed")

	// ErrNoPages reports a structurally valid document with zero pages.
	ErrNoPages = fmt.Errorf("%w: document has no pages", ErrRender)
)

type Fitz struct{}

func NewRenderer() *Fitz {
	return &Fitz{}
}

// Render opens the document at path and encodes page index zero as a PNG.
// Multi-page documents are fine; only the first page is rendered.
func (f *Fitz) Render(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, ErrNoPages
	}

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("%w: page 0: %v", ErrRender, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrRender, err)
	}

	return buf.Bytes(), nil
}
