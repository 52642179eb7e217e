package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/identitykit/aadhaar-extract/pkg/document"
	"github.com/identitykit/aadhaar-extract/pkg/extractor"
	"github.com/identitykit/aadhaar-extract/pkg/provider"
	"github.com/identitykit/aadhaar-extract/pkg/raster"
)

// handleExtract runs the request pipeline: validate, persist to a scratch
// file, rasterize the first page, extract fields, respond. The scratch file
// is removed on every exit path; the first failing stage wins.
func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	file, err := h.readFile(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if !h.Validator.IsPDF(file.Name, file.Content) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("File %s must be a valid PDF", file.Name))
		return
	}

	scratch, err := document.NewScratch(h.ScratchDir, file.Content)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	defer scratch.Remove(h.Logger)

	image, err := h.Renderer.Render(r.Context(), scratch.Path())

	if err != nil {
		if errors.Is(err, raster.ErrRender) {
			h.Logger.Warn("rasterization failed", "file", file.Name, "error", err)

			writeError(w, http.StatusBadRequest, fmt.Errorf("Failed to process %s", file.Name))
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	page := provider.File{
		Name: "page.png",

		Content:     image,
		ContentType: "image/png",
	}

	record, err := h.Extractor.Extract(r.Context(), page)

	if err != nil {
		if errors.Is(err, extractor.ErrUnparsable) {
			h.Logger.Warn("extraction failed", "file", file.Name, "error", err)

			writeError(w, http.StatusBadRequest, fmt.Errorf("Failed to extract data from %s", file.Name))
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, record)
}
