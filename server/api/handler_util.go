package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/identitykit/aadhaar-extract/pkg/provider"
)

// readFile pulls the uploaded document out of the request: the "aadhaar"
// multipart field, the generic "file" field, or the raw body with a
// Content-Disposition filename.
func (h *Handler) readFile(r *http.Request) (*provider.File, error) {
	for _, field := range []string{"aadhaar", "file"} {
		file, header, err := r.FormFile(field)

		if err != nil {
			continue
		}

		data, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		return &provider.File{
			Name: header.Filename,

			Content:     data,
			ContentType: header.Header.Get("Content-Type"),
		}, nil
	}

	contentType := r.Header.Get("Content-Type")
	contentDisposition := r.Header.Get("Content-Disposition")

	_, params, _ := mime.ParseMediaType(contentDisposition)

	filename := params["filename*"]
	filename = strings.TrimPrefix(filename, "UTF-8''")
	filename = strings.TrimPrefix(filename, "utf-8''")

	if filename == "" {
		filename = params["filename"]
	}

	if filename == "" {
		return nil, errors.New("missing file upload")
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Name: filename,

		Content:     data,
		ContentType: contentType,
	}, nil
}
