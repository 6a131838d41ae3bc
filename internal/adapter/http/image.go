package httpadapter

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"locket-admin/internal/core/domain"
)

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
	Preview  string `json:"preview,omitempty"`
}

// handleImage turns the posted image into an imageUrl for the ad form.
// A multipart body must carry the file in the "image" field; a JSON body
// {"url": "..."} is returned verbatim. For a file the response holds the
// uploaded URL, or the inline preview when upload is not configured.
func (h *Handler) handleImage(w http.ResponseWriter, r *http.Request) {
	images := session(r).Images()

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		var req struct {
			URL string `json:"url"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, imageResponse{ImageURL: images.FromURL(req.URL).Current()})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxImageSize+1<<20)
	file, header, err := r.FormFile("image")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.writeError(w, r, domain.ErrImageTooLarge, "")
			return
		}
		badRequest(w, "missing image file")
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, io.LimitReader(file, domain.MaxImageSize+1)); err != nil {
		badRequest(w, "failed to read image file")
		return
	}

	acq, err := images.FromFile(r.Context(), domain.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        buf.Bytes(),
	})
	if err != nil {
		h.writeError(w, r, err, "Failed to read image")
		return
	}
	url, err := acq.Wait(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Image upload failed")
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{ImageURL: url, Preview: acq.Preview()})
}
