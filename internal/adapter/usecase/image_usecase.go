package usecase

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
	"locket-admin/internal/metrics"
)

// ImageUseCase turns a typed URL or a picked file into the imageUrl of an
// ad draft.
type ImageUseCase struct {
	uploader port.ImageUploader
	logger   *slog.Logger
}

// NewImageUseCase returns an ImageUseCase. A nil uploader keeps picked
// files as inline data URLs.
func NewImageUseCase(uploader port.ImageUploader, logger *slog.Logger) *ImageUseCase {
	return &ImageUseCase{uploader: uploader, logger: logger}
}

// Acquisition is the evolving imageUrl of one picked image: a local
// preview first, then the durable URL once the upload finishes.
type Acquisition struct {
	mu      sync.Mutex
	preview string
	current string
	err     error
	done    chan struct{}
}

func newAcquisition(value string) *Acquisition {
	return &Acquisition{preview: value, current: value, done: make(chan struct{})}
}

// Current returns the value the draft should show right now.
func (a *Acquisition) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Preview returns the value produced before any upload.
func (a *Acquisition) Preview() string {
	return a.preview
}

// Done is closed once the value is final.
func (a *Acquisition) Done() <-chan struct{} { return a.done }

// Wait blocks until the value is final and returns it, or the upload
// error.
func (a *Acquisition) Wait(ctx context.Context) (string, error) {
	select {
	case <-a.done:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current, a.err
}

func (a *Acquisition) finish(value string, err error) {
	a.mu.Lock()
	a.current = value
	a.err = err
	a.mu.Unlock()
	close(a.done)
}

// FromURL uses raw verbatim. It is checked together with the rest of the
// draft on submit.
func (u *ImageUseCase) FromURL(raw string) *Acquisition {
	a := newAcquisition(raw)
	close(a.done)
	return a
}

// FromFile checks that file is an image of at most domain.MaxImageSize
// bytes and returns an acquisition holding its data URL preview. With an
// uploader the file is then uploaded in the background; the upload is not
// tied to ctx's cancellation.
func (u *ImageUseCase) FromFile(ctx context.Context, file domain.ImageFile) (*Acquisition, error) {
	contentType := detectContentType(file)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.ErrInvalidImage
	}
	if file.Size() > domain.MaxImageSize {
		return nil, domain.ErrImageTooLarge
	}
	file.ContentType = contentType

	a := newAcquisition(dataURL(contentType, file.Data))
	if u.uploader == nil {
		close(a.done)
		return a, nil
	}

	go u.upload(context.WithoutCancel(ctx), a, file)
	return a, nil
}

func (u *ImageUseCase) upload(ctx context.Context, a *Acquisition, file domain.ImageFile) {
	url, err := u.uploader.UploadAdImage(ctx, file)
	if err != nil {
		metrics.ImageUploadsTotal.WithLabelValues("failed").Inc()
		u.logger.Warn("ad image upload failed", slog.String("file", file.Name), slog.Any("error", err))
		a.finish("", err)
		return
	}
	metrics.ImageUploadsTotal.WithLabelValues("ok").Inc()
	u.logger.Debug("ad image uploaded", slog.String("file", file.Name), slog.String("url", url))
	a.finish(url, nil)
}

// detectContentType trusts a declared type unless it is missing or
// generic, and sniffs the bytes otherwise.
func detectContentType(file domain.ImageFile) string {
	declared := strings.ToLower(strings.TrimSpace(file.ContentType))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(file.Data).String()
}

func dataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
