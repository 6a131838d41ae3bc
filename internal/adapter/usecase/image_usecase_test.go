package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port/mocks"
)

// 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func TestFromURLIsVerbatim(t *testing.T) {
	u := NewImageUseCase(nil, discardLogger())
	a := u.FromURL("  not even a url ")

	got, err := a.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "  not even a url ", got)
}

func TestFromFileRejectsNonImages(t *testing.T) {
	u := NewImageUseCase(nil, discardLogger())

	_, err := u.FromFile(context.Background(), domain.ImageFile{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")})
	require.ErrorIs(t, err, domain.ErrInvalidImage)

	_, err = u.FromFile(context.Background(), domain.ImageFile{Name: "notes", Data: []byte("plain text")})
	require.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestFromFileRejectsLargeFiles(t *testing.T) {
	u := NewImageUseCase(nil, discardLogger())

	big := make([]byte, domain.MaxImageSize+1)
	_, err := u.FromFile(context.Background(), domain.ImageFile{Name: "big.png", ContentType: "image/png", Data: big})
	require.ErrorIs(t, err, domain.ErrImageTooLarge)

	exact := make([]byte, domain.MaxImageSize)
	_, err = u.FromFile(context.Background(), domain.ImageFile{Name: "edge.png", ContentType: "image/png", Data: exact})
	require.NoError(t, err)
}

func TestFromFileWithoutUploaderKeepsPreview(t *testing.T) {
	u := NewImageUseCase(nil, discardLogger())

	a, err := u.FromFile(context.Background(), domain.ImageFile{Name: "pixel", Data: pngBytes})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(a.Current(), "data:image/png;base64,"))

	got, err := a.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.Preview(), got)
}

func TestFromFilePreviewThenReplace(t *testing.T) {
	uploader := mocks.NewMockImageUploader(t)
	release := make(chan struct{})
	uploader.EXPECT().UploadAdImage(mock.Anything, mock.MatchedBy(func(f domain.ImageFile) bool {
		return f.ContentType == "image/png" && bytes.Equal(f.Data, pngBytes)
	})).RunAndReturn(func(context.Context, domain.ImageFile) (string, error) {
		<-release
		return "https://cdn.x/pixel.png", nil
	}).Once()

	u := NewImageUseCase(uploader, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	a, err := u.FromFile(ctx, domain.ImageFile{Name: "pixel.png", ContentType: "image/png", Data: pngBytes})
	require.NoError(t, err)
	cancel()

	assert.True(t, strings.HasPrefix(a.Current(), "data:image/png;base64,"))
	close(release)

	got, err := a.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.x/pixel.png", got)
	assert.Equal(t, got, a.Current())
}

func TestFromFileUploadFailureClearsPreview(t *testing.T) {
	uploader := mocks.NewMockImageUploader(t)
	uploader.EXPECT().UploadAdImage(mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()

	u := NewImageUseCase(uploader, discardLogger())
	a, err := u.FromFile(context.Background(), domain.ImageFile{Name: "pixel.png", ContentType: "image/png", Data: pngBytes})
	require.NoError(t, err)

	got, err := a.Wait(context.Background())
	require.EqualError(t, err, "disk full")
	assert.Empty(t, got)
	assert.Empty(t, a.Current())
}

func TestWaitHonoursContext(t *testing.T) {
	uploader := mocks.NewMockImageUploader(t)
	release := make(chan struct{})
	defer close(release)
	uploader.EXPECT().UploadAdImage(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.ImageFile) (string, error) {
			<-release
			return "https://cdn.x/late.png", nil
		}).Maybe()

	u := NewImageUseCase(uploader, discardLogger())
	a, err := u.FromFile(context.Background(), domain.ImageFile{Name: "p.png", ContentType: "image/png", Data: pngBytes})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = a.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
