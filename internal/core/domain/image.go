package domain

// MaxImageSize is the largest image file accepted for an ad creative.
const MaxImageSize = 10 << 20

// ImageFile is a locally selected image waiting to become an ad imageUrl.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Size returns the file size in bytes.
func (f ImageFile) Size() int { return len(f.Data) }
