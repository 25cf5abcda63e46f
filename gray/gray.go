package gray

import "fmt"

// Image is a single-channel, 8-bit image stored row-major: Pix[y*Width+x].
// Pix may alias caller-owned memory (see FromBuffer), in which case in-place
// operations write through to the caller's buffer.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a zeroed image of the given dimensions.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}, nil
}

// FromBuffer wraps an existing row-major buffer without copying it. The
// returned image shares memory with pix.
func FromBuffer(pix []uint8, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if pix == nil {
		return nil, fmt.Errorf("pixel buffer is nil")
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("buffer length %d does not match dimensions %dx%d", len(pix), width, height)
	}
	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// Uniform allocates an image with every sample set to v.
func Uniform(width, height int, v uint8) (*Image, error) {
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img, nil
}

// At returns the sample at (x, y). Bounds are not checked.
func (img *Image) At(x, y int) uint8 {
	return img.Pix[y*img.Width+x]
}

// Set writes the sample at (x, y). Bounds are not checked.
func (img *Image) Set(x, y int, v uint8) {
	img.Pix[y*img.Width+x] = v
}

// Clone returns a deep copy backed by freshly allocated memory.
func (img *Image) Clone() *Image {
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Pix: pix}
}

// Validate reports whether the image is internally consistent.
func (img *Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", img.Width, img.Height)
	}
	if img.Pix == nil {
		return fmt.Errorf("pixel buffer is nil")
	}
	if len(img.Pix) != img.Width*img.Height {
		return fmt.Errorf("buffer length %d does not match dimensions %dx%d", len(img.Pix), img.Width, img.Height)
	}
	return nil
}

// ValidateForOperation wraps Validate with the name of the operation that
// needs the image, for error messages raised deeper in a pipeline.
func ValidateForOperation(img *Image, operation string) error {
	if img == nil {
		return fmt.Errorf("image is nil for operation: %s", operation)
	}
	if err := img.Validate(); err != nil {
		return fmt.Errorf("invalid image for operation %s: %w", operation, err)
	}
	return nil
}
