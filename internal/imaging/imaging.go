package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// Bounding box for cover images.
const (
	CoverMaxWidth  = 1280
	CoverMaxHeight = 720
)

// ThumbnailSize is the edge length of square thumbnails.
const ThumbnailSize = 320

// MaxUploadBytes caps the size of an uploaded image.
const MaxUploadBytes = 5 << 20

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrTooLarge          = errors.New("image too large")
)

// allowedMIME lists the accepted input MIME types.
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Image is an encoded JPEG with its dimensions.
type Image struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// Cover reads an uploaded image, checks its format by sniffing bytes, fits it
// inside the cover bounding box and re-encodes it as JPEG.
func Cover(r io.Reader) (*Image, error) {
	img, err := decode(r)
	if err != nil {
		return nil, err
	}
	return encode(fit(img, CoverMaxWidth, CoverMaxHeight))
}

// Thumbnail center-crops an image to a square and scales it to ThumbnailSize.
func Thumbnail(r io.Reader) (*Image, error) {
	img, err := decode(r)
	if err != nil {
		return nil, err
	}
	return encode(squareCrop(img, ThumbnailSize))
}

func decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	detected := http.DetectContentType(data)
	if !allowedMIME[detected] {
		return nil, fmt.Errorf("%w: %s (only JPEG and PNG accepted)", ErrUnsupportedFormat, detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

func encode(img image.Image) (*Image, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	b := img.Bounds()
	return &Image{
		Data:   buf.Bytes(),
		MIME:   "image/jpeg",
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// fit scales img down so it fits within maxW x maxH, preserving aspect ratio.
// Images already inside the box are returned unchanged.
func fit(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	var newW, newH int
	if w*maxH > h*maxW {
		newW, newH = maxW, h*maxW/w
	} else {
		newW, newH = w*maxH/h, maxH
	}
	newW, newH = max(1, newW), max(1, newH)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// squareCrop takes the largest centered square of img and scales it to size.
func squareCrop(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	side := min(bounds.Dx(), bounds.Dy())
	x0 := bounds.Min.X + (bounds.Dx()-side)/2
	y0 := bounds.Min.Y + (bounds.Dy()-side)/2
	src := image.Rect(x0, y0, x0+side, y0+side)

	out := min(size, side)
	dst := image.NewRGBA(image.Rect(0, 0, out, out))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)
	return dst
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
