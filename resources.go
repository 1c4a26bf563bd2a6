package ggbench

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// LoadDefaultTypeface returns the embedded Go Regular font.
func LoadDefaultTypeface() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggbench: load default typeface: %w", err)
	}
	return src, nil
}

// LoadTypefaceFile loads a TrueType or OpenType font from path.
func LoadTypefaceFile(path string) (*text.FontSource, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("ggbench: load typeface %s: %w", path, err)
	}
	return src, nil
}

// LoadImageFile decodes a PNG, JPEG, WebP, BMP or TIFF image from path.
func LoadImageFile(path string) (*gg.ImageBuf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ggbench: load image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ggbench: decode image %s: %w", path, err)
	}
	Logger().Debug("image decoded", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return gg.ImageBufFromImage(img), nil
}

// RegisterResources loads the overlay typeface and the optional sample
// image into host. An empty fontPath selects the embedded font; an empty
// imagePath skips the image. Failures are returned but leave host usable.
func RegisterResources(host *Host, fontPath, imagePath string) error {
	var src *text.FontSource
	var err error
	if fontPath == "" {
		src, err = LoadDefaultTypeface()
	} else {
		src, err = LoadTypefaceFile(fontPath)
	}
	if err != nil {
		return err
	}
	if err := host.AddTypeface(DefaultTypeface, src); err != nil {
		return err
	}
	if imagePath == "" {
		return nil
	}
	img, err := LoadImageFile(imagePath)
	if err != nil {
		return err
	}
	return host.AddImage(BridgeImage, img)
}
