package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/webp"
)

// decodeSprite turns file data into an image. SVG files are rasterised at size x size,
// everything else goes through the registered image decoders (png, jpeg, gif, webp).
func decodeSprite(name string, data []byte, size int) (image.Image, error) {
	if strings.EqualFold(path.Ext(name), ".svg") {
		return svgToImage(data, size, size)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// svgToImage rasterises SVG data into an RGBA image
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	// Parse SVG
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	// Set the target size
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.Draw(raster, 1.0)

	return img, nil
}

// saveDebugPNG writes img to dir/name.png
func saveDebugPNG(img image.Image, dir, name string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create debug dir: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		return fmt.Errorf("create debug png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode debug png: %w", err)
	}
	return nil
}
