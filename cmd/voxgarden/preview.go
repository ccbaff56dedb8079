package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/ashgrove/voxant"
)

// previewDir is where dumpPreview writes its timestamped PNG captures.
const previewDir = "voxgarden_previews"

// dumpPreview renders one software raycast frame from cam and writes it as
// a timestamped PNG under previewDir, independent of the ebiten.Game loop.
func dumpPreview(tree *voxant.DynamicOctree, cam *camera, label string) error {
	pixels := castScene(tree, cam, screenW, screenH)

	img := image.NewNRGBA(image.Rect(0, 0, screenW, screenH))
	copy(img.Pix, pixels)

	if err := os.MkdirAll(previewDir, 0o755); err != nil {
		return fmt.Errorf("voxgarden: preview: mkdir %s: %w", previewDir, err)
	}

	stamp := time.Now().Format("20060102_150405")
	path := fmt.Sprintf("%s/%s_%s.png", previewDir, stamp, sanitizeLabel(label))
	return writePNG(path, img)
}

func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	label = strings.ReplaceAll(label, " ", "_")
	if label == "" {
		return "frame"
	}
	return label
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("voxgarden: preview: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("voxgarden: preview: encode %s: %w", path, err)
	}
	return nil
}
