package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-colour PNG and returns its path.
func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 150, B: 120, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t, 8, 6)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 6 {
		t.Errorf("loaded dimensions %dx%d, want 8x6", bounds.Dx(), bounds.Dy())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: "/nonexistent/image.png"},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Load(tt.path); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestFileLoaderRejectsDirectory(t *testing.T) {
	if _, err := NewFileLoader().Load(t.TempDir()); err == nil {
		t.Error("Load accepted a directory")
	}
}

func TestFileLoaderRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoader().Load(path); err == nil {
		t.Error("Load decoded a non-image file")
	}
}

func TestValidateImagePath(t *testing.T) {
	valid := writeTestPNG(t, 4, 4)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid png", path: valid},
		{name: "url passes shape check", path: "https://example.com/image.jpg"},
		{name: "empty", path: "", wantErr: true},
		{name: "missing", path: "/nonexistent/image.png", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestDownscale(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		maxDim int
		wantW  int
		wantH  int
	}{
		{name: "within bound unchanged", w: 100, h: 50, maxDim: 200, wantW: 100, wantH: 50},
		{name: "wide image", w: 400, h: 100, maxDim: 200, wantW: 200, wantH: 50},
		{name: "tall image", w: 100, h: 400, maxDim: 200, wantW: 50, wantH: 200},
		{name: "square image", w: 300, h: 300, maxDim: 150, wantW: 150, wantH: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Downscale(src, tt.maxDim)
			bounds := got.Bounds()
			if bounds.Dx() != tt.wantW || bounds.Dy() != tt.wantH {
				t.Errorf("Downscale = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDownscaleReturnsSameImageWhenSmall(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if got := Downscale(src, 100); got != image.Image(src) {
		t.Error("small image should be returned unchanged")
	}
}

func TestDownscalePreservesColour(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, G: 150, B: 120, A: 255})
		}
	}

	got := Downscale(src, 100)
	r, g, b, _ := got.At(50, 50).RGBA()
	if uint8(r>>8) != 200 || uint8(g>>8) != 150 || uint8(b>>8) != 120 {
		t.Errorf("downscaled centre pixel = (%d, %d, %d), want (200, 150, 120)",
			uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}
