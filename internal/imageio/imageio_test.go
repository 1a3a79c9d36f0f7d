package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() = %v", err)
	}
	return buf.Bytes()
}

func TestDecodeBytes(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.NRGBA{R: 255, G: 128, B: 0, A: 255})

	got, err := DecodeBytes(encodePNG(t, src))
	if err != nil {
		t.Fatalf("DecodeBytes() = %v", err)
	}
	if got.Bounds().Dx() != 3 || got.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", got.Bounds())
	}
	if len(got.Pix) != 3*2*4 {
		t.Errorf("len(Pix) = %d, want 24", len(got.Pix))
	}
	if c := got.NRGBAAt(1, 1); c != (color.NRGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("pixel (1,1) = %v", c)
	}
}

func TestDecodeBytes_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyData},
		{"garbage", []byte("definitely not an image"), ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeBytes() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeBytes_Truncated(t *testing.T) {
	data := encodePNG(t, image.NewRGBA(image.Rect(0, 0, 8, 8)))
	_, err := DecodeBytes(data[:len(data)/2])
	if err == nil {
		t.Fatal("DecodeBytes(truncated) = nil error")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeBytes(truncated) = %v, want a decode error", err)
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	if err := os.WriteFile(path, encodePNG(t, image.NewGray(image.Rect(0, 0, 4, 4))), 0o600); err != nil {
		t.Fatal(err)
	}
	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() = %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("width = %d, want 4", img.Bounds().Dx())
	}

	if _, err := DecodeFile(filepath.Join(dir, "missing.png")); !errors.Is(err, ErrOpen) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("DecodeFile(missing) = %v, want ErrOpen wrapping ErrNotExist", err)
	}
}

func TestToNRGBA(t *testing.T) {
	if _, err := ToNRGBA(image.NewNRGBA(image.Rect(0, 0, 0, 5))); !errors.Is(err, ErrZeroSize) {
		t.Errorf("ToNRGBA(empty) = %v, want ErrZeroSize", err)
	}

	sub := image.NewNRGBA(image.Rect(0, 0, 4, 4)).SubImage(image.Rect(1, 1, 3, 3))
	got, err := ToNRGBA(sub)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != image.Rect(0, 0, 2, 2) || got.Stride != 8 {
		t.Errorf("ToNRGBA(sub) bounds = %v stride = %d", got.Bounds(), got.Stride)
	}
}

func TestFitWithin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 400, 100))
	if got := FitWithin(img, 1000); got != img {
		t.Error("FitWithin() copied an image that already fits")
	}
	got := FitWithin(img, 200)
	if got.Bounds().Dx() != 200 || got.Bounds().Dy() != 50 {
		t.Errorf("FitWithin() = %v, want 200x50", got.Bounds())
	}
}

func TestDecodeBytesKeepsStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 64, B: 0, A: 128})

	got, err := DecodeBytes(encodePNG(t, src))
	if err != nil {
		t.Fatalf("DecodeBytes() = %v", err)
	}
	if want := []byte{255, 64, 0, 128}; !bytes.Equal(got.Pix, want) {
		t.Errorf("Pix = %v, want %v", got.Pix, want)
	}
}

func TestToNRGBAUnpremultiplies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 128, A: 128})

	got, err := ToNRGBA(src)
	if err != nil {
		t.Fatal(err)
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 255, A: 128}) {
		t.Errorf("pixel = %v, want straight red at half alpha", c)
	}
}
