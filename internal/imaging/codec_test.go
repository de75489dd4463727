package imaging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethanwork/cs-crt-filter/internal/crt"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"png", "shot.png", "shot_crt.png"},
		{"jpeg", "photo.jpeg", "photo_crt.jpeg"},
		{"with directory", "out/dir/img.jpg", "out/dir/img_crt.jpg"},
		{"no extension", "rawfile", "rawfile_crt"},
		{"dotted directory", "v1.2/img.png", "v1.2/img_crt.png"},
		{"hidden file", ".config.png", ".config_crt.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.in); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	buf := crt.NewBuffer(3, 2)
	pixels := []crt.Pixel{
		{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 255}, {R: 0, G: 0, B: 0}, {R: 17, G: 99, B: 203},
	}
	i := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			buf.Set(x, y, pixels[i])
			i++
		}
	}

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := Save(buf, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Width() != 3 || loaded.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", loaded.Width(), loaded.Height())
	}

	// PNG is lossless, so every pixel survives unchanged.
	i = 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := loaded.At(x, y); got != pixels[i] {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, pixels[i])
			}
			i++
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.png"))
	if err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load should fail for undecodable data")
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	buf := crt.NewBuffer(1, 1)

	err := Save(buf, filepath.Join(t.TempDir(), "out.xyz"))
	if err == nil {
		t.Error("Save should fail for an unknown output format")
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	buf := crt.NewBuffer(1, 1)

	err := Save(buf, filepath.Join(t.TempDir(), "missing-dir", "out.png"))
	if err == nil {
		t.Error("Save should fail when the directory does not exist")
	}
}
