package media

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gmcl_backoffice/internal/usecase/interfaces"
)

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func pngWidth(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	return cfg.Width
}

func TestNormalizeResizesWideImages(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	wide := filepath.Join(root, "wide.png")
	writePNG(t, wide, 2400, 1200)

	n := NewImageNormalizer(root)
	paths := n.Normalize([]interfaces.UploadedImage{
		{Path: wide, ContentType: "image/png", OriginalName: "photo.png"},
	})

	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %v", paths)
	}
	if paths[0] != "uploads/wide.png" {
		t.Fatalf("expected uploads-relative path, got %q", paths[0])
	}
	if w := pngWidth(t, wide); w != 1200 {
		t.Fatalf("expected width 1200 after resize, got %d", w)
	}
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	small := filepath.Join(root, "small.png")
	writePNG(t, small, 640, 480)

	n := NewImageNormalizer(root)
	n.Normalize([]interfaces.UploadedImage{
		{Path: small, ContentType: "image/png", OriginalName: "photo.png"},
	})

	if w := pngWidth(t, small); w != 640 {
		t.Fatalf("small image must not be upscaled, got width %d", w)
	}
}

func TestNormalizeIsBestEffortPerFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	good := filepath.Join(root, "good.png")
	writePNG(t, good, 100, 100)
	bad := filepath.Join(root, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	n := NewImageNormalizer(root)
	paths := n.Normalize([]interfaces.UploadedImage{
		{Path: bad, ContentType: "image/png", OriginalName: "bad.png"},
		{Path: good, ContentType: "image/png", OriginalName: "good.png"},
	})

	// The corrupt file is logged and kept; both paths come back in order.
	if len(paths) != 2 || paths[0] != "uploads/bad.png" || paths[1] != "uploads/good.png" {
		t.Fatalf("unexpected paths %v", paths)
	}
}

func TestIsHEIC(t *testing.T) {
	cases := []struct {
		contentType string
		name        string
		want        bool
	}{
		{"image/heic", "a.jpg", true},
		{"image/heif", "a.jpg", true},
		{"image/jpeg", "a.HEIC", true},
		{"", "photo.heif", true},
		{"image/jpeg", "a.jpg", false},
		{"image/png", "b.png", false},
	}
	for _, tc := range cases {
		if got := IsHEIC(tc.contentType, tc.name); got != tc.want {
			t.Fatalf("IsHEIC(%q, %q) = %v, want %v", tc.contentType, tc.name, got, tc.want)
		}
	}
}

func TestWebPath(t *testing.T) {
	n := NewImageNormalizer("/srv/app/uploads")
	cases := []struct {
		in   string
		want string
	}{
		{"/srv/app/uploads/123-456.jpg", "uploads/123-456.jpg"},
		{"/srv/app/uploads/sub/123-456.jpg", "uploads/sub/123-456.jpg"},
		{"/etc/passwd", "/etc/passwd"},
	}
	for _, tc := range cases {
		if got := n.WebPath(tc.in); got != tc.want {
			t.Fatalf("WebPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeRelativizesCustomRoot(t *testing.T) {
	// The uploads directory can live anywhere on disk; persisted paths must
	// still be uploads-relative, never absolute.
	root := filepath.Join(t.TempDir(), "media-store")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	img := filepath.Join(root, "1-1.png")
	writePNG(t, img, 100, 100)

	n := NewImageNormalizer(root)
	paths := n.Normalize([]interfaces.UploadedImage{
		{Path: img, ContentType: "image/png", OriginalName: "photo.png"},
	})

	if len(paths) != 1 || paths[0] != "uploads/1-1.png" {
		t.Fatalf("expected uploads-relative path, got %v", paths)
	}
	if filepath.IsAbs(paths[0]) {
		t.Fatalf("persisted path must not be absolute: %q", paths[0])
	}
}

func TestNormalizeHEICDeclaredUpload(t *testing.T) {
	// HEIC uploads arrive already renamed to .jpg; after normalization the
	// stored file must carry the .jpg name and decode as JPEG.
	root := filepath.Join(t.TempDir(), "uploads")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(root, "1-1.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, 100, 100)), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	n := NewImageNormalizer(root)
	paths := n.Normalize([]interfaces.UploadedImage{
		{Path: path, ContentType: "image/heic", OriginalName: "photo.heic"},
	})

	if len(paths) != 1 || paths[0] != "uploads/1-1.jpg" {
		t.Fatalf("unexpected paths %v", paths)
	}
	if strings.Contains(strings.ToLower(paths[0]), ".heic") {
		t.Fatalf("heic name must not be persisted: %q", paths[0])
	}
	out, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer out.Close()
	if _, err := jpeg.DecodeConfig(out); err != nil {
		t.Fatalf("stored file is not a jpeg: %v", err)
	}
}
