package media

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/adrium/goheif"
	"github.com/disintegration/imaging"
)

const (
	// maxWidth bounds the stored image width; height follows the aspect ratio.
	maxWidth = 1200
	// jpegQuality is the re-compression quality factor (~0.8).
	jpegQuality = 80
)

// ImageNormalizer turns uploaded files into web-safe images on disk:
// HEIC/HEIF decoded and re-encoded as JPEG, everything resized to at most
// maxWidth and re-compressed in place.
//
// Every step is per-file best-effort: a failed conversion or re-encode is
// logged and the previously-saved file kept, so one bad image never blocks
// the rest of the batch.
type ImageNormalizer struct {
	uploadsRoot string
}

var _ interfaces.IImageNormalizer = (*ImageNormalizer)(nil)

func NewImageNormalizer(uploadsRoot string) *ImageNormalizer {
	return &ImageNormalizer{uploadsRoot: uploadsRoot}
}

func (n *ImageNormalizer) Normalize(files []interfaces.UploadedImage) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		if IsHEIC(f.ContentType, f.OriginalName) {
			if err := convertHEICToJPEG(f.Path); err != nil {
				log.Printf("[media][normalize] heic conversion failed file=%s err=%v", f.Path, err)
			}
		}
		if err := reencode(f.Path); err != nil {
			log.Printf("[media][normalize] re-encode failed file=%s err=%v", f.Path, err)
		}
		paths = append(paths, n.WebPath(f.Path))
	}
	return paths
}

// IsHEIC reports whether the upload declares (or is named as) HEIC/HEIF.
func IsHEIC(contentType, originalName string) bool {
	switch strings.ToLower(contentType) {
	case "image/heic", "image/heif":
		return true
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	return ext == ".heic" || ext == ".heif"
}

// convertHEICToJPEG decodes the HEIC bytes at path and overwrites the file
// with a JPEG encoding. The saved file already carries a .jpg name (the
// upload handler renames HEIC files on arrival), so nothing .heic survives.
func convertHEICToJPEG(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	img, err := goheif.Decode(f)
	f.Close()
	if err != nil {
		return err
	}
	return imaging.Save(img, path, imaging.JPEGQuality(jpegQuality))
}

// reencode resizes the image at path down to maxWidth (preserving aspect
// ratio) and re-compresses it in place.
func reencode(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}
	return imaging.Save(img, path, imaging.JPEGQuality(jpegQuality))
}

// WebPath rewrites a saved file path to the "uploads/..." form persisted
// with the record and served by the static mount, relative to the
// configured uploads root (whatever directory that is on disk).
func (n *ImageNormalizer) WebPath(path string) string {
	rel, err := filepath.Rel(n.uploadsRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return "uploads/" + filepath.ToSlash(rel)
}
