package interfaces

// UploadedImage is a file already written to the uploads directory and
// awaiting normalization.
type UploadedImage struct {
	Path         string // absolute or workdir-relative path on disk
	ContentType  string // declared MIME type from the multipart part
	OriginalName string
}

// IImageNormalizer converts uploaded images to web-safe JPEG/PNG files:
// HEIC/HEIF re-encoded as JPEG, everything resized to a bounded width and
// re-compressed in place.
//
// Normalize is per-file best-effort: a failed re-encode keeps the saved file
// and is only logged. The returned paths are uploads-relative and preserve
// input order.
type IImageNormalizer interface {
	Normalize(files []UploadedImage) []string
}
