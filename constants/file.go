package constants

import "strings"

// Source types for the scan_job source_type field.
const (
	SourcePDF   = "PDF"
	SourceImage = "IMAGE"
)

// MaxUploadBytes caps the accepted scan file size.
const MaxUploadBytes = 10 * 1024 * 1024

// AllowedExtensions holds the accepted file extensions for invoice scans.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SourceTypeForExt maps a normalized extension to its scan source type.
func SourceTypeForExt(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return SourcePDF
	}
	return SourceImage
}
