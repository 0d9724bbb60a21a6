package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileTypeVideo   = 1
	FileTypeImage   = 2
	FileTypePDF     = 3
	FileTypeUnknown = 99
)

// DetectFileTypeFromExt menebak jenis file dari ekstensi (guard ringan sebelum upload OSS)
func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp4", ".mov", ".mkv", ".webm":
		return FileTypeVideo
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	case ".pdf":
		return FileTypePDF
	default:
		return FileTypeUnknown
	}
}

func IsVideoFilename(filename string) bool {
	return DetectFileTypeFromExt(filename) == FileTypeVideo
}

func IsImageFilename(filename string) bool {
	return DetectFileTypeFromExt(filename) == FileTypeImage
}
