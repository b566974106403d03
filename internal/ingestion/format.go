package ingestion

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format identifies how resume bytes are decoded.
type Format string

// Known formats. Anything else goes through the printable-text fallback.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatTXT  Format = "txt"
	FormatText Format = "text"
	FormatRTF  Format = "rtf"
	FormatHTML Format = "html"
)

// uploadFormats are the extensions accepted from clients.
var uploadFormats = map[Format]bool{
	FormatPDF:  true,
	FormatDOCX: true,
	FormatDOC:  true,
	FormatTXT:  true,
	FormatRTF:  true,
}

// FormatFromFilename returns the lowercase extension of name without its dot.
func FormatFromFilename(name string) Format {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return Format(strings.ToLower(ext))
}

// IsSupportedUpload reports whether a client may upload a file with this name.
func IsSupportedUpload(name string) bool {
	return uploadFormats[FormatFromFilename(name)]
}

// SupportedUploads lists the accepted upload extensions.
func SupportedUploads() []string {
	return []string{"pdf", "docx", "doc", "txt", "rtf"}
}

// DetectFormat guesses a format from leading magic bytes. It returns "" when unsure.
func DetectFormat(data []byte) Format {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	lower := bytes.ToLower(bytes.TrimSpace(head))
	switch {
	case bytes.HasPrefix(head, []byte("%PDF-")):
		return FormatPDF
	case bytes.HasPrefix(head, []byte("PK\x03\x04")):
		return FormatDOCX
	case bytes.HasPrefix(head, []byte{0xD0, 0xCF, 0x11, 0xE0}):
		return FormatDOC
	case bytes.HasPrefix(lower, []byte(`{\rtf`)):
		return FormatRTF
	case bytes.HasPrefix(lower, []byte("<!doctype html")), bytes.HasPrefix(lower, []byte("<html")):
		return FormatHTML
	}
	return ""
}
