package glot

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MIME types the engine accepts for data payloads.
const (
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEPptx = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MIMEXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEPDF  = "application/pdf"
	MIMEDoc  = "application/msword"
	MIMEText = "text/plain"
	MIMEHTML = "text/html"
	MIMEJSON = "application/json"
	MIMEYAML = "text/yaml"
	MIMEPO   = "text/x-po"
	MIMEMP3  = "audio/mpeg"
	MIMEWAV  = "audio/wav"
	MIMEM4A  = "audio/mp4"
	MIMEFLAC = "audio/flac"
	MIMEOGG  = "audio/ogg"

	MIMEOctetStream = "application/octet-stream"
)

// Attachment is a data payload handed to the Translator collaborator: raw
// bytes plus the resolved MIME type. Name carries the source file name when
// the payload came from disk and is empty for inline data.
type Attachment struct {
	Bytes []byte
	MIME  string
	Name  string
}

// loadAttachment reads a data file and resolves its MIME type from the hint,
// the content, or the file extension.
func loadAttachment(path, mimeHint string, force bool) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapKind(ErrIO, fmt.Errorf("read data file %s: %w", path, err))
	}
	return attachmentFromBytes(data, mimeHint, filepath.Base(path), force)
}

// attachmentFromBytes wraps a payload, resolving its MIME type. When the
// type cannot be detected under an auto hint the payload still goes through:
// as plain text under force, as an opaque octet stream otherwise. Explicit
// hints never fall back.
func attachmentFromBytes(data []byte, mimeHint, name string, force bool) (*Attachment, error) {
	mime, err := resolveMIME(mimeHint, data, name)
	if err != nil {
		lower := strings.ToLower(strings.TrimSpace(mimeHint))
		if lower != "" && lower != "auto" {
			return nil, err
		}
		mime = MIMEOctetStream
		if force {
			mime = MIMEText
		}
	}
	return &Attachment{Bytes: data, MIME: mime, Name: name}, nil
}

// resolveMIME maps a user-supplied hint (shorthand, full MIME type, "auto",
// or "image/*") to a canonical supported MIME type.
func resolveMIME(input string, data []byte, name string) (string, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		raw = "auto"
	}
	lower := strings.ToLower(raw)

	switch lower {
	case "auto":
		return detectMIME(data, name, false)
	case "image", "image/*":
		return detectMIME(data, name, true)
	case "pdf":
		return MIMEPDF, nil
	case "doc":
		return MIMEDoc, nil
	case "docs", "docx":
		return MIMEDocx, nil
	case "pptx":
		return MIMEPptx, nil
	case "xlsx":
		return MIMEXlsx, nil
	case "txt", "text":
		return MIMEText, nil
	case "html", "htm":
		return MIMEHTML, nil
	case "json":
		return MIMEJSON, nil
	case "yaml", "yml":
		return MIMEYAML, nil
	case "po":
		return MIMEPO, nil
	case "mp3":
		return MIMEMP3, nil
	case "wav":
		return MIMEWAV, nil
	case "m4a":
		return MIMEM4A, nil
	case "flac":
		return MIMEFLAC, nil
	case "ogg":
		return MIMEOGG, nil
	case "png":
		return "image/png", nil
	case "jpg", "jpeg":
		return "image/jpeg", nil
	case "gif":
		return "image/gif", nil
	case "webp":
		return "image/webp", nil
	case "bmp":
		return "image/bmp", nil
	case "tiff", "tif":
		return "image/tiff", nil
	case "heic":
		return "image/heic", nil
	}

	switch lower {
	case MIMEDocx, MIMEPptx, MIMEXlsx, MIMEPDF, MIMEDoc, MIMEText, MIMEHTML,
		MIMEJSON, MIMEYAML, MIMEPO, MIMEMP3, MIMEWAV, MIMEM4A, MIMEFLAC, MIMEOGG:
		return lower, nil
	case "application/x-yaml", "application/yaml", "text/x-yaml":
		return MIMEYAML, nil
	case "text/x-gettext-translation", "application/x-gettext-translation":
		return MIMEPO, nil
	}
	if strings.HasPrefix(lower, "image/") || strings.HasPrefix(lower, "audio/") {
		return lower, nil
	}

	return "", kindErrorf(ErrInvalidArgument,
		"unsupported --data-mime '%s' (expected auto, image/*, pdf, doc, docx, docs, pptx, xlsx, txt, html, json, yaml, po, mp3, wav, m4a, flac, ogg)", raw)
}

func detectMIME(data []byte, name string, requireImage bool) (string, error) {
	if detected := sniffMIME(data); detected != "" {
		if requireImage && !strings.HasPrefix(detected, "image/") {
			return "", kindErrorf(ErrInvalidArgument,
				"data-mime image/* requires image data (detected '%s')", detected)
		}
		return detected, nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if mime := mimeFromExtension(ext); mime != "" {
		if requireImage && !strings.HasPrefix(mime, "image/") {
			return "", kindErrorf(ErrInvalidArgument,
				"data-mime image/* requires image data (detected '%s')", mime)
		}
		return mime, nil
	}

	subject := name
	if subject == "" {
		subject = "stdin"
	}
	return "", kindErrorf(ErrInvalidArgument, "unable to detect supported mime for file '%s'", subject)
}

// sniffMIME inspects content and returns a supported MIME type, or "" when
// the content signature is unknown or unsupported.
func sniffMIME(data []byte) string {
	detected := http.DetectContentType(data)
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = strings.TrimSpace(detected[:i])
	}
	switch {
	case strings.HasPrefix(detected, "image/"):
		return detected
	case detected == "audio/wave":
		return MIMEWAV
	case strings.HasPrefix(detected, "audio/"):
		return detected
	case detected == "application/ogg":
		return MIMEOGG
	}
	switch detected {
	case MIMEPDF, MIMEHTML, MIMEText:
		return detected
	case "application/zip":
		return officeMIMEInZip(data)
	}
	return ""
}

// officeMIMEInZip distinguishes the OOXML formats by their archive layout.
func officeMIMEInZip(data []byte) string {
	switch {
	case bytes.Contains(data, []byte("word/")):
		return MIMEDocx
	case bytes.Contains(data, []byte("ppt/")):
		return MIMEPptx
	case bytes.Contains(data, []byte("xl/")):
		return MIMEXlsx
	}
	return ""
}

func mimeFromExtension(ext string) string {
	switch ext {
	case "pdf":
		return MIMEPDF
	case "doc":
		return MIMEDoc
	case "docs", "docx":
		return MIMEDocx
	case "pptx":
		return MIMEPptx
	case "xlsx":
		return MIMEXlsx
	case "txt":
		return MIMEText
	case "html", "htm":
		return MIMEHTML
	case "json":
		return MIMEJSON
	case "yaml", "yml":
		return MIMEYAML
	case "po":
		return MIMEPO
	case "mp3":
		return MIMEMP3
	case "wav":
		return MIMEWAV
	case "m4a":
		return MIMEM4A
	case "flac":
		return MIMEFLAC
	case "ogg":
		return MIMEOGG
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tiff", "tif":
		return "image/tiff"
	case "heic":
		return "image/heic"
	}
	return ""
}

// extensionFromMIME picks the file extension for a translated output.
func extensionFromMIME(mime string) (string, bool) {
	switch mime {
	case MIMEPDF:
		return "pdf", true
	case MIMEDoc:
		return "doc", true
	case MIMEDocx:
		return "docx", true
	case MIMEPptx:
		return "pptx", true
	case MIMEXlsx:
		return "xlsx", true
	case MIMEText:
		return "txt", true
	case MIMEHTML:
		return "html", true
	case MIMEJSON:
		return "json", true
	case MIMEYAML:
		return "yaml", true
	case MIMEPO:
		return "po", true
	case MIMEMP3:
		return "mp3", true
	case MIMEWAV:
		return "wav", true
	case MIMEM4A:
		return "m4a", true
	case MIMEFLAC:
		return "flac", true
	case MIMEOGG:
		return "ogg", true
	case "image/png":
		return "png", true
	case "image/jpeg", "image/jpg":
		return "jpg", true
	case "image/webp":
		return "webp", true
	case "image/gif":
		return "gif", true
	case "image/bmp":
		return "bmp", true
	case "image/tiff":
		return "tiff", true
	case "image/heic":
		return "heic", true
	}
	return "", false
}
