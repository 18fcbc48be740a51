package cv

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const MaxFileSize = 5 * 1024 * 1024

var (
	ErrUnsupportedType = errors.New("Unsupported file type. Please upload a PDF, DOCX, TXT or an image (PNG, JPG, WEBP).")
	ErrTooLarge        = errors.New("File size too large. Please upload files smaller than 5MB.")
	ErrEmptyDocument   = errors.New("Could not extract any text from the file. The file might be empty or corrupted.")
	ErrUnreadable      = errors.New("Failed to process the file. Please ensure it is a valid document.")
)

// Kind is the normalized type of an uploaded resume.
type Kind struct {
	Ext      string
	MIMEType string
	Image    bool
}

var kinds = map[string]Kind{
	".pdf":  {Ext: ".pdf", MIMEType: "application/pdf"},
	".docx": {Ext: ".docx", MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	".txt":  {Ext: ".txt", MIMEType: "text/plain"},
	".png":  {Ext: ".png", MIMEType: "image/png", Image: true},
	".jpg":  {Ext: ".jpg", MIMEType: "image/jpeg", Image: true},
	".jpeg": {Ext: ".jpeg", MIMEType: "image/jpeg", Image: true},
	".webp": {Ext: ".webp", MIMEType: "image/webp", Image: true},
}

// DetectKind decides by file extension, or by the declared content type when the
// name has no extension. Anything off the allow-list is ErrUnsupportedType.
func DetectKind(filename, contentType string) (Kind, error) {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		if k, ok := kinds[ext]; ok {
			return k, nil
		}
		return Kind{}, ErrUnsupportedType
	}
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if ct == "image/jpg" {
		ct = "image/jpeg"
	}
	for _, ext := range []string{".pdf", ".docx", ".txt", ".png", ".jpg", ".webp"} {
		if k := kinds[ext]; k.MIMEType == ct {
			return k, nil
		}
	}
	return Kind{}, ErrUnsupportedType
}

// ExtractText returns the plain text of a text-bearing document.
// Images carry no text and must be sent to the model as inline data.
func ExtractText(k Kind, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch k.Ext {
	case ".txt":
		text = string(data)
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	default:
		return "", fmt.Errorf("no text extractor for %s", k.Ext)
	}
	if err != nil {
		return "", fmt.Errorf("%w (%v)", ErrUnreadable, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, _ := page.GetPlainText(nil)
		textBuilder.WriteString(pageText)
		textBuilder.WriteByte('\n')
	}
	return textBuilder.String(), nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns document.xml; keep paragraph breaks and drop the markup.
	content := paragraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return unescapeXML(content), nil
}

var xmlEntities = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")

func unescapeXML(s string) string {
	return xmlEntities.Replace(s)
}
