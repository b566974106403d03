// Package ingestion turns uploaded resume files into plain text.
package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrEmptyDocument is returned when the input has no bytes.
	ErrEmptyDocument = errors.New("empty document")
	// ErrDecodeFailed wraps failures of a format-specific decoder.
	ErrDecodeFailed = errors.New("document decode failed")
)

// minPrintableRun is the shortest run of printable characters kept by the binary fallback.
const minPrintableRun = 4

// ExtractText decodes data according to format and returns cleaned text.
// An empty format is detected from the content. Unknown formats fall back to
// the printable text found in the bytes.
func ExtractText(data []byte, format Format) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	if format == "" {
		format = DetectFormat(data)
	}

	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDocx(data)
	case FormatDOC:
		// Legacy .doc files are often .docx files with the wrong extension.
		text, err = extractDocx(data)
		if err != nil {
			text, err = extractPrintable(data), nil
		}
	case FormatTXT, FormatText:
		text = strings.ToValidUTF8(string(data), "")
	case FormatHTML:
		text, err = extractHTML(data)
	case FormatRTF:
		text = extractRTF(data)
	default:
		text = extractPrintable(data)
	}
	if err != nil {
		return "", fmt.Errorf("%w (%s): %w", ErrDecodeFailed, format, err)
	}
	return CleanText(text), nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:cr/>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return unescapeXML(content), nil
}

var xmlEntities = strings.NewReplacer(
	"&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'",
)

func unescapeXML(s string) string {
	return xmlEntities.Replace(s)
}

// htmlBlocks end a line of text when rendered.
const htmlBlocks = "p, div, li, br, tr, h1, h2, h3, h4, h5, h6, section, article, header, footer"

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript, head").Remove()
	doc.Find(htmlBlocks).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return doc.Text(), nil
}

var (
	rtfParagraph   = regexp.MustCompile(`\\(?:par|line)\b ?`)
	rtfHexEscape   = regexp.MustCompile(`\\'[0-9a-fA-F]{2}`)
	rtfControlWord = regexp.MustCompile(`\\[a-zA-Z]+-?\d* ?`)
	rtfIgnorable   = regexp.MustCompile(`\{\\\*[^{}]*\}`)
)

// extractRTF drops RTF control words and groups, keeping the document text.
func extractRTF(data []byte) string {
	s := string(data)
	s = rtfIgnorable.ReplaceAllString(s, "")
	for _, table := range []string{`\fonttbl`, `\colortbl`, `\stylesheet`, `\info`} {
		s = dropGroup(s, table)
	}
	s = rtfParagraph.ReplaceAllString(s, "\n")
	s = rtfHexEscape.ReplaceAllString(s, "")
	s = rtfControlWord.ReplaceAllString(s, "")
	s = strings.NewReplacer(`\{`, "{", `\}`, "}", `\\`, `\`).Replace(s)
	s = strings.Map(func(r rune) rune {
		if r == '{' || r == '}' {
			return -1
		}
		return r
	}, s)
	return strings.ToValidUTF8(s, "")
}

// dropGroup removes every brace group that starts with the given control word.
func dropGroup(s, control string) string {
	for {
		start := strings.Index(s, "{"+control)
		if start < 0 {
			return s
		}
		depth := 0
		end := len(s)
		for i := start; i < len(s); i++ {
			switch s[i] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				end = i + 1
				break
			}
		}
		s = s[:start] + s[end:]
	}
}

// extractPrintable keeps runs of printable characters long enough to be words.
func extractPrintable(data []byte) string {
	var out, run strings.Builder
	runLen := 0
	flush := func() {
		if runLen >= minPrintableRun {
			out.WriteString(run.String())
			out.WriteString("\n")
		}
		run.Reset()
		runLen = 0
	}
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r != utf8.RuneError && (unicode.IsPrint(r) || r == '\t') {
			run.WriteRune(r)
			runLen++
			continue
		}
		flush()
	}
	flush()
	return out.String()
}
