package report

import (
	"fmt"
	"io"
)

const (
	FormatDOCX     = "docx"
	FormatMarkdown = "md"
)

// Extension returns the file extension for a format, including the dot.
func Extension(format string) (string, error) {
	switch format {
	case FormatDOCX, "":
		return ".docx", nil
	case FormatMarkdown:
		return ".md", nil
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc Document, format string) error {
	switch format {
	case FormatDOCX, "":
		return WriteDOCX(w, doc)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Save writes doc to path in the given format without leaving partial files.
func Save(path string, doc Document, format string) error {
	if _, err := Extension(format); err != nil {
		return err
	}
	return saveAtomic(path, func(w io.Writer) error { return Encode(w, doc, format) })
}
