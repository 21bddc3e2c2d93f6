package report

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestWriteDOCX(t *testing.T) {
	doc := Document{Blocks: []Block{
		{Kind: KindTitle, Text: "Título", Bold: true, Size: 16, Center: true},
		{Kind: KindBlank},
		{Kind: KindBullet, Text: "A & B <ok>"},
	}}
	var buf bytes.Buffer
	require.NoError(t, WriteDOCX(&buf, doc))

	assert.Contains(t, readPart(t, buf.Bytes(), "[Content_Types].xml"), "wordprocessingml.document.main+xml")
	assert.Contains(t, readPart(t, buf.Bytes(), "_rels/.rels"), `Target="word/document.xml"`)

	body := readPart(t, buf.Bytes(), "word/document.xml")
	assert.Contains(t, body, `<w:jc w:val="center"/>`)
	assert.Contains(t, body, "<w:b/>")
	assert.Contains(t, body, `<w:sz w:val="32"/>`)
	assert.Contains(t, body, "Título")
	assert.Contains(t, body, "• A &amp; B &lt;ok&gt;")
	assert.Contains(t, body, "<w:p></w:p>")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	doc := Build(sampleReport(), Meta{})

	docx := filepath.Join(dir, "out.docx")
	require.NoError(t, Save(docx, doc, FormatDOCX))
	data, err := os.ReadFile(docx)
	require.NoError(t, err)
	assert.Contains(t, readPart(t, data, "word/document.xml"), "Resumen Ejecutivo")

	md := filepath.Join(dir, "out.md")
	require.NoError(t, Save(md, doc, FormatMarkdown))
	data, err = os.ReadFile(md)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Resumen Ejecutivo")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestSaveAtomic_FailedWriteLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	boom := errors.New("boom")

	err := saveAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtension(t *testing.T) {
	ext, err := Extension("")
	require.NoError(t, err)
	assert.Equal(t, ".docx", ext)

	ext, err = Extension(FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, ".md", ext)

	_, err = Extension("pdf")
	assert.Error(t, err)
}
