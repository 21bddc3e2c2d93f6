// Package report turns a processed cut report into an ordered list of text
// blocks and serializes them as DOCX or Markdown.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"corte-report-go/internal/processor"
	"corte-report-go/internal/types"
)

type Kind int

const (
	KindTitle Kind = iota
	KindMeta
	KindHeading
	KindText
	KindBullet
	KindBlank
)

// Block is one paragraph with its formatting hints. Size is in points; zero
// means the renderer default.
type Block struct {
	Kind   Kind
	Text   string
	Bold   bool
	Size   float64
	Center bool
}

type Document struct {
	Blocks []Block
}

// Meta carries header details that are not part of the analysis.
type Meta struct {
	Author string
}

const (
	titleSize   = 16
	headingSize = 13
	metaSize    = 9
)

var grouping = message.NewPrinter(language.English)

// Build lays out the report sections: header, executive summary, diagnostics,
// top agents and the commentary on them.
func Build(rep processor.Report, meta Meta) Document {
	var b builder
	b.add(Block{Kind: KindTitle, Text: "Análisis General del Corte", Bold: true, Size: titleSize, Center: true})
	b.add(Block{Kind: KindMeta, Text: "Archivo origen: " + rep.Source, Size: metaSize})
	if rep.Sheet != "" {
		b.add(Block{Kind: KindMeta, Text: "Hoja: " + rep.Sheet, Size: metaSize})
	}
	b.add(Block{Kind: KindMeta, Text: "Fecha de generación: " + rep.GeneratedAt.Format("02/01/2006 15:04"), Size: metaSize})
	if meta.Author != "" {
		b.add(Block{Kind: KindMeta, Text: meta.Author, Size: metaSize})
	}
	b.blank()

	k := rep.KPI
	b.heading("Resumen Ejecutivo")
	b.text(fmt.Sprintf("Registros recorridos: %s", Thousands(k.TotalRecorrido)))
	b.text(fmt.Sprintf("Contactados: %s | Contacto Efectivo: %s | No válidos: %s",
		Thousands(k.TotalContacted), Thousands(k.TotalEffective), Thousands(k.TotalInvalid)))
	b.text(fmt.Sprintf("No contactados: %s | Ventas: %s | No aplica: %s",
		Thousands(k.TotalNotContacted), Thousands(k.TotalSales), Thousands(k.TotalNotApplicable)))
	b.blank()

	b.heading("Diagnóstico")
	for _, line := range rep.Diagnostics {
		b.add(Block{Kind: KindBullet, Text: line})
	}
	b.blank()

	b.heading(fmt.Sprintf("Top %d Agentes", rep.TopN))
	for _, e := range rep.Top.Entries {
		b.text(TopLine(e, rep.Top.Columns))
	}
	b.blank()

	b.heading(fmt.Sprintf("Comentario sobre el Top %d", rep.TopN))
	for _, line := range rep.Commentary {
		b.add(Block{Kind: KindBullet, Text: line})
	}
	return Document{Blocks: b.blocks}
}

// TopLine renders one ranked agent using only the columns present in the
// source data. Undefined ratios print as N/D.
func TopLine(e types.RankedEntry, columns []string) string {
	var parts []string
	for _, c := range columns {
		switch c {
		case types.ColRecorrido:
			parts = append(parts, fmt.Sprintf("Recorridos %d", int64(e.Recorrido)))
		case types.ColContacted:
			parts = append(parts, fmt.Sprintf("Contactados %d", int64(e.Contacted)))
		case types.ColEffective:
			parts = append(parts, fmt.Sprintf("Efectivos %d", int64(e.Effective)))
		case types.ColSales:
			parts = append(parts, fmt.Sprintf("Ventas %d", int64(e.Sales)))
		case types.ColEffectivenessRate:
			parts = append(parts, "Efectividad "+e.Effectiveness.Percent(0))
		case types.ColConversionRate:
			parts = append(parts, "Conversión "+e.Conversion.Percent(0))
		}
	}
	return e.User + ": " + strings.Join(parts, ", ")
}

// Thousands formats n with "." as the thousands separator.
func Thousands(n int64) string {
	return strings.ReplaceAll(grouping.Sprintf("%d", n), ",", ".")
}

// FileName is the output name for a report on source generated at t:
// Reporte_Corte_<source basename>_<YYYY-MM-DD HH.MM><ext>.
func FileName(source string, t time.Time, ext string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("Reporte_Corte_%s_%s%s", base, t.Format("2006-01-02 15.04"), ext)
}

// OutputPath places the report next to source unless dir is set.
func OutputPath(source, dir string, t time.Time, ext string) string {
	if dir == "" {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, FileName(source, t, ext))
}

type builder struct {
	blocks []Block
}

func (b *builder) add(bl Block) { b.blocks = append(b.blocks, bl) }

func (b *builder) blank() { b.add(Block{Kind: KindBlank}) }

func (b *builder) heading(s string) {
	b.add(Block{Kind: KindHeading, Text: s, Bold: true, Size: headingSize})
}

func (b *builder) text(s string) { b.add(Block{Kind: KindText, Text: s}) }
