package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders a filled document template to PDF (interface so the
// document service can be tested with a stub).
type Generator interface {
	Render(data RenderData) ([]byte, error)
}

type RenderData struct {
	Title     string
	Kind      string
	Reference string // deal id the document was generated for
	Body      string // template body with placeholders already filled
	CreatedAt time.Time
}

// DocumentGenerator is the gofpdf implementation.
type DocumentGenerator struct {
	fontName string
}

func NewDocumentGenerator() *DocumentGenerator {
	return &DocumentGenerator{fontName: "Helvetica"}
}

func (g *DocumentGenerator) Render(data RenderData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(data.Title, false)
	doc.SetAuthor("EstateCRM", false)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont(g.fontName, "B", 18)
	doc.CellFormat(0, 10, data.Title, "", 1, "C", false, 0, "")

	doc.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("%s  ·  %s", data.Kind, data.CreatedAt.Format("02.01.2006"))
	doc.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(doc)
	doc.Ln(3)

	g.kvLine(doc, "Reference", data.Reference)
	doc.Ln(2)

	doc.SetFont(g.fontName, "", 11)
	doc.MultiCell(0, 6, data.Body, "", "L", false)
	g.hr(doc)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *DocumentGenerator) hr(doc *gofpdf.Fpdf) {
	x, y := doc.GetXY()
	doc.SetDrawColor(180, 180, 180)
	doc.Line(20, y+2, 190, y+2)
	doc.SetXY(x, y+5)
}

func (g *DocumentGenerator) kvLine(doc *gofpdf.Fpdf, key, value string) {
	doc.SetFont(g.fontName, "B", 11)
	doc.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	doc.SetFont(g.fontName, "", 11)
	doc.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
