// Package render draws a resume into a single-column A4 PDF with a fixed
// layout. Rendering is pure: input in, bytes out, no shared state.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/resumecraft/resume-builder-api/internal/core/ports"
)

const (
	pageMargin  = 15.0
	lineHeight  = 5.5
	sectionSkip = 4.0
)

// PDFRenderer implements ports.Renderer with go-pdf/fpdf.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(ctx context.Context, in ports.RenderInput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Resume", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core fonts are cp1252, so all user text goes through the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	width, _ := pdf.GetPageSize()
	usable := width - 2*pageMargin

	// Header: name, headline, contact line.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(usable, 10, tr(in.Name), "", 1, "C", false, 0, "")
	if in.Headline != "" {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.CellFormat(usable, 6, tr(in.Headline), "", 1, "C", false, 0, "")
	}
	if contact := contactLine(in); contact != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(usable, 5, tr(contact), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetDrawColor(60, 60, 60)
	pdf.Line(pageMargin, pdf.GetY(), width-pageMargin, pdf.GetY())

	if in.Summary != "" {
		sectionTitle(pdf, usable, "Summary")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(usable, lineHeight, tr(in.Summary), "", "L", false)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(in.Skills) > 0 {
		sectionTitle(pdf, usable, "Skills")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(usable, lineHeight, tr(strings.Join(in.Skills, " / ")), "", "L", false)
	}

	if len(in.Jobs) > 0 {
		sectionTitle(pdf, usable, "Experience")
		for _, job := range in.Jobs {
			entryHeading(pdf, tr, usable, job.Title, job.Company, job.Period)
			if job.Description != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.MultiCell(usable, lineHeight, tr(job.Description), "", "L", false)
			}
			pdf.Ln(1.5)
		}
	}

	if len(in.Schools) > 0 {
		sectionTitle(pdf, usable, "Education")
		for _, school := range in.Schools {
			entryHeading(pdf, tr, usable, school.Degree, school.School, school.Period)
			pdf.Ln(1.5)
		}
	}

	if len(in.Projects) > 0 {
		sectionTitle(pdf, usable, "Projects")
		for _, project := range in.Projects {
			entryHeading(pdf, tr, usable, project.Name, project.Link, "")
			if project.Description != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.MultiCell(usable, lineHeight, tr(project.Description), "", "L", false)
			}
			pdf.Ln(1.5)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, usable float64, title string) {
	pdf.Ln(sectionSkip)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(usable, 7, strings.ToUpper(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// entryHeading prints "primary, secondary" left-aligned with the period on
// the same line, right-aligned.
func entryHeading(pdf *fpdf.Fpdf, tr func(string) string, usable float64, primary, secondary, period string) {
	heading := primary
	if secondary != "" {
		if heading != "" {
			heading += ", " + secondary
		} else {
			heading = secondary
		}
	}

	pdf.SetFont("Helvetica", "B", 11)
	if period != "" {
		pdf.CellFormat(usable*0.7, 6, tr(heading), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(usable*0.3, 6, tr(period), "", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(usable, 6, tr(heading), "", 1, "L", false, 0, "")
	}
}

func contactLine(in ports.RenderInput) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{in.Email, in.Phone, in.Address} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "  |  ")
}
