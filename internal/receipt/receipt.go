// Package receipt renders a printable order summary for a configured
// subject as a one-page PDF.
package receipt

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"avatarmarket/internal/configurator"
	"avatarmarket/internal/money"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	margin    = 48
	rowH      = 22.0
	swatch    = 36.0
	fontSize  = 11
	titleSize = 20
)

var ErrNoSubject = errors.New("receipt: quote has no subject")

// Generate returns PDF bytes listing the subject, chosen color, one row per
// priced trait and the total.
func Generate(q configurator.Quote) ([]byte, error) {
	if q.Subject == nil {
		return nil, ErrNoSubject
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Avatar Market order", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header band in the subject's accent color
	r, g, b := hexRGB(q.Subject.Accent)
	pdf.SetFillColor(r, g, b)
	pdf.Rect(margin, margin, swatch, swatch, "F")

	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin+swatch+12, margin)
	pdf.CellFormat(300, swatch/2, tr(q.Subject.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(margin+swatch+12, margin+swatch/2)
	pdf.CellFormat(300, swatch/2, tr(q.Subject.Description), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetXY(pageW-margin-140, margin)
	pdf.CellFormat(140, swatch/2, "Order summary", "", 0, "R", false, 0, "")

	// Color row with a swatch of the chosen hex
	y := float64(margin) + swatch + 28
	cr, cg, cb := hexRGB(q.Color.Hex)
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(margin, y)
	pdf.CellFormat(120, rowH, "Color", "", 0, "L", false, 0, "")
	pdf.SetFillColor(cr, cg, cb)
	pdf.Rect(margin+120, y+5, 12, 12, "F")
	pdf.SetXY(margin+138, y)
	pdf.CellFormat(200, rowH, tr(q.Color.Name), "", 0, "L", false, 0, "")
	pdf.SetXY(pageW-margin-120, y)
	pdf.CellFormat(120, rowH, money.Delta(0), "", 0, "R", false, 0, "")
	y += rowH

	rows := make([][3]string, 0, len(q.Lines)+1)
	rows = append(rows, [3]string{"Base", q.Subject.Name, money.Format(q.Base)})
	for _, l := range q.Lines {
		rows = append(rows, [3]string{l.Label, l.Option, money.Delta(l.Price)})
	}
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
			pdf.Rect(margin, y, pageW-2*margin, rowH, "F")
		}
		pdf.SetXY(margin, y)
		pdf.CellFormat(120, rowH, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(200, rowH, tr(row[1]), "", 0, "L", false, 0, "")
		pdf.SetXY(pageW-margin-120, y)
		pdf.CellFormat(120, rowH, row[2], "", 0, "R", false, 0, "")
		y += rowH
	}

	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(margin, y+4, pageW-margin, y+4)
	y += 10
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(margin, y)
	pdf.CellFormat(120, rowH, "Extras", "", 0, "L", false, 0, "")
	pdf.SetXY(pageW-margin-120, y)
	pdf.CellFormat(120, rowH, money.Format(q.Extras), "", 0, "R", false, 0, "")
	y += rowH
	pdf.SetFont("Helvetica", "B", fontSize+2)
	pdf.SetXY(margin, y)
	pdf.CellFormat(120, rowH, "Total", "", 0, "L", false, 0, "")
	pdf.SetXY(pageW-margin-120, y)
	pdf.CellFormat(120, rowH, money.Format(q.Total), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// hexRGB parses "#rrggbb". Anything else yields mid grey.
func hexRGB(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 128, 128, 128
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 128, 128, 128
	}
	return int((v>>16)&0xff), int((v>>8)&0xff), int(v&0xff)
}
