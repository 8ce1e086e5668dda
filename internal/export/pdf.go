package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/philipparndt/gouvtile/internal/geometry"
)

// classColor is an RGB fill for the shells of one topology class
type classColor struct {
	R, G, B int
}

var classColors = []classColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	margin       = 15.0
	headerHeight = 12.0
	drawAreaTop  = margin + headerHeight + 8.0
)

// WritePDF renders one page per used tile followed by a summary page
func WritePDF(path string, r *Report) error {
	pdf, err := buildPDF(r)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func buildPDF(r *Report) (*fpdf.Fpdf, error) {
	if r.Tile.W <= 0 || r.Tile.H <= 0 {
		return nil, fmt.Errorf("invalid tile size %gx%g", r.Tile.W, r.Tile.H)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle("UV layout "+r.Scene, true)

	tiles := r.Tiles()
	for i, t := range tiles {
		pdf.AddPage()
		renderTilePage(pdf, r, t, i+1, len(tiles))
	}

	pdf.AddPage()
	renderSummaryPage(pdf, r)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdf, nil
}

func renderTilePage(pdf *fpdf.Fpdf, r *Report, t TileSheet, page, pages int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(margin, margin)
	title := fmt.Sprintf("Tile %d (UDIM %d), page %d of %d", t.Index, t.UDIM, page, pages)
	pdf.CellFormat(pageWidth-2*margin, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(margin, margin+headerHeight)
	stats := fmt.Sprintf("Class %s | Shells: %d | Spacing: %g | Run %s",
		t.Class, len(t.Placements), r.Params.Spacing, r.RunID)
	pdf.CellFormat(pageWidth-2*margin, 5, stats, "", 0, "L", false, 0, "")

	drawW := pageWidth - 2*margin
	drawH := pageHeight - drawAreaTop - margin
	scale := math.Min(drawW/r.Tile.W, drawH/r.Tile.H)
	canvasW := r.Tile.W * scale
	canvasH := r.Tile.H * scale
	offsetX := margin + (drawW-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	if len(t.Placements) == 0 {
		return
	}
	origin := t.Origin
	col := classColors[t.ClassIndex%len(classColors)]

	// UV grows upwards, the page grows downwards
	toPage := func(rect geometry.Rect) (x, y, w, h float64) {
		x = offsetX + (rect.Min.U-origin.U)*scale
		y = offsetY + canvasH - (rect.Min.V-origin.V+rect.H)*scale
		return x, y, rect.W * scale, rect.H * scale
	}

	for _, p := range t.Placements {
		x, y, w, h := toPage(p.Rect)
		pdf.SetDrawColor(180, 180, 180)
		pdf.SetLineWidth(0.1)
		pdf.Rect(x, y, w, h, "D")

		box := geometry.Rect{
			Min: p.Rect.Min.Add(geometry.Point{U: r.Params.Spacing, V: r.Params.Spacing}),
			W:   p.Rect.W - r.Params.Spacing,
			H:   p.Rect.H - r.Params.Spacing,
		}
		bx, by, bw, bh := toPage(box)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(bx, by, bw, bh, "FD")

		if bw > 15 && bh > 6 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			label := p.Ref
			if pdf.GetStringWidth(label) < bw-2 {
				pdf.SetXY(bx, by+bh/2-2)
				pdf.CellFormat(bw, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, r *Report) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageWidth-2*margin, headerHeight, "Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	y := margin + headerHeight + 4
	lines := []string{
		fmt.Sprintf("Scene: %s", r.Scene),
		fmt.Sprintf("Run: %s, %s", r.RunID, r.Created.Format("2006-01-02 15:04")),
		fmt.Sprintf("Start tile: %d, spacing: %g, stacking: %t (%d columns)",
			r.Params.StartTile, r.Params.Spacing, r.Params.Stacking, r.Params.StackColumns),
		fmt.Sprintf("Classes: %d, tiles used: %d, shells placed: %d",
			len(r.Result.Classes), r.Result.TileCount(), len(r.Result.Placements())),
	}
	for _, line := range lines {
		pdf.SetXY(margin, y)
		pdf.CellFormat(pageWidth-2*margin, 6, line, "", 0, "L", false, 0, "")
		y += 6
	}

	y += 4
	headers := []string{"Class", "Members", "Per tile", "Tiles", "Status"}
	widths := []float64{90, 30, 30, 30, 40}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	x := margin
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
		x += widths[i]
	}
	y += 7

	pdf.SetFont("Helvetica", "", 10)
	for _, c := range r.Result.Classes {
		if y > pageHeight-margin-7 {
			break
		}
		status := "arranged"
		if !c.Arranged {
			status = "too large"
		}
		row := []string{
			c.Key.String(),
			fmt.Sprintf("%d", len(c.Members)),
			fmt.Sprintf("%d", c.Capacity.ShellsPerTile),
			fmt.Sprintf("%d", len(c.Tiles)),
			status,
		}
		x = margin
		for i, v := range row {
			pdf.SetXY(x, y)
			pdf.CellFormat(widths[i], 7, v, "1", 0, "L", false, 0, "")
			x += widths[i]
		}
		y += 7
	}

	if len(r.Result.Unarranged) > 0 && y < pageHeight-margin-14 {
		y += 6
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(200, 80, 0)
		pdf.SetXY(margin, y)
		pdf.CellFormat(pageWidth-2*margin, 6, "Could not arrange:", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(margin, y+6)
		pdf.MultiCell(pageWidth-2*margin, 5, joinNames(r.Result.Unarranged), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
}
