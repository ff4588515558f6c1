package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// PDF page geometry (A4 in points).
const (
	pageWidth    = 595.0
	pageHeight   = 842.0
	pageMarginX  = 36.0
	contentWidth = pageWidth - 2*pageMarginX
)

type pdfRGB [3]float64

// pdfTheme mirrors the page's dark visual theme.
type pdfTheme struct {
	bg        pdfRGB
	panel     pdfRGB
	panelAlt  pdfRGB
	border    pdfRGB
	text      pdfRGB
	muted     pdfRGB
	accent    pdfRGB
	accentAlt pdfRGB
}

var cvTheme = pdfTheme{
	bg:        pdfRGB{0.03, 0.06, 0.14},
	panel:     pdfRGB{0.07, 0.13, 0.28},
	panelAlt:  pdfRGB{0.06, 0.11, 0.24},
	border:    pdfRGB{0.22, 0.33, 0.50},
	text:      pdfRGB{0.90, 0.95, 0.99},
	muted:     pdfRGB{0.77, 0.84, 0.91},
	accent:    pdfRGB{0.91, 0.76, 0.50},
	accentAlt: pdfRGB{0.56, 0.44, 0.74},
}

// pdfEscape escapes the characters PDF string literals reserve.
func pdfEscape(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(text)
}

// wrapText greedily wraps text to an approximate character budget derived
// from the available width and the font size.
func wrapText(text string, width, size float64, bold bool) []string {
	if text == "" {
		return []string{""}
	}
	factor := 0.53
	if bold {
		factor = 0.56
	}
	maxChars := int(width / (size * factor))
	if maxChars < 12 {
		maxChars = 12
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	var lines []string
	cur := words[0]
	for _, word := range words[1:] {
		if len(cur)+1+len(word) <= maxChars {
			cur += " " + word
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	return append(lines, cur)
}

// circlePath emits a cubic Bezier approximation of a circle as path
// commands, ready for a fill or stroke operator.
func circlePath(cx, cy, radius float64) string {
	const kappa = 0.5522847498
	c := radius * kappa
	return fmt.Sprintf(
		"%.2f %.2f m "+
			"%.2f %.2f %.2f %.2f %.2f %.2f c "+
			"%.2f %.2f %.2f %.2f %.2f %.2f c "+
			"%.2f %.2f %.2f %.2f %.2f %.2f c "+
			"%.2f %.2f %.2f %.2f %.2f %.2f c ",
		cx+radius, cy,
		cx+radius, cy+c, cx+c, cy+radius, cx, cy+radius,
		cx-c, cy+radius, cx-radius, cy+c, cx-radius, cy,
		cx-radius, cy-c, cx-c, cy-radius, cx, cy-radius,
		cx+c, cy-radius, cx+radius, cy-c, cx+radius, cy)
}

// styledPDF accumulates page content streams and assembles the final raw
// PDF. The emission is deliberately primitive (Type1 base fonts, explicit
// xref) so the export has no dependencies beyond the file itself.
type styledPDF struct {
	theme  pdfTheme
	pages  []string
	cur    strings.Builder
	pageNo int
}

func newStyledPDF() *styledPDF {
	return &styledPDF{theme: cvTheme}
}

func (p *styledPDF) cmd(line string) {
	p.cur.WriteString(line)
	p.cur.WriteByte('\n')
}

func (p *styledPDF) colorFill(c pdfRGB) {
	p.cmd(fmt.Sprintf("%.3f %.3f %.3f rg", c[0], c[1], c[2]))
}

func (p *styledPDF) colorStroke(c pdfRGB) {
	p.cmd(fmt.Sprintf("%.3f %.3f %.3f RG", c[0], c[1], c[2]))
}

// rect draws a rectangle with optional fill and stroke colors.
func (p *styledPDF) rect(x, y, w, h float64, fill, stroke *pdfRGB, lineWidth float64) {
	if fill != nil {
		p.colorFill(*fill)
	}
	if stroke != nil {
		p.colorStroke(*stroke)
		p.cmd(fmt.Sprintf("%.2f w", lineWidth))
	}
	p.cmd(fmt.Sprintf("%.2f %.2f %.2f %.2f re", x, y, w, h))
	switch {
	case fill != nil && stroke != nil:
		p.cmd("B")
	case fill != nil:
		p.cmd("f")
	default:
		p.cmd("S")
	}
}

// text places a single line at x, y in the given base font ("F1" regular,
// "F2" bold).
func (p *styledPDF) text(x, y float64, value string, size float64, font string, color *pdfRGB) {
	if color != nil {
		p.colorFill(*color)
	}
	p.cmd("BT")
	p.cmd(fmt.Sprintf("/%s %.2f Tf", font, size))
	p.cmd(fmt.Sprintf("1 0 0 1 %.2f %.2f Tm", x, y))
	p.cmd(fmt.Sprintf("(%s) Tj", pdfEscape(value)))
	p.cmd("ET")
}

// drawDecor paints the dark background, soft corner glows, decorative rings,
// and scattered star dots.
func (p *styledPDF) drawDecor() {
	p.rect(0, 0, pageWidth, pageHeight, &p.theme.bg, nil, 0)

	p.colorFill(pdfRGB{0.08, 0.18, 0.30})
	p.cmd(circlePath(40, pageHeight-40, 170) + "f")
	p.colorFill(pdfRGB{0.12, 0.10, 0.24})
	p.cmd(circlePath(pageWidth-60, 120, 200) + "f")

	p.colorStroke(p.theme.border)
	p.cmd("1.25 w")
	p.cmd(circlePath(pageWidth-78, pageHeight-66, 24) + "S")
	p.cmd(circlePath(pageWidth-78, pageHeight-66, 40) + "S")

	dot := pdfRGB{0.82, 0.92, 1.0}
	for i := 0; i < 24; i++ {
		x := float64(20 + (i*23)%(pageWidth-40))
		y := float64(90 + (i*67)%(pageHeight-140))
		size := 1.2
		if i%3 == 0 {
			size = 1.8
		}
		p.rect(x, y, size, size, &dot, nil, 0)
	}
}

// beginPage starts a content stream with the decor and header panel.
func (p *styledPDF) beginPage(name, subtitle string, firstPage bool) {
	p.pageNo++
	p.cur.Reset()
	p.drawDecor()

	headerH := 56.0
	nameSize := 18.0
	if firstPage {
		headerH = 86.0
		nameSize = 24.0
	}
	headerY := pageHeight - 36 - headerH
	p.rect(pageMarginX, headerY, contentWidth, headerH, &p.theme.panel, &p.theme.border, 1.1)
	p.text(pageMarginX+16, headerY+headerH-32, name, nameSize, "F2", &p.theme.accent)
	p.text(pageMarginX+16, headerY+headerH-52, subtitle, 11, "F1", &p.theme.text)
	if !firstPage {
		p.text(pageWidth-102, headerY+12, fmt.Sprintf("Page %d", p.pageNo), 9.5, "F1", &p.theme.muted)
	}
}

func (p *styledPDF) finishPage() {
	p.pages = append(p.pages, p.cur.String())
	p.cur.Reset()
}

// bytes assembles the document: catalog, page tree, fonts, one content
// stream per page, xref table, and trailer.
func (p *styledPDF) bytes() []byte {
	objects := map[int][]byte{
		1: []byte("<< /Type /Catalog /Pages 2 0 R >>"),
		3: []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"),
		4: []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>"),
	}

	var pageIDs []int
	nextID := 5
	for _, stream := range p.pages {
		pageID := nextID
		contentID := nextID + 1
		nextID += 2
		pageIDs = append(pageIDs, pageID)

		streamBytes := []byte(stream)
		var content []byte
		content = append(content, fmt.Sprintf("<< /Length %d >>\nstream\n", len(streamBytes))...)
		content = append(content, streamBytes...)
		content = append(content, "endstream"...)
		objects[contentID] = content

		objects[pageID] = []byte(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] "+
				"/Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
			int(pageWidth), int(pageHeight), contentID))
	}

	kids := make([]string, len(pageIDs))
	for i, id := range pageIDs {
		kids[i] = fmt.Sprintf("%d 0 R", id)
	}
	objects[2] = []byte(fmt.Sprintf("<< /Type /Pages /Count %d /Kids [%s] >>",
		len(pageIDs), strings.Join(kids, " ")))

	ordered := make([]int, 0, len(objects))
	for id := range objects {
		ordered = append(ordered, id)
	}
	sort.Ints(ordered)

	var out []byte
	out = append(out, "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"...)
	offsets := map[int]int{}
	for _, id := range ordered {
		offsets[id] = len(out)
		out = append(out, fmt.Sprintf("%d 0 obj\n", id)...)
		out = append(out, objects[id]...)
		out = append(out, "\nendobj\n"...)
	}

	xrefPos := len(out)
	maxID := ordered[len(ordered)-1]
	out = append(out, fmt.Sprintf("xref\n0 %d\n", maxID+1)...)
	out = append(out, "0000000000 65535 f \n"...)
	for i := 1; i <= maxID; i++ {
		out = append(out, fmt.Sprintf("%010d 00000 n \n", offsets[i])...)
	}
	out = append(out, fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		maxID+1, xrefPos)...)
	return out
}

// cvDocument is the parsed source text: first two non-empty lines are the
// name and subtitle, an optional contact line follows (recognized by an "@"
// or "|"), metric lines start with "= value | label", and the rest is body.
type cvDocument struct {
	name     string
	subtitle string
	contact  string
	metrics  [][2]string
	body     []string
}

func parseCVText(text string) cvDocument {
	doc := cvDocument{name: "Curriculum Vitae"}
	lines := strings.Split(text, "\n")

	seen := 0
	var rest []string
	for _, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		if trimmed != "" && seen < 2 {
			seen++
			if seen == 1 {
				doc.name = trimmed
			} else {
				doc.subtitle = trimmed
			}
			continue
		}
		rest = append(rest, strings.TrimRight(ln, " \t"))
	}

	for _, ln := range rest {
		trimmed := strings.TrimSpace(ln)
		if doc.contact == "" && len(doc.body) == 0 && len(doc.metrics) == 0 &&
			trimmed != "" && !strings.HasPrefix(trimmed, "= ") &&
			(strings.Contains(trimmed, "@") || strings.Contains(trimmed, "|")) {
			doc.contact = trimmed
			continue
		}
		if value, label, ok := strings.Cut(strings.TrimPrefix(trimmed, "= "), "|"); ok &&
			strings.HasPrefix(trimmed, "= ") && len(doc.metrics) < 4 {
			doc.metrics = append(doc.metrics, [2]string{
				strings.TrimSpace(value), strings.TrimSpace(label)})
			continue
		}
		doc.body = append(doc.body, ln)
	}
	return doc
}

// sectionHeadings are the body lines set as uppercase accent headings.
var sectionHeadings = map[string]bool{
	"Contact":                 true,
	"Languages":               true,
	"Professional Summary":    true,
	"Current Focus":           true,
	"Core Strengths":          true,
	"Tools and Platforms":     true,
	"Atlassian Ecosystem":     true,
	"Delivery and Operations": true,
	"Process and Governance":  true,
	"Experience":              true,
	"Education":               true,
	"Certifications":          true,
	"Interests":               true,
}

// buildCVPDF reads the source text and produces the styled document plus its
// page count.
func buildCVPDF(srcPath string) ([]byte, int, error) {
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, 0, err
	}
	doc := parseCVText(string(raw))

	pdf := newStyledPDF()
	pdf.beginPage(doc.name, doc.subtitle, true)

	if doc.contact != "" {
		pdf.text(pageMarginX+16, pageHeight-118, doc.contact, 9.2, "F1", &pdf.theme.muted)
	}

	containerY := pageHeight - 216
	if len(doc.metrics) > 0 {
		pdf.rect(pageMarginX, containerY, contentWidth, 88, &pdf.theme.panelAlt, &pdf.theme.border, 1.0)
		gap := 8.0
		cardW := (contentWidth - gap*5) / 4
		cardFill := pdfRGB{0.08, 0.14, 0.30}
		for idx, metric := range doc.metrics {
			x := pageMarginX + gap + float64(idx)*(cardW+gap)
			y := containerY + 12
			pdf.rect(x, y, cardW, 64, &cardFill, &pdf.theme.border, 0.8)
			valueSize := 16.0
			if idx == 3 {
				valueSize = 13.5
			}
			pdf.text(x+8, y+38, metric[0], valueSize, "F2", &pdf.theme.accent)
			wrapped := wrapText(metric[1], cardW-14, 8.8, false)
			textY := y + 18
			for i, line := range wrapped {
				if i >= 2 {
					break
				}
				pdf.text(x+8, textY, line, 8.8, "F1", &pdf.theme.muted)
				textY -= 10
			}
		}
	}

	xText := pageMarginX + 12.0
	y := containerY - 18
	if len(doc.metrics) == 0 {
		y = pageHeight - 150
	}
	const bottomLimit = 56.0

	newPage := func() float64 {
		pdf.finishPage()
		pdf.beginPage(doc.name, doc.subtitle, false)
		return pageHeight - 112
	}

	for _, raw := range doc.body {
		line := strings.TrimSpace(raw)
		if line == "" {
			y -= 7
			if y < bottomLimit {
				y = newPage()
			}
			continue
		}

		if sectionHeadings[line] {
			y -= 6
			if y < bottomLimit+16 {
				y = newPage()
			}
			pdf.text(xText, y, strings.ToUpper(line), 11, "F2", &pdf.theme.accent)
			y -= 14
			continue
		}

		if strings.HasPrefix(line, "- ") {
			item := strings.TrimSpace(line[2:])
			for i, part := range wrapText(item, contentWidth-38, 9.6, false) {
				if y < bottomLimit+10 {
					y = newPage()
				}
				prefix := "- "
				if i > 0 {
					prefix = "  "
				}
				pdf.text(xText+8, y, prefix+part, 9.6, "F1", &pdf.theme.text)
				y -= 12
			}
			continue
		}

		for _, part := range wrapText(line, contentWidth-24, 9.8, false) {
			if y < bottomLimit+10 {
				y = newPage()
			}
			pdf.text(xText, y, part, 9.8, "F1", &pdf.theme.text)
			y -= 12
		}
	}

	pdf.finishPage()
	return pdf.bytes(), len(pdf.pages), nil
}
