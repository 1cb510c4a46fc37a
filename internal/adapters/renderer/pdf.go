package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
)

// pdfDescriptionLimit caps asset descriptions on booklet pages. The
// HTML gallery keeps the full text; the fixed page layout can't.
const pdfDescriptionLimit = 100

// Booklet renders the portfolio as a single-pass A4 PDF: a title page
// followed by one page per asset.
type Booklet struct{}

// NewBooklet creates a PDF booklet renderer
func NewBooklet() *Booklet {
	return &Booklet{}
}

var _ ports.BookletRenderer = (*Booklet)(nil)

// Available reports whether the PDF backend can be used. Callers must
// check this before Render.
func (b *Booklet) Available() bool {
	return true
}

// Render writes the booklet to outPath. Assets whose source images
// can't be read are skipped, never fatal.
func (b *Booklet) Render(ctx context.Context, snap domain.Snapshot, outPath string) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	width, height := pdf.GetPageSize()

	b.titlePage(pdf, width, height, snap.Metadata)

	for _, asset := range snap.Assets {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.assetPage(pdf, width, height, asset)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("failed to write booklet: %w", err)
	}
	return nil
}

func (b *Booklet) titlePage(pdf *fpdf.Fpdf, width, height float64, meta domain.Metadata) {
	pdf.AddPage()
	mid := height / 2

	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetTextColor(0, 0, 0)
	centeredText(pdf, width, mid-60, strings.ToUpper(meta.ArtistName))

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(128, 128, 128)
	centeredText(pdf, width, mid-30, meta.Role)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	centeredText(pdf, width, mid+20, meta.Email)
	if meta.SocialLink != "" {
		centeredText(pdf, width, mid+40, meta.SocialLink)
	}

	// Bio lines are drawn verbatim, one per line, no wrapping
	pdf.SetFont("Helvetica", "", 11)
	y := mid + 100
	for _, line := range strings.Split(meta.Bio, "\n") {
		pdf.Text(100, y, line)
		y += 14
	}
}

func (b *Booklet) assetPage(pdf *fpdf.Fpdf, width, height float64, asset *domain.Asset) {
	name, w, h, ok := b.embedImage(pdf, asset)
	if !ok {
		return
	}

	printW := width - 100
	printH := height * 0.55
	aspect := float64(h) / float64(w)
	drawW := printW
	drawH := printW * aspect
	if drawH > printH {
		drawH = printH
		drawW = drawH / aspect
	}

	pdf.AddPage()
	x := (width - drawW) / 2
	pdf.ImageOptions(name, x, 60, drawW, drawH, false, fpdf.ImageOptions{ImageType: "JPG"}, 0, "")

	textY := 60 + drawH + 40
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(50, textY, asset.Title)
	textY += 25

	metaTxt := asset.Medium
	if asset.Year != "" {
		metaTxt += " | " + asset.Year
	}
	pdf.SetFont("Helvetica", "I", 12)
	pdf.SetTextColor(102, 102, 102)
	pdf.Text(50, textY, metaTxt)
	textY += 30

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(50, textY, truncateDescription(asset.Description))
}

// truncateDescription caps the caption at pdfDescriptionLimit runes.
// Counting bytes would cut multibyte text short, or mid-rune.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= pdfDescriptionLimit {
		return s
	}
	return string(runes[:pdfDescriptionLimit]) + "..."
}

// embedImage decodes the asset source, flattens it to an RGB JPEG and
// registers it with the document. Returns ok=false for unreadable
// sources so the caller can skip the page.
func (b *Booklet) embedImage(pdf *fpdf.Fpdf, asset *domain.Asset) (name string, w, h int, ok bool) {
	img, err := imaging.Open(asset.SourcePath, imaging.AutoOrientation(true))
	if err != nil {
		return "", 0, 0, false
	}
	img = flattenForPrint(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return "", 0, 0, false
	}

	name = "asset-" + asset.ID
	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "JPG"}, &buf)
	if pdf.Err() {
		return "", 0, 0, false
	}
	return name, img.Bounds().Dx(), img.Bounds().Dy(), true
}

// flattenForPrint composites transparency onto white ahead of the
// JPEG encode
func flattenForPrint(img image.Image) image.Image {
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return imaging.OverlayCenter(bg, img, 1.0)
}

func centeredText(pdf *fpdf.Fpdf, width, y float64, s string) {
	if s == "" {
		return
	}
	x := (width - pdf.GetStringWidth(s)) / 2
	pdf.Text(x, y, s)
}
