// Package ticket renders booking tickets as PDF documents.
package ticket

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

// Ticket stock: 210x100mm landscape with a detachable stub.
const (
	pageWidth  = 210
	pageHeight = 100
	stubX      = 160
)

// Render produces the PDF for a confirmed booking.
func Render(t entities.Ticket) ([]byte, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	// Main ticket background.
	doc.SetFillColor(255, 255, 255)
	doc.RoundedRect(5, 5, 200, 90, 4, "1234", "F")

	// Left purple accent bar.
	doc.SetFillColor(124, 58, 237)
	doc.RoundedRect(5, 5, 8, 90, 4, "14", "F")
	doc.Rect(9, 5, 4, 90, "F")

	// Stub separator.
	doc.SetDrawColor(200, 200, 200)
	doc.SetDashPattern([]float64{2, 2}, 0)
	doc.Line(stubX, 10, stubX, 90)
	doc.SetDashPattern([]float64{}, 0)

	// Main section.
	brand(doc, 20, 18, 14)

	doc.SetTextColor(31, 41, 55)
	doc.SetFont("Helvetica", "B", 18)
	doc.Text(20, 32, truncate(t.Event.Title, 30))

	field(doc, 20, 45, "DATE", t.Event.Date.Format("Mon, Jan 2, 2006"))
	field(doc, 70, 45, "TIME", t.Event.Date.Format("03:04 PM"))
	field(doc, 110, 45, "LOCATION", truncate(t.Event.Location, 20))
	field(doc, 20, 65, "ATTENDEE", t.Participant.FullName())

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(107, 114, 128)
	doc.Text(20, 77, t.Participant.Email)

	// Stub section.
	brand(doc, 168, 18, 10)
	stubField(doc, 168, 32, "BOOKING REF", bookingRef(t.Event.ID))
	stubField(doc, 168, 52, "TICKET NO", "#"+idSuffix(t.Participant.ID, 4))
	stubField(doc, 168, 72, "ISSUED", t.BookedAt.Format("Jan 2, 2006"))

	doc.SetFont("Helvetica", "", 6)
	doc.SetTextColor(107, 114, 128)
	doc.Text(168, 88, "Valid for one entry")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brand(doc *fpdf.Fpdf, x, y float64, size float64) {
	doc.SetTextColor(124, 58, 237)
	doc.SetFont("Helvetica", "B", size)
	doc.Text(x, y, "EventFlow")
}

func field(doc *fpdf.Fpdf, x, y float64, label, value string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(31, 41, 55)
	doc.Text(x, y, label)
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(107, 114, 128)
	doc.Text(x, y+6, value)
}

func stubField(doc *fpdf.Fpdf, x, y float64, label, value string) {
	doc.SetFont("Helvetica", "B", 8)
	doc.SetTextColor(31, 41, 55)
	doc.Text(x, y, label)
	doc.SetFont("Helvetica", "", 9)
	doc.Text(x, y+7, value)
}

// bookingRef derives the printed reference from the event id.
func bookingRef(eventID string) string {
	return "EF-" + idSuffix(eventID, 6)
}

func idSuffix(id string, n int) string {
	clean := strings.ReplaceAll(id, "-", "")
	if len(clean) > n {
		clean = clean[len(clean)-n:]
	}
	return strings.ToUpper(clean)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
