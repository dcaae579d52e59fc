package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"dailytodo/internal/model"
)

// Sheet is one printable to-do list.
type Sheet struct {
	Username string
	Date     time.Time
	Tasks    []model.Task
}

var columns = []struct {
	title string
	width float64
}{
	{"Priority A/B/C?", 86.4},
	{"Task", 237.6},
	{"Time Needed", 72},
	{"Done?", 57.6},
}

const (
	margin     = 72.0
	lineHeight = 16.0
)

// PDFRenderer lays a Sheet out as a letter-size table.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(w io.Writer, sheet Sheet) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 28, "THE TO-DO LIST", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, lineHeight, fmt.Sprintf("THINGS TO DO TODAY: DAY %s DATE %s",
		sheet.Date.Format("Monday"), sheet.Date.Format("02 January 2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, tr("USER: "+sheet.Username), "", 1, "L", false, 0, "")
	pdf.Ln(24)

	header := func() {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(128, 128, 128)
		pdf.SetTextColor(245, 245, 245)
		for _, col := range columns {
			pdf.CellFormat(col.width, lineHeight+12, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetFillColor(245, 245, 220)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, task := range sheet.Tasks {
		title := tr(task.Title)
		lines := pdf.SplitText(title, columns[1].width-4)
		if len(lines) == 0 {
			lines = []string{""}
		}
		rowHeight := lineHeight * float64(len(lines))

		if pdf.GetY()+rowHeight > pageHeight-margin {
			pdf.AddPage()
			header()
		}

		x, y := pdf.GetXY()
		pdf.CellFormat(columns[0].width, rowHeight, priorityText(task), "1", 0, "C", true, 0, "")
		pdf.MultiCell(columns[1].width, lineHeight, title, "1", "C", true)
		pdf.SetXY(x+columns[0].width+columns[1].width, y)
		pdf.CellFormat(columns[2].width, rowHeight, tr(scheduledText(task)), "1", 0, "C", true, 0, "")
		pdf.CellFormat(columns[3].width, rowHeight, doneText(task), "1", 0, "C", true, 0, "")
		pdf.SetXY(x, y+rowHeight)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func priorityText(t model.Task) string {
	if t.Priority == nil {
		return ""
	}
	return string(*t.Priority)
}

func scheduledText(t model.Task) string {
	if t.ScheduledTime == nil {
		return ""
	}
	return *t.ScheduledTime
}

func doneText(t model.Task) string {
	if t.Done {
		return "Yes"
	}
	return "No"
}
