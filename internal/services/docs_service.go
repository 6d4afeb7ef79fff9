package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"voyago/internal/domain/models"
	"voyago/internal/repositories"
	"voyago/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders PDF documents for confirmed bookings read back from
// the ledger. Pure read side; it never touches the funnel.
type DocsService struct {
	Ledger    repositories.BookingLedger
	RequestID string
}

func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	b, err := s.Ledger.Get(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%s", bookingID))
	return buildETicketPDF(b)
}

func (s DocsService) GenerateInvoice(bookingID string) ([]byte, string, error) {
	b, err := s.Ledger.Get(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%s", bookingID))
	return buildInvoicePDF(b)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : %s", b.ID),
		fmt.Sprintf("Passenger      : %s", safe(b.Passenger.Name, "-")),
		fmt.Sprintf("Contact        : %s", safe(b.Passenger.Phone, "-")),
		fmt.Sprintf("Email          : %s", safe(b.Passenger.Email, "-")),
		fmt.Sprintf("Operator       : %s", safe(b.Operator, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(b.Origin, "-"), safe(b.Destination, "-")),
		fmt.Sprintf("Date of Journey: %s", safe(b.Date, "-")),
		fmt.Sprintf("Seats          : %s", safe(utils.JoinSeatList(b.Seats), "-")),
		fmt.Sprintf("Total Fare     : %s", utils.FormatINR(b.TotalFare)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket at boarding. Thank you for choosing Voyago!", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", b.ID, safeFilenamePart(b.Passenger.Name))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : INV-"+b.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name    : %s", safe(b.Passenger.Name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Contact : %s", safe(b.Passenger.Phone, "-")))
	pdf.Ln(10)

	seatCount := len(b.Seats)
	desc := fmt.Sprintf("Bus ticket %s -> %s (%s), %s, seats %s",
		safe(b.Origin, "-"), safe(b.Destination, "-"), safe(b.Date, "-"),
		safe(b.Operator, "-"), safe(utils.JoinSeatList(b.Seats), "-"),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	if seatCount > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Fare per seat: %s", utils.FormatINR(b.TotalFare/int64(seatCount))))
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatINR(b.TotalFare))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("This invoice covers %d seat(s) on booking %s.", seatCount, b.ID), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s_%s.pdf", b.ID, safeFilenamePart(b.Passenger.Name))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
