package services

import (
	"bytes"
	"testing"

	"voyago/internal/domain"
	"voyago/internal/domain/models"
)

func docsLedger() *memLedger {
	return &memLedger{bookings: []models.Booking{{
		ID:          "BKG30001",
		Origin:      "Chennai",
		Destination: "Bengaluru",
		Date:        "15-08-2025",
		Operator:    "Voyago Travels",
		Seats:       []string{"1A", "2B"},
		Passenger: models.PassengerDetails{
			Name: "Asha", Age: 30, Gender: "Female",
			Email: "a@b.com", Phone: "9876543210",
		},
		TotalFare: 1200,
	}}}
}

func TestDocsServiceGenerate(t *testing.T) {
	svc := DocsService{Ledger: docsLedger()}

	pdf, filename, err := svc.GenerateETicket("BKG30001")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("e-ticket is not a PDF")
	}

	invoice, invName, err := svc.GenerateInvoice("BKG30001")
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || invName == "" {
		t.Fatalf("GenerateInvoice returned empty data")
	}
}

func TestDocsServiceUnknownBooking(t *testing.T) {
	svc := DocsService{Ledger: docsLedger()}
	if _, _, err := svc.GenerateETicket("BKG99999"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
