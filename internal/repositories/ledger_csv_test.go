package repositories

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voyago/internal/domain"
	"voyago/internal/domain/models"
)

func sampleBooking(id string) models.Booking {
	return models.Booking{
		ID:          id,
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
	}
}

func TestCSVLedgerAppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	ledger := NewCSVLedger(path)

	if _, err := ledger.Append(sampleBooking("BKG10001")); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	if _, err := ledger.Append(sampleBooking("BKG10002")); err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ledger file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 {
		t.Fatalf("ledger has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Booking ID,From,To,Date of Journey,Bus Name") {
		t.Fatalf("header row wrong: %q", lines[0])
	}
	if strings.Count(string(raw), "Booking ID") != 1 {
		t.Fatalf("header written more than once")
	}
	if !strings.Contains(lines[1], `"1A,2B"`) {
		t.Fatalf("seat list not stored as comma-joined string: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "1200") {
		t.Fatalf("total fare missing from row: %q", lines[1])
	}
}

func TestCSVLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	ledger := NewCSVLedger(path)

	want := sampleBooking("BKG10003")
	if _, err := ledger.Append(want); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, err := ledger.Get("BKG10003")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Origin != want.Origin || got.Destination != want.Destination || got.Date != want.Date {
		t.Fatalf("round trip criteria mismatch: %+v", got)
	}
	if len(got.Seats) != 2 || got.Seats[0] != "1A" || got.Seats[1] != "2B" {
		t.Fatalf("round trip seats mismatch: %v", got.Seats)
	}
	if got.Passenger != want.Passenger {
		t.Fatalf("round trip passenger mismatch: %+v", got.Passenger)
	}
	if got.TotalFare != 1200 {
		t.Fatalf("round trip fare = %d, want 1200", got.TotalFare)
	}

	count, err := ledger.Count()
	if err != nil || count != 1 {
		t.Fatalf("count = %d (%v), want 1", count, err)
	}
}

func TestCSVLedgerGetUnknownID(t *testing.T) {
	ledger := NewCSVLedger(filepath.Join(t.TempDir(), "bookings.csv"))
	if _, err := ledger.Get("BKG99999"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCSVLedgerFailedAppendLeavesStoreUnchanged(t *testing.T) {
	// A directory path cannot be opened for append.
	ledger := NewCSVLedger(t.TempDir())

	_, err := ledger.Append(sampleBooking("BKG10004"))
	if !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestCSVLedgerListEmptyWhenFileMissing(t *testing.T) {
	ledger := NewCSVLedger(filepath.Join(t.TempDir(), "bookings.csv"))

	bookings, err := ledger.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected empty ledger, got %d rows", len(bookings))
	}
}
