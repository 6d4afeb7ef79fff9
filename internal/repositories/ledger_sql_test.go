package repositories

import (
	"errors"
	"testing"

	"voyago/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLLedgerAppend(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ledger := NewSQLLedger(db)
	b := sampleBooking("BKG20001")

	mock.ExpectExec("INSERT INTO booking_ledger").
		WithArgs(b.ID, b.Origin, b.Destination, b.Date, b.Operator, "1A,2B",
			b.Passenger.Name, b.Passenger.Age, b.Passenger.Gender, b.Passenger.Phone,
			b.Passenger.Email, b.TotalFare).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := ledger.Append(b)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if id != "BKG20001" {
		t.Fatalf("append returned id %q", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLLedgerAppendFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO booking_ledger").
		WillReturnError(errors.New("connection lost"))

	ledger := NewSQLLedger(db)
	if _, err := ledger.Append(sampleBooking("BKG20002")); !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestSQLLedgerEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS booking_ledger").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ledger := NewSQLLedger(db)
	if err := ledger.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
}

func TestSQLLedgerGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"booking_id", "origin", "destination", "journey_date", "operator", "seat_numbers",
		"passenger_name", "age", "gender", "phone", "email", "total_fare",
	}
	mock.ExpectQuery("SELECT (.+) FROM booking_ledger WHERE booking_id").
		WithArgs("BKG20003").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"BKG20003", "Chennai", "Bengaluru", "15-08-2025", "Voyago Travels", "1A,2B",
			"Asha", 30, "Female", "9876543210", "a@b.com", 1200,
		))

	ledger := NewSQLLedger(db)
	got, err := ledger.Get("BKG20003")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != "BKG20003" || got.TotalFare != 1200 {
		t.Fatalf("unexpected booking: %+v", got)
	}
	if len(got.Seats) != 2 || got.Seats[0] != "1A" {
		t.Fatalf("seats not split: %v", got.Seats)
	}
}

func TestSQLLedgerGetUnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"booking_id", "origin", "destination", "journey_date", "operator", "seat_numbers",
		"passenger_name", "age", "gender", "phone", "email", "total_fare",
	}
	mock.ExpectQuery("SELECT (.+) FROM booking_ledger WHERE booking_id").
		WithArgs("BKG00000").
		WillReturnRows(sqlmock.NewRows(cols))

	ledger := NewSQLLedger(db)
	if _, err := ledger.Get("BKG00000"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSQLLedgerCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	ledger := NewSQLLedger(db)
	n, err := ledger.Count()
	if err != nil || n != 3 {
		t.Fatalf("count = %d (%v), want 3", n, err)
	}
}
