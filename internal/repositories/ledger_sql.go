package repositories

import (
	"database/sql"
	"errors"

	"voyago/internal/domain"
	"voyago/internal/domain/models"
	"voyago/internal/utils"
)

// SQLLedger keeps the same append-only contract as the CSV ledger on a
// MySQL table. One INSERT per booking keeps appends atomic; the table plays
// the role of the header row and is created once.
type SQLLedger struct {
	DB *sql.DB
}

func NewSQLLedger(db *sql.DB) *SQLLedger {
	return &SQLLedger{DB: db}
}

// EnsureSchema creates the ledger table when it does not exist yet.
func (l *SQLLedger) EnsureSchema() error {
	ddl := `
CREATE TABLE IF NOT EXISTS booking_ledger (
	seq BIGINT NOT NULL AUTO_INCREMENT,
	booking_id VARCHAR(16) NOT NULL,
	origin VARCHAR(100) NOT NULL,
	destination VARCHAR(100) NOT NULL,
	journey_date VARCHAR(10) NOT NULL,
	operator VARCHAR(100) NOT NULL,
	seat_numbers VARCHAR(255) NOT NULL,
	passenger_name VARCHAR(255) NOT NULL,
	age INT NOT NULL,
	gender VARCHAR(10) NOT NULL,
	phone VARCHAR(20) NOT NULL,
	email VARCHAR(255) NOT NULL,
	total_fare BIGINT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (seq),
	UNIQUE KEY uniq_booking (booking_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	if _, err := l.DB.Exec(ddl); err != nil {
		return domain.PersistenceError{Op: "ensure ledger schema", Err: err}
	}
	return nil
}

func (l *SQLLedger) Append(b models.Booking) (string, error) {
	_, err := l.DB.Exec(`
		INSERT INTO booking_ledger
			(booking_id, origin, destination, journey_date, operator, seat_numbers,
			 passenger_name, age, gender, phone, email, total_fare)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.Origin, b.Destination, b.Date, b.Operator, utils.JoinSeatList(b.Seats),
		b.Passenger.Name, b.Passenger.Age, b.Passenger.Gender, b.Passenger.Phone,
		b.Passenger.Email, b.TotalFare,
	)
	if err != nil {
		return "", domain.PersistenceError{Op: "append ledger", Err: err}
	}
	return b.ID, nil
}

const sqlLedgerColumns = `booking_id, origin, destination, journey_date, operator, seat_numbers,
	passenger_name, age, gender, phone, email, total_fare`

func (l *SQLLedger) Get(id string) (models.Booking, error) {
	row := l.DB.QueryRow(`SELECT `+sqlLedgerColumns+` FROM booking_ledger WHERE booking_id=? LIMIT 1`, id)
	b, err := scanBooking(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, notFound(id)
	}
	if err != nil {
		return models.Booking{}, domain.PersistenceError{Op: "read ledger", Err: err}
	}
	return b, nil
}

func (l *SQLLedger) List() ([]models.Booking, error) {
	rows, err := l.DB.Query(`SELECT ` + sqlLedgerColumns + ` FROM booking_ledger ORDER BY seq`)
	if err != nil {
		return nil, domain.PersistenceError{Op: "read ledger", Err: err}
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, domain.PersistenceError{Op: "scan ledger", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError{Op: "read ledger", Err: err}
	}
	return out, nil
}

func (l *SQLLedger) Count() (int, error) {
	var n int
	if err := l.DB.QueryRow(`SELECT COUNT(*) FROM booking_ledger`).Scan(&n); err != nil {
		return 0, domain.PersistenceError{Op: "count ledger", Err: err}
	}
	return n, nil
}

func scanBooking(scan func(dest ...any) error) (models.Booking, error) {
	var b models.Booking
	var seats string
	if err := scan(
		&b.ID, &b.Origin, &b.Destination, &b.Date, &b.Operator, &seats,
		&b.Passenger.Name, &b.Passenger.Age, &b.Passenger.Gender,
		&b.Passenger.Phone, &b.Passenger.Email, &b.TotalFare,
	); err != nil {
		return models.Booking{}, err
	}
	b.Seats = utils.SplitSeatList(seats)
	return b, nil
}
