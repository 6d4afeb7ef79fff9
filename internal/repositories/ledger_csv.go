package repositories

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"sync"

	"voyago/internal/domain"
	"voyago/internal/domain/models"
)

// CSVLedger persists bookings to a row-oriented file, created lazily on the
// first successful append. Appends are serialized and written with a single
// Write on an O_APPEND handle, so a failure never leaves a partial row and
// the header is written exactly once even with concurrent sessions.
type CSVLedger struct {
	Path string
	mu   sync.Mutex
}

func NewCSVLedger(path string) *CSVLedger {
	return &CSVLedger{Path: path}
}

func (l *CSVLedger) Append(b models.Booking) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", domain.PersistenceError{Op: "open ledger", Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", domain.PersistenceError{Op: "stat ledger", Err: err}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if info.Size() == 0 {
		if err := w.Write(LedgerHeader); err != nil {
			return "", domain.PersistenceError{Op: "encode header", Err: err}
		}
	}
	if err := w.Write(bookingRow(b)); err != nil {
		return "", domain.PersistenceError{Op: "encode row", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", domain.PersistenceError{Op: "encode row", Err: err}
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return "", domain.PersistenceError{Op: "append ledger", Err: err}
	}
	return b.ID, nil
}

func (l *CSVLedger) Get(id string) (models.Booking, error) {
	bookings, err := l.List()
	if err != nil {
		return models.Booking{}, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, notFound(id)
}

func (l *CSVLedger) List() ([]models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.PersistenceError{Op: "open ledger", Err: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, domain.PersistenceError{Op: "read ledger", Err: err}
	}

	var out []models.Booking
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		b, err := bookingFromRow(rec)
		if err != nil {
			return nil, domain.PersistenceError{Op: "decode ledger", Err: err}
		}
		out = append(out, b)
	}
	return out, nil
}

func (l *CSVLedger) Count() (int, error) {
	bookings, err := l.List()
	if err != nil {
		return 0, err
	}
	return len(bookings), nil
}
