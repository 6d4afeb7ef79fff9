package models

import "fmt"

// Seat geometry is fixed for every bus: 8 rows of 4 seats labelled A..D,
// with the aisle between B and C. Codes are row number + column letter.
const (
	SeatRows   = 8
	TotalSeats = 32
)

var SeatColumns = []string{"A", "B", "C", "D"}

// AllSeatCodes returns the 32 valid codes in row-major order ("1A".."8D").
func AllSeatCodes() []string {
	codes := make([]string, 0, TotalSeats)
	for r := 1; r <= SeatRows; r++ {
		for _, col := range SeatColumns {
			codes = append(codes, fmt.Sprintf("%d%s", r, col))
		}
	}
	return codes
}

var validSeatCodes = func() map[string]bool {
	set := make(map[string]bool, TotalSeats)
	for _, code := range AllSeatCodes() {
		set[code] = true
	}
	return set
}()

func IsValidSeatCode(code string) bool {
	return validSeatCodes[code]
}
