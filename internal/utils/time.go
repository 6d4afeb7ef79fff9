package utils

import (
	"strings"
	"time"
)

const layoutJourneyDate = "02-01-2006"

// ParseJourneyDate parses the DD-MM-YYYY journey date used across the
// search form and the ledger.
func ParseJourneyDate(s string) (time.Time, error) {
	return time.Parse(layoutJourneyDate, strings.TrimSpace(s))
}
