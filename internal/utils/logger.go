package utils

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log is the shared structured logger. Handlers and services log through
// LogEvent so every line carries module/action/request_id.
var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// LogEvent prints a standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Log.Info().
		Str("module", strings.ToUpper(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg(message)
}
