package logger_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"
)

func TestNewHTTPLogger_CreatesLogFileAndWrites(t *testing.T) {
	opts := logger.Options{Dir: t.TempDir()}

	l := logger.NewHTTPLogger(opts)
	l.Info("test message")
	// закрываем буферы zap
	_ = l.Sync()

	b, err := os.ReadFile(opts.Path())
	require.NoError(t, err)
	s := string(b)

	require.NotEmpty(t, s)
	require.Regexp(t, `\btest message\b`, s)

	// пример: 11:57:16 16.01.2026
	require.Regexp(t, `\b\d{2}:\d{2}:\d{2} \d{2}\.\d{2}\.\d{4}\b`, s)
}

func TestHTTPLogger_LogRequest_WritesStructuredFields(t *testing.T) {
	opts := logger.Options{Dir: t.TempDir(), Format: "json"}

	l := logger.NewHTTPLogger(opts)
	l.LogRequest("POST", "/auth/signin", "req-1", 403, 20, 158.5463)
	_ = l.Sync()

	b, err := os.ReadFile(opts.Path())
	require.NoError(t, err)
	s := string(b)

	mustContain := []string{
		"HTTP request",
		`"method":"POST"`,
		`"uri":"/auth/signin"`,
		`"request_id":"req-1"`,
		`"status":403`,
		`"response_size":20`,
		"duration_ms",
	}
	for _, sub := range mustContain {
		require.Regexp(t, regexp.QuoteMeta(sub), s)
	}
}

func TestHTTPLogger_LevelFiltersDebug(t *testing.T) {
	opts := logger.Options{Dir: t.TempDir(), Level: "warn"}

	l := logger.NewHTTPLogger(opts)
	l.Info("hidden info")
	l.Warn("visible warn")
	_ = l.Sync()

	b, err := os.ReadFile(opts.Path())
	require.NoError(t, err)
	require.NotContains(t, string(b), "hidden info")
	require.Contains(t, string(b), "visible warn")
}
