// Package drawio reads draw histories from the file formats the legacy
// tooling produced.
package drawio

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSONL  Format = "jsonl"
	FormatSQLite Format = "sqlite"
)

const dateLayout = "2006-01-02"

var Formats = []Format{FormatCSV, FormatJSONL, FormatSQLite}

var ErrUnknownFormat = errors.New("unknown draw file format")

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// ReadFile reads every draw stored at path. The draws are not validated.
func ReadFile(ctx context.Context, format Format, path string) ([]drawstats.Draw, error) {
	if format == FormatSQLite {
		return ReadSQLite(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open draw file")
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		return ReadCSV(f)
	case FormatJSONL:
		return ReadJSONL(f)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// parseDate returns nil for an empty value.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
