package compiler

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/najia/pkg/domain"
)

var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseDate reads "2006-01-02" or "2006-01-02 15:04" (RFC 3339 also works).
// Values without an offset are taken in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
}

// ParseRequest decodes one batch line: the cast, optionally followed by
// "|" and a date, e.g. "221242|2024-03-15 10:00".
func ParseRequest(line string) (domain.Request, error) {
	line, err := SanitizeInput(line)
	if err != nil {
		return domain.Request{}, err
	}
	cast, date, _ := strings.Cut(line, "|")
	values, err := domain.ParseLines(cast)
	if err != nil {
		return domain.Request{}, err
	}
	return domain.Request{
		Lines: values,
		Date:  strings.TrimSpace(date),
	}, nil
}
