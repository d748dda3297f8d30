// Package timex parses the date formats mobile clients actually send.
package timex

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamps above this are treated as milliseconds rather than seconds.
// The cutoff corresponds to 2286-11-20 in seconds, so any realistic
// millisecond value clears it.
const millisCutoff = 1e10

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Parse accepts RFC 3339, naive datetime variants, a bare date, and epoch
// seconds or milliseconds as a decimal string. The result is always UTC.
func Parse(s string) (time.Time, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > millisCutoff || n < -millisCutoff {
			return time.UnixMilli(n).UTC(), nil
		}

		return time.Unix(n, 0).UTC(), nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %q", s)
}

// Time is a time.Time that unmarshals from any format Parse accepts.
// An empty string or JSON null leaves it zero.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}
