package domain

import (
	"fmt"
	"strings"
	"time"
)

// LocalDateTime marshals timestamps as "2006-01-02T15:04:05" without a zone
// suffix, the wire format the clients send and expect back.
type LocalDateTime struct {
	time.Time
}

const localDateTimeLayout = "2006-01-02T15:04:05"

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(localDateTimeLayout) + `"`), nil
}

func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(localDateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("parse datetime %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d LocalDateTime) String() string {
	return d.Format(localDateTimeLayout)
}
