package inspect

import (
	"time"

	"github.com/danmuck/telestamp/internal/protocol/cp56"
	"github.com/danmuck/telestamp/internal/protocol/hexbytes"
)

// Fields mirrors the raw wire fields of one timestamp.
type Fields struct {
	Year         uint8  `json:"year"`
	Month        uint8  `json:"month"`
	Day          uint8  `json:"day"`
	Weekday      uint8  `json:"weekday"`
	Hour         uint8  `json:"hour"`
	Minute       uint8  `json:"minute"`
	Milliseconds uint16 `json:"milliseconds"`
	Summer       bool   `json:"summer"`
}

// View is the JSON shape returned for every timestamp.
type View struct {
	Valid   bool   `json:"valid"`
	Text    string `json:"text"`
	Hex     string `json:"hex"`
	EpochMS uint64 `json:"epoch_ms"`
	Wall    string `json:"wall,omitempty"`
	Fields  Fields `json:"fields"`
	Error   string `json:"error,omitempty"`
}

func newView(t cp56.Time, loc *time.Location) View {
	enc := cp56.Encode(t)
	v := View{
		Valid:   t.Valid(),
		Text:    t.String(),
		Hex:     hexbytes.Dump(enc[:]),
		EpochMS: t.Millis(),
		Fields: Fields{
			Year:         t.Year(),
			Month:        t.Month(),
			Day:          t.Day(),
			Weekday:      t.Weekday(),
			Hour:         t.Hour(),
			Minute:       t.Minute(),
			Milliseconds: t.Milliseconds(),
			Summer:       t.Summer(),
		},
	}
	if wall := t.ToTime(loc); !wall.IsZero() {
		v.Wall = wall.Format(time.RFC3339Nano)
	}
	return v
}

func (f Fields) cp56Time() cp56.Time {
	return cp56.New(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Milliseconds).
		WithWeekday(f.Weekday).
		WithSummer(f.Summer)
}

type decodeRequest struct {
	Hex    string `json:"hex"`
	Offset int    `json:"offset"`
}

type parseRequest struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

type diffRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type diffResponse struct {
	DeltaMS int64 `json:"delta_ms"`
	A       View  `json:"a"`
	B       View  `json:"b"`
}
