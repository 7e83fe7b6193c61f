package protocol

import (
	"strconv"
	"time"
)

// Duration marshals as integer milliseconds, the unit engine.io uses
// for the handshake timing fields. The wire value is unsigned, a
// signed or fractional one fails the decode.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	i, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return err
	}
	*d = Duration(time.Duration(i) * time.Millisecond)
	return nil
}

func (d Duration) MarshalJSON() (b []byte, err error) {
	c := strconv.Itoa(int(time.Duration(d) / time.Millisecond))
	return []byte(c), nil
}
