package argv

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// Built-in converters for Value arguments. Conversion failures surface
// as the cause of an invalid value error carrying the raw token.

// ToString accepts any token unchanged.
func ToString(raw string) (string, error) {
	return raw, nil
}

func ToInt(raw string) (int, error) {
	return strconv.Atoi(raw)
}

func ToInt64(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func ToUint64(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}

func ToFloat64(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

func ToBool(raw string) (bool, error) {
	return strconv.ParseBool(raw)
}

func ToDuration(raw string) (time.Duration, error) {
	return time.ParseDuration(raw)
}

// ToTime parses a timestamp in any of the common layouts recognized by
// dateparse, interpreted in the local time zone.
func ToTime(raw string) (time.Time, error) {
	return dateparse.ParseLocal(raw)
}
