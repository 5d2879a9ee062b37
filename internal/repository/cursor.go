package repository

import (
	"encoding/base64"
	"time"
)

const (
	timeFormat = time.RFC3339Nano

	defaultPageNum int64 = 10
	maxPageNum     int64 = 50
)

// EncodeCursor encodes a row timestamp into an opaque pagination cursor.
func EncodeCursor(t time.Time) string {
	timeString := t.Format(timeFormat)
	return base64.StdEncoding.EncodeToString([]byte(timeString))
}

// DecodeCursor decodes a cursor produced by EncodeCursor.
func DecodeCursor(encodedTime string) (time.Time, error) {
	byt, err := base64.StdEncoding.DecodeString(encodedTime)
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(timeFormat, string(byt))
}

// PageVerify clamps a page size into the allowed range.
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = defaultPageNum
	}
	if *num > maxPageNum {
		*num = maxPageNum
	}
}
