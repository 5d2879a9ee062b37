package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundnest/soundnest/internal/repository"
)

func TestCursorRoundTrip(t *testing.T) {
	now := time.Now()

	cursor := repository.EncodeCursor(now)
	decoded, err := repository.DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, now.Equal(decoded))
}

func TestDecodeCursorGarbage(t *testing.T) {
	_, err := repository.DecodeCursor("not-base64!!")
	assert.Error(t, err)

	_, err = repository.DecodeCursor("bm90LWEtdGltZXN0YW1w")
	assert.Error(t, err)
}

func TestPageVerify(t *testing.T) {
	num := int64(0)
	repository.PageVerify(&num)
	assert.Equal(t, int64(10), num)

	num = 200
	repository.PageVerify(&num)
	assert.Equal(t, int64(50), num)

	num = 25
	repository.PageVerify(&num)
	assert.Equal(t, int64(25), num)
}
