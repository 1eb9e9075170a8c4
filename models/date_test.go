package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMarshalsAsDDMMYYYY(t *testing.T) {
	d := NewDate(1974, time.April, 5)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"05-04-1974"`, string(b))
}

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"03-11-1976"`), &d))
	assert.Equal(t, 1976, d.Year())
	assert.Equal(t, time.November, d.Month())
	assert.Equal(t, 3, d.Day())
}

func TestDateUnmarshalRejectsOtherFormats(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"1976-11-03"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1977, time.January, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, d.Day())

	require.NoError(t, d.Scan("1978-10-03"))
	assert.Equal(t, 1978, d.Year())

	assert.Error(t, d.Scan(42))
}
