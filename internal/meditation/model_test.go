package meditation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewCollectionRejectsDuplicateDays(t *testing.T) {
	_, err := NewCollection([]Entry{{Day: 1}, {Day: 2}, {Day: 1}})
	require.ErrorIs(t, err, ErrDuplicateDay)
}

func TestCollectionLookup(t *testing.T) {
	c, err := NewCollection([]Entry{{Day: 10, Title: "x"}, {Day: 4, Title: "y"}})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())

	i, ok := c.IndexOfDay(4)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = c.IndexOfDay(1)
	assert.False(t, ok)

	e, ok := c.At(0)
	require.True(t, ok)
	assert.Equal(t, "x", e.Title)

	_, ok = c.At(-1)
	assert.False(t, ok)
	_, ok = c.At(2)
	assert.False(t, ok)
}

func TestCollectionIsReadOnly(t *testing.T) {
	src := []Entry{{Day: 1, Title: "original"}}
	c, err := NewCollection(src)
	require.NoError(t, err)

	src[0].Title = "changed"
	out := c.Entries()
	out[0].Title = "changed again"

	e, _ := c.At(0)
	assert.Equal(t, "original", e.Title)
}

func TestEmptyCollection(t *testing.T) {
	c, err := NewCollection(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, BuildList(c))
}

func TestDateDecoding(t *testing.T) {
	var fromJSON struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-01-05"}`), &fromJSON))
	assert.Equal(t, time.January, fromJSON.Date.Month())
	assert.Equal(t, 5, fromJSON.Date.Day())

	var fromYAML struct {
		Date Date `yaml:"date"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("date: 2026-02-14\n"), &fromYAML))
	assert.Equal(t, time.February, fromYAML.Date.Month())
	assert.Equal(t, 14, fromYAML.Date.Day())

	b, err := json.Marshal(fromYAML.Date)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-02-14"`, string(b))

	_, err = ParseDate("next tuesday")
	assert.Error(t, err)
}
