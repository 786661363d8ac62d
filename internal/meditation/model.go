package meditation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in the local calendar, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t.In(time.Local)}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Verse struct {
	Verse int    `json:"verse" yaml:"verse"`
	Text  string `json:"text" yaml:"text"`
}

type Exposition struct {
	Title     string   `json:"title" yaml:"title"`
	Content   string   `json:"content" yaml:"content"`
	Questions []string `json:"questions,omitempty" yaml:"questions,omitempty"`
}

type Essay struct {
	Content string `json:"content" yaml:"content"`
}

type OneVerse struct {
	Verse   string `json:"verse" yaml:"verse"`
	Content string `json:"content" yaml:"content"`
}

// Entry is one daily meditation. Rich-text fields (Summary, Exposition
// content, Prayer, Essay, OneVerse content) may carry markup.
type Entry struct {
	Day                  int          `json:"day" yaml:"day"`
	Date                 Date         `json:"date" yaml:"date"`
	Title                string       `json:"title" yaml:"title"`
	Scripture            string       `json:"scripture" yaml:"scripture"`
	ScriptureText        []Verse      `json:"scriptureText" yaml:"scriptureText"`
	BibleReadingVideoURL string       `json:"bibleReadingVideoUrl,omitempty" yaml:"bibleReadingVideoUrl,omitempty"`
	Summary              string       `json:"summary" yaml:"summary"`
	Expositions          []Exposition `json:"expositions" yaml:"expositions"`
	Prayer               string       `json:"prayer" yaml:"prayer"`
	Essay                Essay        `json:"essay" yaml:"essay"`
	OneVerse             OneVerse     `json:"oneVerse" yaml:"oneVerse"`
}

// Collection is the ordered, read-only set of entries served by the viewer.
type Collection struct {
	entries []Entry
	byDay   map[int]int
}

// NewCollection copies entries and indexes them by day. Day values must be
// unique.
func NewCollection(entries []Entry) (*Collection, error) {
	c := &Collection{
		entries: make([]Entry, len(entries)),
		byDay:   make(map[int]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		if prev, ok := c.byDay[e.Day]; ok {
			return nil, fmt.Errorf("%w: day %d at positions %d and %d", ErrDuplicateDay, e.Day, prev, i)
		}
		c.byDay[e.Day] = i
	}
	return c, nil
}

func (c *Collection) Len() int {
	return len(c.entries)
}

// At returns the entry at position index.
func (c *Collection) At(index int) (Entry, bool) {
	if index < 0 || index >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[index], true
}

// IndexOfDay resolves a URL day value to a position.
func (c *Collection) IndexOfDay(day int) (int, bool) {
	i, ok := c.byDay[day]
	return i, ok
}

// Entries returns a copy of the entries in display order.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
