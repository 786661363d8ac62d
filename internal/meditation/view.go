package meditation

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

const statusCompleted = "완료"

// thumbnailPool is cycled by list position, not chosen at random.
var thumbnailPool = [...]string{
	"1499002238440-d264edd596ec",
	"1470252649378-9c29740c9ae8",
	"1446776811953-b23d57bd21aa",
	"1500964757637-c85e8a162699",
	"1426604966848-d124769883c7",
}

// ThumbnailURL returns the decorative image for the row at index.
func ThumbnailURL(index int) string {
	n := len(thumbnailPool)
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?w=100&h=100&fit=crop", thumbnailPool[((index%n)+n)%n])
}

// FormatDateLabel renders a month/day label, e.g. "1월 5일".
func FormatDateLabel(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d월 %d일", int(d.Month()), d.Day())
}

// DayHref is the URL query that selects an entry.
func DayHref(day int) string {
	return "?day=" + strconv.Itoa(day)
}

// ListRow is one line of the list screen.
type ListRow struct {
	Index        int    `json:"index"`
	Day          int    `json:"day"`
	DateLabel    string `json:"date_label"`
	DayOfMonth   int    `json:"day_of_month"`
	ThumbnailURL string `json:"thumbnail_url"`
	Status       string `json:"status"`
	Title        string `json:"title"`
	Scripture    string `json:"scripture"`
	Href         string `json:"href"`
}

// BuildList produces one row per entry in collection order.
func BuildList(c *Collection) []ListRow {
	rows := make([]ListRow, 0, c.Len())
	for i, e := range c.entries {
		rows = append(rows, ListRow{
			Index:        i,
			Day:          e.Day,
			DateLabel:    FormatDateLabel(e.Date),
			DayOfMonth:   e.Date.Day(),
			ThumbnailURL: ThumbnailURL(i),
			Status:       statusCompleted,
			Title:        e.Title,
			Scripture:    e.Scripture,
			Href:         DayHref(e.Day),
		})
	}
	return rows
}

type SectionKey string

const (
	SectionScripture  SectionKey = "scripture"
	SectionSummary    SectionKey = "summary"
	SectionExposition SectionKey = "exposition"
	SectionPrayer     SectionKey = "prayer"
	SectionEssay      SectionKey = "essay"
	SectionOneVerse   SectionKey = "oneverse"
)

// ParseSectionKeys splits a comma separated list, dropping unknown keys.
func ParseSectionKeys(s string) []SectionKey {
	var keys []SectionKey
	for _, part := range strings.Split(s, ",") {
		switch k := SectionKey(strings.ToLower(strings.TrimSpace(part))); k {
		case SectionScripture, SectionSummary, SectionExposition, SectionPrayer, SectionEssay, SectionOneVerse:
			keys = append(keys, k)
		}
	}
	return keys
}

// Section is one collapsible card. Active marks the header, Expanded
// controls whether the content block is shown.
type Section struct {
	Key      SectionKey
	Title    string
	Icon     string
	Class    string
	Active   bool
	Expanded bool
}

// Toggle flips this section only; other cards are unaffected.
func (s *Section) Toggle() {
	s.Active = !s.Active
	s.Expanded = !s.Expanded
}

type Sections struct {
	Scripture  Section
	Summary    Section
	Exposition Section
	Prayer     Section
	Essay      Section
	OneVerse   Section
}

func defaultSections() Sections {
	return Sections{
		Scripture:  Section{Key: SectionScripture, Title: "말씀 본문", Icon: "menu_book", Active: true, Expanded: true},
		Summary:    Section{Key: SectionSummary, Title: "오늘의 요약", Icon: "summarize"},
		Exposition: Section{Key: SectionExposition, Title: "본문 해설", Icon: "school"},
		Prayer:     Section{Key: SectionPrayer, Title: "오늘의 기도", Icon: "volunteer_activism", Class: "prayer-card"},
		Essay:      Section{Key: SectionEssay, Title: "묵상 에세이", Icon: "format_quote", Class: "essay-card"},
		OneVerse:   Section{Key: SectionOneVerse, Title: "한절 묵상", Icon: "auto_awesome", Class: "one-verse-card"},
	}
}

// Ordered returns the sections in display order.
func (s *Sections) Ordered() []*Section {
	return []*Section{&s.Scripture, &s.Summary, &s.Exposition, &s.Prayer, &s.Essay, &s.OneVerse}
}

func (s *Sections) Lookup(key SectionKey) (*Section, bool) {
	for _, sec := range s.Ordered() {
		if sec.Key == key {
			return sec, true
		}
	}
	return nil, false
}

type ExpositionView struct {
	Title     string
	Content   template.HTML
	Questions []string
}

// DetailView is everything the detail template needs for one entry.
type DetailView struct {
	Day         int
	DateLabel   string
	Title       string
	Scripture   string
	Video       *VideoEmbed
	Verses      []Verse
	Summary     template.HTML
	Expositions []ExpositionView
	Prayer      template.HTML
	Essay       template.HTML
	OneVerseRef string
	OneVerse    template.HTML
	Sections    Sections
}

// BuildDetail maps an entry onto a fresh view with default section state.
func BuildDetail(e Entry, rt *RichText) *DetailView {
	v := &DetailView{
		Day:         e.Day,
		DateLabel:   FormatDateLabel(e.Date),
		Title:       e.Title,
		Scripture:   e.Scripture,
		Video:       NewVideoEmbed(e.BibleReadingVideoURL),
		Verses:      e.ScriptureText,
		Summary:     rt.Render(e.Summary),
		Prayer:      rt.Render(e.Prayer),
		Essay:       rt.Render(e.Essay.Content),
		OneVerseRef: e.OneVerse.Verse,
		OneVerse:    rt.Render(e.OneVerse.Content),
		Sections:    defaultSections(),
	}

	v.Expositions = make([]ExpositionView, 0, len(e.Expositions))
	for _, exp := range e.Expositions {
		v.Expositions = append(v.Expositions, ExpositionView{
			Title:     exp.Title,
			Content:   rt.Render(exp.Content),
			Questions: exp.Questions,
		})
	}
	return v
}

// Expand opens the named sections that are currently collapsed.
func (v *DetailView) Expand(keys ...SectionKey) {
	for _, k := range keys {
		if sec, ok := v.Sections.Lookup(k); ok && !sec.Expanded {
			sec.Toggle()
		}
	}
}
