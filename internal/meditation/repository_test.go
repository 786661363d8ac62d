package meditation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taiwoajasa245/daily-meditation/internal/database"
	"github.com/taiwoajasa245/daily-meditation/internal/database/dbtest"
)

func TestFileRepoYAML(t *testing.T) {
	entries, err := NewFileRepo("testdata/entries.yaml").ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	a := entries[0]
	assert.Equal(t, 1, a.Day)
	assert.Equal(t, "2026-01-01", a.Date.String())
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123&t=42s", a.BibleReadingVideoURL)
	assert.Equal(t, []Verse{{1, "태초에 하나님이 천지를 창조하시니라"}, {2, "땅이 혼돈하고 공허하며"}}, a.ScriptureText)
	require.Len(t, a.Expositions, 2)
	assert.Len(t, a.Expositions[0].Questions, 2)
	assert.Empty(t, a.Expositions[1].Questions)
	assert.Equal(t, "<p>에세이</p>", a.Essay.Content)
	assert.Equal(t, "창세기 1:3", a.OneVerse.Verse)

	assert.Nil(t, entries[1].Expositions[0].Questions, "absent questions decode as nil")
}

func TestFileRepoJSON(t *testing.T) {
	entries, err := NewFileRepo("testdata/entries.json").ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 7, entries[0].Day)
	assert.Equal(t, []string{"쉬고 있나요?"}, entries[0].Expositions[0].Questions)
	assert.Empty(t, entries[1].BibleReadingVideoURL)
}

func TestFileRepoErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewFileRepo("testdata/missing.yaml").ListEntries(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	txt := filepath.Join(dir, "entries.txt")
	require.NoError(t, os.WriteFile(txt, []byte("[]"), 0o644))
	_, err = NewFileRepo(txt).ListEntries(ctx)
	assert.ErrorIs(t, err, ErrUnsupportedSource)

	bad := filepath.Join(dir, "entries.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"day": "one"}]`), 0o644))
	_, err = NewFileRepo(bad).ListEntries(ctx)
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = NewFileRepo("testdata/entries.yaml").ListEntries(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadCollectionDuplicateDays(t *testing.T) {
	_, err := LoadCollection(context.Background(), NewFileRepo("testdata/duplicate.yaml"))
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func TestPostgresRepo(t *testing.T) {
	cfg := dbtest.StartPostgres(t)
	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	_, err = db.DB().ExecContext(ctx, Schema)
	require.NoError(t, err)

	_, err = db.DB().ExecContext(ctx, `
		INSERT INTO meditation_entries
			(position, day, date, title, scripture, scripture_text, bible_reading_video_url,
			 summary, expositions, prayer, essay, one_verse)
		VALUES
			(2, 20, '2026-01-20', 'Later', 'Ps 1', '[]', NULL,
			 '', '[]', '', '{"content":""}', '{"verse":"","content":""}'),
			(1, 10, '2026-01-10', 'Earlier', 'Ps 23', '[{"verse":1,"text":"The Lord is my shepherd"}]',
			 'https://youtu.be/abc', '<p>s</p>',
			 '[{"title":"t","content":"c","questions":["q1","q2"]}]',
			 'amen', '{"content":"essay"}', '{"verse":"Ps 23:1","content":"one"}')
	`)
	require.NoError(t, err)

	entries, err := NewMeditationRepo(db).ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, 10, first.Day, "ordered by position")
	assert.Equal(t, "Earlier", first.Title)
	assert.Equal(t, 10, first.Date.Day())
	assert.Equal(t, "https://youtu.be/abc", first.BibleReadingVideoURL)
	assert.Equal(t, []Verse{{1, "The Lord is my shepherd"}}, first.ScriptureText)
	assert.Equal(t, []string{"q1", "q2"}, first.Expositions[0].Questions)
	assert.Equal(t, "essay", first.Essay.Content)
	assert.Equal(t, "Ps 23:1", first.OneVerse.Verse)

	assert.Empty(t, entries[1].BibleReadingVideoURL)

	c, err := LoadCollection(ctx, NewMeditationRepo(db))
	require.NoError(t, err)
	i, ok := c.IndexOfDay(20)
	require.True(t, ok)
	assert.Equal(t, 1, i)
}
