package meditation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taiwoajasa245/daily-meditation/internal/database"
)

var (
	ErrNotFound          = errors.New("entry not found")
	ErrDuplicateDay      = errors.New("duplicate day")
	ErrIndexOutOfRange   = errors.New("entry index out of range")
	ErrUnsupportedSource = errors.New("unsupported entries source")
)

// MeditationRepo supplies the entry collection. Implementations are read
// only; the viewer loads them once at startup.
type MeditationRepo interface {
	ListEntries(ctx context.Context) ([]Entry, error)
}

type fileRepo struct {
	path string
}

// NewFileRepo reads entries from a JSON (.json) or YAML (.yaml, .yml) file
// holding a top-level list.
func NewFileRepo(path string) MeditationRepo {
	return &fileRepo{path: path}
}

func (r *fileRepo) ListEntries(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading entries %s: %w", r.path, err)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".json":
		err = json.Unmarshal(data, &entries)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entries)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing entries %s: %w", r.path, err)
	}
	return entries, nil
}

// Schema is the table the postgres repository reads from. Nested fields are
// stored as JSONB in the same shape as the JSON file format.
const Schema = `
CREATE TABLE IF NOT EXISTS meditation_entries (
	position                INTEGER NOT NULL,
	day                     INTEGER PRIMARY KEY,
	date                    DATE NOT NULL,
	title                   TEXT NOT NULL,
	scripture               TEXT NOT NULL,
	scripture_text          JSONB NOT NULL DEFAULT '[]',
	bible_reading_video_url TEXT,
	summary                 TEXT NOT NULL DEFAULT '',
	expositions             JSONB NOT NULL DEFAULT '[]',
	prayer                  TEXT NOT NULL DEFAULT '',
	essay                   JSONB NOT NULL DEFAULT '{}',
	one_verse               JSONB NOT NULL DEFAULT '{}'
)`

type repository struct {
	db *sql.DB
}

func NewMeditationRepo(dbService database.Service) MeditationRepo {
	return &repository{db: dbService.DB()}
}

func (r *repository) ListEntries(ctx context.Context) ([]Entry, error) {
	query := `
		SELECT day, date, title, scripture, scripture_text,
		       bible_reading_video_url, summary, expositions, prayer,
		       essay, one_verse
		FROM meditation_entries
		ORDER BY position, day
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                          Entry
			videoURL                   sql.NullString
			scriptureText, expositions []byte
			essay, oneVerse            []byte
		)
		if err := rows.Scan(
			&e.Day,
			&e.Date.Time,
			&e.Title,
			&e.Scripture,
			&scriptureText,
			&videoURL,
			&e.Summary,
			&expositions,
			&e.Prayer,
			&essay,
			&oneVerse,
		); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.BibleReadingVideoURL = videoURL.String

		for _, field := range []struct {
			name string
			raw  []byte
			dst  any
		}{
			{"scripture_text", scriptureText, &e.ScriptureText},
			{"expositions", expositions, &e.Expositions},
			{"essay", essay, &e.Essay},
			{"one_verse", oneVerse, &e.OneVerse},
		} {
			if err := json.Unmarshal(field.raw, field.dst); err != nil {
				return nil, fmt.Errorf("decoding %s for day %d: %w", field.name, e.Day, err)
			}
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	return entries, nil
}

// LoadCollection reads every entry from repo into an indexed collection.
func LoadCollection(ctx context.Context, repo MeditationRepo) (*Collection, error) {
	entries, err := repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return NewCollection(entries)
}
