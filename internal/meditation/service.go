package meditation

import (
	"bytes"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type MeditationService struct {
	entries  *Collection
	renderer *Renderer
	logger   *zap.Logger
}

func NewMeditationService(entries *Collection, renderer *Renderer, logger *zap.Logger) MeditationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return MeditationService{
		entries:  entries,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *MeditationService) Entries() *Collection {
	return s.entries
}

// NewNavigator starts a page session whose history begins at u.
func (s *MeditationService) NewNavigator(u *url.URL) *Navigator {
	return NewNavigator(s.entries, s.renderer, NewSessionHistory(u), s.logger)
}

// RenderPageForURL restores the state encoded in u, pre-expands the
// requested sections and renders the full document.
func (s *MeditationService) RenderPageForURL(u *url.URL, open ...SectionKey) ([]byte, *Navigator, error) {
	nav := s.NewNavigator(u)
	if err := nav.RestoreFromURL(u); err != nil {
		return nil, nil, err
	}
	if err := nav.ExpandSections(open...); err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, nav.Page()); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), nav, nil
}

func (s *MeditationService) ListRows() []ListRow {
	return BuildList(s.entries)
}

func (s *MeditationService) GetEntryByDay(day int) (*Entry, error) {
	index, ok := s.entries.IndexOfDay(day)
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrNotFound, day)
	}
	e, _ := s.entries.At(index)
	return &e, nil
}

// FirstDay is the day the continue action opens.
func (s *MeditationService) FirstDay() (int, bool) {
	e, ok := s.entries.At(0)
	return e.Day, ok
}
