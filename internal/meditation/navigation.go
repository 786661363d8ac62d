package meditation

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const dayParam = "day"

type Mode int

const (
	ListShown Mode = iota
	DetailShown
)

func (m Mode) String() string {
	switch m {
	case DetailShown:
		return "detail"
	default:
		return "list"
	}
}

// State is the navigation state. Index is -1 while the list is shown.
type State struct {
	Mode  Mode
	Index int
}

// History is the browser's session history as seen by the navigator.
type History interface {
	Current() *url.URL
	Push(u *url.URL)
	Back() (*url.URL, bool)
	Forward() (*url.URL, bool)
}

// SessionHistory is an in-memory history stack with a cursor. Pushing
// discards any forward entries, as browsers do.
type SessionHistory struct {
	entries []*url.URL
	cursor  int
}

func NewSessionHistory(start *url.URL) *SessionHistory {
	return &SessionHistory{entries: []*url.URL{cloneURL(start)}}
}

func (h *SessionHistory) Current() *url.URL {
	return cloneURL(h.entries[h.cursor])
}

func (h *SessionHistory) Push(u *url.URL) {
	h.entries = append(h.entries[:h.cursor+1], cloneURL(u))
	h.cursor++
}

func (h *SessionHistory) Back() (*url.URL, bool) {
	if h.cursor == 0 {
		return nil, false
	}
	h.cursor--
	return h.Current(), true
}

func (h *SessionHistory) Forward() (*url.URL, bool) {
	if h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	return h.Current(), true
}

func (h *SessionHistory) Len() int {
	return len(h.entries)
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return &url.URL{Path: "/"}
	}
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}

// Viewport is what the page currently shows.
type Viewport struct {
	OverlayVisible  bool
	ScrollLocked    bool
	DetailScrollTop int
	Detail          *DetailView
	DetailHTML      template.HTML
}

// Navigator switches between the list and detail screens. The URL in
// History is the source of truth: every transition goes through commit,
// which is also the only place that writes history.
type Navigator struct {
	entries  *Collection
	renderer *Renderer
	history  History
	logger   *zap.Logger

	state State
	view  Viewport
}

func NewNavigator(entries *Collection, renderer *Renderer, history History, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		entries:  entries,
		renderer: renderer,
		history:  history,
		logger:   logger,
		state:    State{Mode: ListShown, Index: -1},
	}
}

func (n *Navigator) State() State {
	return n.state
}

func (n *Navigator) Viewport() Viewport {
	return n.view
}

// URL returns the current address.
func (n *Navigator) URL() *url.URL {
	return n.history.Current()
}

// OpenDetail shows the entry at index and pushes ?day=<entry.day>.
func (n *Navigator) OpenDetail(index int) error {
	if _, ok := n.entries.At(index); !ok {
		return fmt.Errorf("%w: %d (have %d entries)", ErrIndexOutOfRange, index, n.entries.Len())
	}
	return n.commit(State{Mode: DetailShown, Index: index}, true)
}

// CloseDetail returns to the list and pushes the URL without day.
func (n *Navigator) CloseDetail() error {
	return n.commit(State{Mode: ListShown, Index: -1}, true)
}

// Continue opens the first entry.
func (n *Navigator) Continue() error {
	return n.OpenDetail(0)
}

// RestoreFromURL applies u without touching history. A day that is
// missing, not an integer or unknown leaves the list shown.
func (n *Navigator) RestoreFromURL(u *url.URL) error {
	if day, ok := parseDay(u); ok {
		if index, found := n.entries.IndexOfDay(day); found {
			return n.commit(State{Mode: DetailShown, Index: index}, false)
		}
		n.logger.Debug("no entry for day, showing list", zap.Int("day", day))
	}
	if n.state.Mode == ListShown {
		return nil
	}
	return n.commit(State{Mode: ListShown, Index: -1}, false)
}

// Back moves one step back in history and re-reads the URL.
func (n *Navigator) Back() error {
	u, ok := n.history.Back()
	if !ok {
		return nil
	}
	return n.RestoreFromURL(u)
}

func (n *Navigator) Forward() error {
	u, ok := n.history.Forward()
	if !ok {
		return nil
	}
	return n.RestoreFromURL(u)
}

// ExpandSections opens the given sections of the shown entry and renders
// the detail again. It does nothing on the list screen.
func (n *Navigator) ExpandSections(keys ...SectionKey) error {
	if n.state.Mode != DetailShown || len(keys) == 0 {
		return nil
	}
	n.view.Detail.Expand(keys...)
	html, err := n.renderer.RenderDetail(n.view.Detail)
	if err != nil {
		return err
	}
	n.view.DetailHTML = html
	return nil
}

// Page assembles the document for the current state.
func (n *Navigator) Page() PageView {
	page := PageView{
		Rows:           BuildList(n.entries),
		Detail:         n.view.Detail,
		DetailHTML:     n.view.DetailHTML,
		OverlayVisible: n.view.OverlayVisible,
		ScrollLocked:   n.view.ScrollLocked,
		CloseHref:      n.pathOnly().String(),
	}
	if len(page.Rows) > 0 {
		first := page.Rows[0]
		page.Continue = &first
		page.ContinueHref = first.Href
	}
	return page
}

func (n *Navigator) commit(next State, push bool) error {
	switch next.Mode {
	case DetailShown:
		e, _ := n.entries.At(next.Index)
		detail := n.renderer.BuildDetail(e)
		html, err := n.renderer.RenderDetail(detail)
		if err != nil {
			return err
		}
		n.view = Viewport{
			OverlayVisible:  true,
			ScrollLocked:    true,
			DetailScrollTop: 0,
			Detail:          detail,
			DetailHTML:      html,
		}
	default:
		next.Index = -1
		n.view = Viewport{}
	}

	n.state = next
	if push {
		n.history.Push(n.urlFor(next))
	}

	n.logger.Debug("navigation",
		zap.Stringer("mode", next.Mode),
		zap.Int("index", next.Index),
		zap.Bool("push", push),
	)
	return nil
}

func (n *Navigator) urlFor(s State) *url.URL {
	u := n.pathOnly()
	if s.Mode == DetailShown {
		e, _ := n.entries.At(s.Index)
		u.RawQuery = url.Values{dayParam: {strconv.Itoa(e.Day)}}.Encode()
	}
	return u
}

func (n *Navigator) pathOnly() *url.URL {
	u := n.history.Current()
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u
}

func parseDay(u *url.URL) (int, bool) {
	if u == nil {
		return 0, false
	}
	raw := strings.TrimSpace(u.Query().Get(dayParam))
	if raw == "" {
		return 0, false
	}
	day, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return day, true
}
