package meditation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/taiwoajasa245/daily-meditation/pkg/response"
)

type MeditationHandler struct {
	service MeditationService
	logger  *zap.Logger
}

func NewMeditationHandler(service MeditationService, logger *zap.Logger) MeditationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return MeditationHandler{service: service, logger: logger}
}

// PageHandler serves the list screen, with the detail overlay open when
// ?day= names a known entry. Bad or unknown days fall back to the list.
func (h *MeditationHandler) PageHandler(w http.ResponseWriter, r *http.Request) {
	open := ParseSectionKeys(r.URL.Query().Get("open"))

	body, nav, err := h.service.RenderPageForURL(r.URL, open...)
	if err != nil {
		h.logger.Error("rendering page", zap.String("url", r.URL.String()), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.logger.Debug("page rendered",
		zap.Stringer("mode", nav.State().Mode),
		zap.Int("index", nav.State().Index),
	)
	if err := response.HTML(w, http.StatusOK, body); err != nil {
		h.logger.Warn("writing page", zap.Error(err))
	}
}

// ContinueHandler redirects to the first entry.
func (h *MeditationHandler) ContinueHandler(w http.ResponseWriter, r *http.Request) {
	day, ok := h.service.FirstDay()
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/"+DayHref(day), http.StatusSeeOther)
}

func (h *MeditationHandler) ListEntriesHandler(w http.ResponseWriter, r *http.Request) {
	rows := h.service.ListRows()
	if rows == nil {
		rows = []ListRow{}
	}
	response.Success(w, rows, "successfully")
}

func (h *MeditationHandler) GetEntryHandler(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid day", map[string]string{
			"day": "day must be an integer",
		})
		return
	}

	entry, err := h.service.GetEntryByDay(day)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Entry not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get entry", err.Error())
		return
	}

	response.Success(w, entry, "successfully")
}
