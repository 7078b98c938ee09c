// Package server serves the calendar API and a small web page over HTTP.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/iwvelando/zemenbar/internal/calendar"
	"github.com/iwvelando/zemenbar/internal/settings"
	"github.com/iwvelando/zemenbar/pkg/constants"
	"github.com/iwvelando/zemenbar/pkg/datetime"
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
	"github.com/iwvelando/zemenbar/pkg/output"
	"github.com/iwvelando/zemenbar/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	calendar    *calendar.Service
	store       *settings.Store
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web page and the
// calendar API.
func NewHandler(logger *zap.Logger, svc *calendar.Service, store *settings.Store, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if svc == nil {
		svc = calendar.NewService(logger, nil)
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		calendar:    svc,
		store:       store,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/today", h.handleToday)
	mux.HandleFunc("/api/month", h.handleMonth)
	mux.HandleFunc("/api/convert", h.handleConvert)
	mux.HandleFunc("/api/settings", h.handleSettings)
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web page)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type todayResponse struct {
	ethiopic.EthiopianDate
	YearGeez  string                 `json:"year_geez"`
	Weekday   int                    `json:"weekday"`
	Gregorian ethiopic.GregorianDate `json:"gregorian"`
	Formatted string                 `json:"formatted"`
	TrayTitle string                 `json:"tray_title"`
}

func (h *handler) handleToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	prefs, err := h.loadSettings()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleToday")
		return
	}

	today := h.calendar.GetCurrentDate()
	h.writeJSON(w, http.StatusOK, todayResponse{
		EthiopianDate: today,
		YearGeez:      today.YearGeez(),
		Weekday:       ethiopic.WeekdayOf(today),
		Gregorian:     ethiopic.ToGregorian(today),
		Formatted:     h.calendar.FormatDate(today, prefs),
		TrayTitle:     h.calendar.TrayTitle(prefs),
	})
}

func (h *handler) handleMonth(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleMonth"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	today := h.calendar.GetCurrentDate()
	query := r.URL.Query()
	year, err := intParam(query.Get("year"), today.Year)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid year: %v", err), op)
		return
	}
	month, err := intParam(query.Get("month"), today.Month)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid month: %v", err), op)
		return
	}
	if err := validation.ValidateEthiopianMonth(year, month); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	view := h.calendar.GetMonthView(year, month)
	switch query.Get("format") {
	case constants.OutputFormatCSV:
		h.writeText(w, "text/csv; charset=utf-8", output.CsvString(view), op)
	case constants.OutputFormatICS:
		prefs, err := h.loadSettings()
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
			return
		}
		opts := output.Options{Language: prefs.Language(), Geez: prefs.UseGeezNumbers}
		h.writeText(w, "text/calendar; charset=utf-8", output.IcsString(view, opts), op)
	default:
		h.writeJSON(w, http.StatusOK, view)
	}
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConvert"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	parts := make([]int, 0, 3)
	if raw := query.Get("date"); raw != "" {
		// Well-formed but impossible dates fall through to the 404 below.
		year, month, day, err := datetime.SplitDate(raw)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		parts = append(parts, year, month, day)
	}
	for _, name := range []string{"year", "month", "day"} {
		if len(parts) == 3 {
			break
		}
		raw := query.Get(name)
		if raw == "" {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("missing %s", name), op)
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid %s: %v", name, err), op)
			return
		}
		parts = append(parts, n)
	}

	date, ok := h.calendar.ConvertGregorianToEthiopian(parts[0], parts[1], parts[2])
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound,
			fmt.Sprintf("%04d-%02d-%02d is not a Gregorian date", parts[0], parts[1], parts[2]), op)
		return
	}
	h.writeJSON(w, http.StatusOK, date)
}

func (h *handler) handleSettings(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSettings"
	switch r.Method {
	case http.MethodGet:
		prefs, err := h.loadSettings()
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
			return
		}
		h.writeJSON(w, http.StatusOK, prefs)

	case http.MethodPut, http.MethodPost:
		if h.store == nil {
			h.respondErrorWithOp(w, http.StatusServiceUnavailable, "settings storage is not configured", op)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		var decodeErr error
		// Fields absent from the body keep their stored values.
		prefs, err := h.store.Update(func(stored *settings.Settings) error {
			decodeErr = json.NewDecoder(r.Body).Decode(stored)
			return decodeErr
		})
		if decodeErr != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(decodeErr, &maxBytesErr) {
				h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
				return
			}
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode settings: %v", decodeErr), op)
			return
		}
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
			return
		}

		h.logger.Info("settings saved",
			zap.String("op", op),
			zap.String("path", h.store.Path()),
		)
		h.writeJSON(w, http.StatusOK, prefs)

	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) loadSettings() (settings.Settings, error) {
	if h.store == nil {
		return settings.Default(), nil
	}
	return h.store.Load()
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calendar request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeText(w http.ResponseWriter, contentType, body, op string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Error("failed to write response", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
