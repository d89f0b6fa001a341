// Package httpapi exposes dock import, PO scheduling and inbound history
// over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vsinha/dockplan/pkg/application/dto"
	"github.com/vsinha/dockplan/pkg/application/services"
	"github.com/vsinha/dockplan/pkg/application/services/reporting"
	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
	"github.com/vsinha/dockplan/pkg/infrastructure/events"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/dockplan/pkg/interfaces/cli/commands"
)

const defaultMaxUploadBytes = 32 << 20

// Response messages returned to upload clients
const (
	MessageDone            = "Done"
	MessageInvalidFile     = "Invalid File uploaded"
	MessageDocksMissing    = "Docks missing"
	MessageNoPOs           = "No POs in file"
	MessageNoDocks         = "No Docks in file"
	MessageNotScheduled    = "Couldn't calculate schedules!"
	MessageMissingFile     = "No file uploaded"
	MessageInvalidSlotDate = "Invalid slot date"
)

// API serves the scheduling endpoints. Each request schedules against its
// own PO repository, so concurrent uploads share only the dock and inbound
// stores.
type API struct {
	docks          repositories.DockSlotRepository
	inbounds       repositories.InboundRepository
	eventStore     events.EventStore
	loader         *csv.Loader
	logger         zerolog.Logger
	maxUploadBytes int64
}

// Option configures an API
type Option func(*API)

// WithEventStore publishes scheduling events for every run
func WithEventStore(store events.EventStore) Option {
	return func(a *API) {
		a.eventStore = store
	}
}

// WithMaxUploadBytes caps multipart upload size
func WithMaxUploadBytes(limit int64) Option {
	return func(a *API) {
		a.maxUploadBytes = limit
	}
}

// New creates the API
func New(docks repositories.DockSlotRepository, inbounds repositories.InboundRepository, logger zerolog.Logger, opts ...Option) *API {
	a := &API{
		docks:          docks,
		inbounds:       inbounds,
		loader:         csv.NewLoader(),
		logger:         logger,
		maxUploadBytes: defaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Routes registers the API on r
func (a *API) Routes(r chi.Router) {
	r.Get("/health", a.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/docks", a.handleDockUpload)
		r.Post("/schedules", a.handleScheduleUpload)
		r.Get("/history", a.handleHistory)
	})
}

type uploadResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type scheduleResponse struct {
	uploadResponse
	RunID        string               `json:"run_id,omitempty"`
	Summary      *dto.RunSummary      `json:"summary,omitempty"`
	Results      []dto.InboundRow     `json:"results"`
	Performances []dto.PerformanceRow `json:"performances"`
}

type dockUploadResponse struct {
	uploadResponse
	Imported int `json:"imported"`
}

type historyResponse struct {
	Results      []dto.InboundRow `json:"results"`
	DockIDs      []string         `json:"dock_ids"`
	DockDates    []string         `json:"dock_dates"`
	SelectedDock string           `json:"selected_dock,omitempty"`
	SelectedSlot string           `json:"selected_slot,omitempty"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleDockUpload(w http.ResponseWriter, r *http.Request) {
	file, ok := a.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	rows, err := a.loader.ReadDockRows(file)
	if err != nil {
		a.logger.Info().Err(err).Msg("dock upload rejected")
		writeMessage(w, http.StatusBadRequest, MessageNoDocks)
		return
	}

	if err := a.docks.LoadDockRows(rows); err != nil {
		a.logger.Error().Err(err).Msg("store dock slots")
		writeMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	a.logger.Info().Int("rows", len(rows)).Msg("dock slots imported")
	writeJSON(w, http.StatusOK, dockUploadResponse{
		uploadResponse: uploadResponse{Message: MessageDone, Status: http.StatusOK},
		Imported:       len(rows),
	})
}

func (a *API) handleScheduleUpload(w http.ResponseWriter, r *http.Request) {
	file, ok := a.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	poRows, err := a.loader.ReadPORows(file)
	switch {
	case errors.Is(err, csv.ErrEmptyFile):
		writeMessage(w, http.StatusBadRequest, MessageNoPOs)
		return
	case err != nil:
		a.logger.Info().Err(err).Msg("PO upload rejected")
		writeMessage(w, http.StatusBadRequest, MessageInvalidFile)
		return
	}

	poRepo := memory.NewPurchaseOrderRepository()
	if err := poRepo.LoadPORows(poRows); err != nil {
		writeMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	opts := []services.ServiceOption{
		services.WithLogger(a.logger),
		services.WithInboundRepository(a.inbounds),
	}
	if a.eventStore != nil {
		opts = append(opts, services.WithEventStore(a.eventStore))
	}

	result, summary, err := services.NewScheduleService(opts...).Schedule(r.Context(), poRepo, a.docks)
	switch {
	case errors.Is(err, services.ErrNoDocks):
		writeMessage(w, http.StatusBadRequest, MessageDocksMissing)
		return
	case errors.Is(err, services.ErrNoPurchaseOrders):
		writeMessage(w, http.StatusBadRequest, MessageNoPOs)
		return
	case err != nil:
		a.logger.Error().Err(err).Msg("schedule upload failed")
		writeMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	report := reporting.BuildReport(result)
	response := scheduleResponse{
		uploadResponse: uploadResponse{Message: MessageDone, Status: http.StatusOK},
		RunID:          result.RunID,
		Summary:        summary,
		Results:        report.Inbounds,
		Performances:   report.Performances,
	}
	if !summary.Scheduled {
		response.uploadResponse = uploadResponse{Message: MessageNotScheduled, Status: http.StatusCreated}
	}

	writeJSON(w, response.Status, response)
}

func (a *API) handleHistory(w http.ResponseWriter, r *http.Request) {
	selectedDock := r.URL.Query().Get("dock_id")
	selectedSlot := r.URL.Query().Get("slot_date")

	filter, err := commands.ParseInboundFilter(selectedDock, selectedSlot)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MessageInvalidSlotDate)
		return
	}

	all, err := a.inbounds.GetInbounds(repositories.InboundFilter{})
	if err != nil {
		a.logger.Error().Err(err).Msg("load inbound history")
		writeMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	dockIDs := make(map[string]bool)
	dockDates := make(map[string]bool)
	for _, record := range all {
		dockIDs[string(record.DockID)] = true
		dockDates[record.SlotStart.UTC().Format(commands.DateLayout)] = true
	}

	matched := make([]entities.InboundRecord, 0, len(all))
	for _, record := range all {
		if filter.Matches(record) {
			matched = append(matched, record)
		}
	}

	writeJSON(w, http.StatusOK, historyResponse{
		Results:      reporting.InboundRows(matched),
		DockIDs:      sortedKeys(dockIDs),
		DockDates:    sortedKeys(dockDates),
		SelectedDock: selectedDock,
		SelectedSlot: selectedSlot,
	})
}

// uploadedFile extracts the multipart "file" field, writing an error
// response when it is missing
func (a *API) uploadedFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "File too large")
			return nil, false
		}
		writeMessage(w, http.StatusBadRequest, MessageMissingFile)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MessageMissingFile)
		return nil, false
	}
	return file, true
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, uploadResponse{Message: message, Status: status})
}
