package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/dto"
	"github.com/ecotrack/greenpoints/internal/service/reportservice"
	"github.com/ecotrack/greenpoints/pkg/auth"
	"github.com/ecotrack/greenpoints/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	CreateReport(ctx context.Context, userID int, location, wasteType, amount, imageURL string) (*domain.Report, error)
	GetRecentReports(ctx context.Context, limit int) ([]domain.Report, error)
	GetCollectionTasks(ctx context.Context, limit int) ([]domain.Report, error)
	UpdateTaskStatus(ctx context.Context, reportID int, status string, collectorID *int) (*domain.Report, error)
	CompleteCollection(ctx context.Context, reportID, collectorID int) (*domain.CollectedWaste, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// CreateReport godoc
//
//	@Summary		Report waste
//	@Description	Submit a new waste report. The reporter is awarded points immediately; the attached image is verified in the background.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateReportRequestDTO	true	"Report payload"
//	@Success		201		{object}	dto.ReportResponseDTO		"Created report"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/reports [post]
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateReportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Location == "" || req.WasteType == "" || req.Amount == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "location, wasteType and amount are required")
		return
	}

	report, err := h.reportService.CreateReport(r.Context(), userID, req.Location, req.WasteType, req.Amount, req.ImageURL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toReportDTO(report))
}

// GetReports godoc
//
//	@Summary		Get recent reports
//	@Description	Get the most recently submitted waste reports, newest first.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int					false	"Maximum number of reports"
//	@Success		200		{array}		dto.ReportResponseDTO	"Recent reports"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/reports [get]
func (h *ReportHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reports, err := h.reportService.GetRecentReports(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}

	response := make([]dto.ReportResponseDTO, len(reports))
	for i := range reports {
		response[i] = toReportDTO(&reports[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTasks godoc
//
//	@Summary		Get collection tasks
//	@Description	Get reported waste awaiting collection, presented as tasks for collectors.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int				false	"Maximum number of tasks"
//	@Success		200		{array}		dto.TaskDTO		"Collection tasks"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/tasks [get]
func (h *ReportHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	tasks, err := h.reportService.GetCollectionTasks(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	response := make([]dto.TaskDTO, len(tasks))
	for i, task := range tasks {
		response[i] = dto.TaskDTO{
			ID:          task.ID,
			Location:    task.Location,
			WasteType:   task.WasteType,
			Amount:      task.Amount,
			Status:      task.Status,
			CollectorID: task.CollectorID,
			Date:        task.CreatedAt.Format("2006-01-02"),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary		Update task status
//	@Description	Move a collection task between statuses, optionally assigning a collector.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Report ID"
//	@Param			request	body		dto.UpdateStatusRequestDTO	true	"Status payload"
//	@Success		200		{object}	dto.TaskDTO					"Updated task"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Report not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/reports/{id}/status [patch]
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	switch req.Status {
	case reportservice.StatusPending, reportservice.StatusInProgress, reportservice.StatusCollected:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	report, err := h.reportService.UpdateTaskStatus(r.Context(), reportID, req.Status, req.CollectorID)
	if err != nil {
		if errors.Is(err, reportservice.ErrReportNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TaskDTO{
		ID:          report.ID,
		Location:    report.Location,
		WasteType:   report.WasteType,
		Amount:      report.Amount,
		Status:      report.Status,
		CollectorID: report.CollectorID,
		Date:        report.CreatedAt.Format("2006-01-02"),
	})
}

// CompleteCollection godoc
//
//	@Summary		Complete a collection task
//	@Description	Mark a report as collected by the authenticated user. The collector is awarded points.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Report ID"
//	@Success		200	{object}	dto.CollectedWasteDTO	"Recorded collection"
//	@Failure		400	{object}	utils.Response			"Invalid report id"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Report not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/reports/{id}/collect [post]
func (h *ReportHandler) CompleteCollection(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	reportID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	collected, err := h.reportService.CompleteCollection(r.Context(), reportID, userID)
	if err != nil {
		if errors.Is(err, reportservice.ErrReportNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CollectedWasteDTO{
		ID:             collected.ID,
		ReportID:       collected.ReportID,
		CollectorID:    collected.CollectorID,
		CollectionDate: collected.CollectionDate,
		Status:         collected.Status,
	})
}

func toReportDTO(report *domain.Report) dto.ReportResponseDTO {
	return dto.ReportResponseDTO{
		ID:                 report.ID,
		Location:           report.Location,
		WasteType:          report.WasteType,
		Amount:             report.Amount,
		Status:             report.Status,
		VerificationStatus: report.VerificationStatus,
		CreatedAt:          report.CreatedAt,
	}
}
