package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/cx-tal-miterani/group-checkin/internal/catalog"
	"github.com/cx-tal-miterani/group-checkin/internal/docs"
	"github.com/cx-tal-miterani/group-checkin/internal/models"
	"github.com/cx-tal-miterani/group-checkin/internal/service"
	"github.com/cx-tal-miterani/group-checkin/internal/websocket"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	checkinService service.CheckinService
}

// NewHandler creates a new Handler instance
func NewHandler(checkinService service.CheckinService) *Handler {
	return &Handler{
		checkinService: checkinService,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service error taxonomy to HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPrecondition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// ListGroups handles GET /api/groups
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.checkinService.ListGroups(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

// GetGroup handles GET /api/groups/{id}
func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	detail, err := h.checkinService.GetGroup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// CreateGroup handles POST /api/groups
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := h.checkinService.CreateGroup(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, group)
}

// UpdateGroupStatus handles PATCH /api/groups/{id}/status
func (h *Handler) UpdateGroupStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := h.checkinService.UpdateGroupStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, group)
}

// DeleteGroup handles DELETE /api/groups/{id}
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.checkinService.DeleteGroup(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Group deleted"})
}

// GetRoster handles GET /api/groups/{id}/passengers
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.checkinService.GetRoster(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, roster)
}

// AddPassenger handles POST /api/groups/{id}/passengers
func (h *Handler) AddPassenger(w http.ResponseWriter, r *http.Request) {
	var req models.AddPassengerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	passenger, err := h.checkinService.AddPassenger(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, passenger)
}

// RemovePassenger handles DELETE /api/groups/{id}/passengers/{passengerId}
func (h *Handler) RemovePassenger(w http.ResponseWriter, r *http.Request) {
	passengerID, err := pathInt(r, "passengerId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid passenger ID")
		return
	}

	if err := h.checkinService.RemovePassenger(r.Context(), mux.Vars(r)["id"], passengerID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Passenger removed"})
}

// GetSeatMap handles GET /api/groups/{id}/seats
func (h *Handler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	seatMap, err := h.checkinService.GetSeatMap(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, seatMap)
}

// AssignSeat handles POST /api/groups/{id}/seats/assign
func (h *Handler) AssignSeat(w http.ResponseWriter, r *http.Request) {
	var req models.AssignSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SeatNumber == "" {
		respondError(w, http.StatusBadRequest, "Seat number is required")
		return
	}

	groupID := mux.Vars(r)["id"]
	seatMap, err := h.checkinService.AssignSeat(r.Context(), groupID, req.SeatNumber, req.PassengerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	websocket.GetHub().BroadcastSeatAssigned(groupID, req.SeatNumber, req.PassengerID)
	respondJSON(w, http.StatusOK, seatMap)
}

// GetServiceCatalog handles GET /api/services
func (h *Handler) GetServiceCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.All())
}

// GetSelections handles GET /api/groups/{id}/services
func (h *Handler) GetSelections(w http.ResponseWriter, r *http.Request) {
	selections, err := h.checkinService.GetSelections(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.SelectionsResponse{
		Selections: selections,
		TotalPrice: selections.TotalPrice(),
	})
}

// ToggleService handles POST /api/groups/{id}/services/toggle
func (h *Handler) ToggleService(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	selections, err := h.checkinService.ToggleService(r.Context(), mux.Vars(r)["id"], req.PassengerID, req.ServiceID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.SelectionsResponse{
		Selections: selections,
		TotalPrice: selections.TotalPrice(),
	})
}

// SetServiceQuantity handles POST /api/groups/{id}/services/quantity
func (h *Handler) SetServiceQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	selections, err := h.checkinService.SetServiceQuantity(r.Context(), mux.Vars(r)["id"], req.PassengerID, req.ServiceID, req.Quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.SelectionsResponse{
		Selections: selections,
		TotalPrice: selections.TotalPrice(),
	})
}

// SetServiceOption handles POST /api/groups/{id}/services/option
func (h *Handler) SetServiceOption(w http.ResponseWriter, r *http.Request) {
	var req models.SetOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	selections, err := h.checkinService.SetServiceOption(r.Context(), mux.Vars(r)["id"], req.PassengerID, req.ServiceID, req.Option)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.SelectionsResponse{
		Selections: selections,
		TotalPrice: selections.TotalPrice(),
	})
}

// CopyServicesToAll handles POST /api/groups/{id}/services/copy-all
func (h *Handler) CopyServicesToAll(w http.ResponseWriter, r *http.Request) {
	var req models.CopyServicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	selections, err := h.checkinService.CopyServicesToAll(r.Context(), mux.Vars(r)["id"], req.SourcePassengerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.SelectionsResponse{
		Selections: selections,
		TotalPrice: selections.TotalPrice(),
	})
}

// GetBoardingPasses handles GET /api/groups/{id}/boarding-passes
func (h *Handler) GetBoardingPasses(w http.ResponseWriter, r *http.Request) {
	passes, err := h.checkinService.GetBoardingPasses(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, passes)
}

// GenerateBoardingPasses handles POST /api/groups/{id}/boarding-passes/generate
func (h *Handler) GenerateBoardingPasses(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["id"]
	passes, err := h.checkinService.GenerateBoardingPasses(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	websocket.GetHub().BroadcastPassesGenerated(groupID, len(passes.ByPassenger))
	respondJSON(w, http.StatusCreated, passes)
}

// SendBoardingPasses handles POST /api/groups/{id}/boarding-passes/send
func (h *Handler) SendBoardingPasses(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["id"]
	resp, err := h.checkinService.SendBoardingPasses(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	websocket.GetHub().BroadcastPassesSent(groupID)
	respondJSON(w, http.StatusAccepted, resp)
}

// DownloadBoardingPass handles GET /api/groups/{id}/boarding-passes/{passengerId}/pdf
func (h *Handler) DownloadBoardingPass(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["id"]
	passengerID, err := pathInt(r, "passengerId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid passenger ID")
		return
	}

	detail, err := h.checkinService.GetGroup(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	roster, err := h.checkinService.GetRoster(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	passenger := roster.Find(passengerID)
	if passenger == nil {
		respondError(w, http.StatusNotFound, "Passenger not found")
		return
	}
	passes, err := h.checkinService.GetBoardingPasses(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	pass, ok := passes.ByPassenger[passengerID]
	if !ok {
		respondError(w, http.StatusNotFound, "Boarding pass not generated")
		return
	}

	pdf, err := docs.RenderBoardingPass(detail.Group, passenger, &pass)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to render boarding pass")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=boarding-pass.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
