package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cx-tal-miterani/group-checkin/internal/handlers"
	"github.com/cx-tal-miterani/group-checkin/internal/websocket"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Service catalog
	api.HandleFunc("/services", h.GetServiceCatalog).Methods(http.MethodGet, http.MethodOptions)

	// Groups
	api.HandleFunc("/groups", h.ListGroups).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/groups", h.CreateGroup).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/groups/{id}", h.GetGroup).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/groups/{id}", h.DeleteGroup).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/groups/{id}/status", h.UpdateGroupStatus).Methods(http.MethodPatch, http.MethodOptions)

	// Passengers
	api.HandleFunc("/groups/{id}/passengers", h.GetRoster).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/groups/{id}/passengers", h.AddPassenger).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/groups/{id}/passengers/{passengerId}", h.RemovePassenger).Methods(http.MethodDelete, http.MethodOptions)

	// Seats
	api.HandleFunc("/groups/{id}/seats", h.GetSeatMap).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/groups/{id}/seats/assign", h.AssignSeat).Methods(http.MethodPost, http.MethodOptions)

	// Ancillary services
	api.HandleFunc("/groups/{id}/services", h.GetSelections).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/groups/{id}/services/toggle", h.ToggleService).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/groups/{id}/services/quantity", h.SetServiceQuantity).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/groups/{id}/services/option", h.SetServiceOption).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/groups/{id}/services/copy-all", h.CopyServicesToAll).Methods(http.MethodPost, http.MethodOptions)

	// Boarding passes
	api.HandleFunc("/groups/{id}/boarding-passes", h.GetBoardingPasses).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/groups/{id}/boarding-passes/generate", h.GenerateBoardingPasses).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/groups/{id}/boarding-passes/send", h.SendBoardingPasses).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/groups/{id}/boarding-passes/{passengerId}/pdf", h.DownloadBoardingPass).Methods(http.MethodGet, http.MethodOptions)

	// WebSocket for real-time updates
	api.HandleFunc("/groups/{id}/ws", websocket.HandleWebSocket)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
