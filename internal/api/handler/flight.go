package handler

import (
	"net/http"

	"github.com/hangar7/flightlog/internal/api/apierr"
	"github.com/hangar7/flightlog/internal/api/request"
	"github.com/hangar7/flightlog/internal/api/response"
)

// ListAllFlights handles GET /api/v1/flights
func (h *Handler) ListAllFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.logbook.ListAllFlights(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FlightRecordListFromModel(flights))
}

// GetFlight handles GET /api/v1/flights/{flightID}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "flightID")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	flight, err := h.logbook.GetFlight(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FlightRecordFromModel(flight))
}

// EditFlight handles PUT /api/v1/flights/{flightID}
func (h *Handler) EditFlight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "flightID")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.FlightRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	flight, err := h.logbook.EditFlight(r.Context(), id, flightInput(req))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("flight edited", "flight_id", id)

	response.JSON(w, http.StatusOK, response.FlightRecordFromModel(flight))
}

// DeleteFlight handles DELETE /api/v1/flights/{flightID}
func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "flightID")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.logbook.DeleteFlight(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("flight deleted", "flight_id", id)

	response.NoContent(w)
}
