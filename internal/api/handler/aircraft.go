package handler

import (
	"net/http"

	"github.com/hangar7/flightlog/internal/api/apierr"
	"github.com/hangar7/flightlog/internal/api/request"
	"github.com/hangar7/flightlog/internal/api/response"
	"github.com/hangar7/flightlog/internal/services/logbook"
)

// CreateAircraft handles POST /api/v1/aircraft
func (h *Handler) CreateAircraft(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAircraftRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	aircraft, err := h.logbook.CreateAircraft(r.Context(), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("aircraft created", "aircraft_id", aircraft.ID, "name", aircraft.Name)

	response.JSON(w, http.StatusCreated, response.AircraftFromModel(aircraft))
}

// ListAircraft handles GET /api/v1/aircraft
func (h *Handler) ListAircraft(w http.ResponseWriter, r *http.Request) {
	list, err := h.logbook.ListAircraft(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AircraftListFromModel(list))
}

// GetAircraft handles GET /api/v1/aircraft/{aircraftID}
func (h *Handler) GetAircraft(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "aircraftID")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	aircraft, err := h.logbook.GetAircraft(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AircraftFromModel(aircraft))
}

// DeleteAircraft handles DELETE /api/v1/aircraft/{aircraftID}
// Deleting an aircraft also deletes its flight records.
func (h *Handler) DeleteAircraft(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "aircraftID")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.logbook.DeleteAircraft(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("aircraft deleted", "aircraft_id", id)

	response.NoContent(w)
}

// ListAircraftFlights handles GET /api/v1/aircraft/{aircraftID}/flights
func (h *Handler) ListAircraftFlights(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "aircraftID")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	flights, err := h.logbook.ListFlightsForAircraft(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FlightRecordListFromModel(flights))
}

// AddFlight handles POST /api/v1/aircraft/{aircraftID}/flights
func (h *Handler) AddFlight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "aircraftID")
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.FlightRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	flight, err := h.logbook.AddFlight(r.Context(), id, flightInput(req))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("flight added", "flight_id", flight.ID, "aircraft_id", id)

	response.JSON(w, http.StatusCreated, response.FlightRecordFromModel(flight))
}

// flightInput maps a FlightRequest onto the logbook input type
func flightInput(req request.FlightRequest) logbook.FlightInput {
	return logbook.FlightInput{
		Pilot:           req.Pilot,
		Copilot:         req.Copilot,
		DepartureTime:   req.DepartureTime,
		ArrivalTime:     req.ArrivalTime,
		TotalFlownHours: req.TotalFlownHours,
		DeparturePlace:  req.DeparturePlace,
		FlightType:      req.FlightType,
		Observation:     req.Observation,
	}
}
