package reservation

import (
	"net/http"
	"strconv"

	"lodge/infras/otel"
	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
	"lodge/internal/domains/reservation/repository"
	"lodge/internal/domains/reservation/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/{id}", handler.GetReservationByID)
	})
}

// GetReservations lists reservations, optionally restricted to the ones
// overlapping a requested stay window.
// @Summary List reservations
// @Description Without query parameters every reservation is returned. With
// @Description checkIn and checkOut only reservations overlapping the
// @Description half-open [checkIn, checkOut) window are returned.
// @Tags Reservation
// @Produce json
// @Param checkIn query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param checkOut query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} dto.ReservationResponse "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	filter, err := overlapFilterFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability range")

		response.WithError(w, err)

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	if params.SortBy == "" {
		params.SortBy = model.FieldCheckIn
		params.SortDir = gDto.SortDirAsc
	}

	reservations, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// CreateReservation stores a new reservation.
// @Summary Create a reservation
// @Description Append a reservation row. No overlap check is performed, so
// @Description overlapping submissions for the same room all succeed.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 200 {object} dto.CreateReservationResponse "Assigned id"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reservations [post]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservationByID returns a single reservation.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse "Reservation details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reservations/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("reservation id must be an integer"))

		return
	}

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// overlapFilterFromRequest turns the optional checkIn/checkOut query
// parameters into an overlap filter. Both parameters absent means no filter.
// The range itself is not validated here: an inverted window simply matches
// no rows, mirroring the store's behavior.
func overlapFilterFromRequest(r *http.Request) (gDto.FilterGroup, error) {
	checkInParam := r.URL.Query().Get(constant.RequestParamCheckIn)
	checkOutParam := r.URL.Query().Get(constant.RequestParamCheckOut)

	if checkInParam == "" && checkOutParam == "" {
		return gDto.FilterGroup{}, nil
	}

	if checkInParam == "" || checkOutParam == "" {
		return gDto.FilterGroup{}, failure.BadRequestFromString("checkIn and checkOut must be supplied together") // nolint:wrapcheck
	}

	checkIn, err := dto.ParseStayDate(checkInParam)
	if err != nil {
		return gDto.FilterGroup{}, failure.BadRequestFromString("invalid checkIn: " + err.Error()) // nolint:wrapcheck
	}

	checkOut, err := dto.ParseStayDate(checkOutParam)
	if err != nil {
		return gDto.FilterGroup{}, failure.BadRequestFromString("invalid checkOut: " + err.Error()) // nolint:wrapcheck
	}

	return repository.OverlapFilter(checkIn, checkOut), nil
}
