package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "lodge/infras/otel/mocks"
	mocks "lodge/internal/domains/reservation/mocks"
	"lodge/internal/domains/reservation/model/dto"
	"lodge/internal/handlers/reservation"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *mocks.MockReservationService) http.Handler {
	handler := reservation.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", func(api chi.Router) {
		handler.Router(api)
	})

	return router
}

func TestHandler_GetReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReservationService(ctrl)
	router := newRouter(mockService)

	t.Run("without a window returns everything", func(t *testing.T) {
		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{}).
			Return([]dto.ReservationResponse{{ID: 1}, {ID: 2}}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reservations", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body []dto.ReservationResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Len(t, body, 2)
	})

	t.Run("with a window passes an overlap filter", func(t *testing.T) {
		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.ReservationResponse, error) {
				assert.NotEmpty(t, filter.Filters, "window must produce a filter")
				assert.Equal(t, "check_in", params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []dto.ReservationResponse{}, nil
			})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reservations?checkIn=2026-06-01&checkOut=2026-06-03", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("one window parameter alone is a bad request", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reservations?checkIn=2026-06-01", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "error")
	})

	t.Run("malformed dates are a bad request", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reservations?checkIn=tomorrow&checkOut=2026-06-03", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("service errors map to their failure code", func(t *testing.T) {
		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, failure.InternalError(assert.AnError))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reservations", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestHandler_CreateReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReservationService(ctrl)
	router := newRouter(mockService)

	validBody := `{
		"room_id": 3,
		"name": "Ayu Lestari",
		"email": "ayu@example.com",
		"phone": "+62 812 0000 1111",
		"check_in": "2026-06-01",
		"check_out": "2026-06-03"
	}`

	t.Run("stores the reservation and returns the id", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.CreateReservationResponse{ID: 7}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(validBody)))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"id": 7}`, recorder.Body.String())
	})

	t.Run("missing fields never reach the service", func(t *testing.T) {
		body := `{"room_id": 3, "check_in": "2026-06-01", "check_out": "2026-06-03"}`

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed json never reaches the service", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader("{not json")))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("service errors map to their failure code", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.CreateReservationResponse{}, failure.InternalError(assert.AnError))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(validBody)))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestHandler_GetReservationByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReservationService(ctrl)
	router := newRouter(mockService)

	t.Run("returns the reservation", func(t *testing.T) {
		mockService.EXPECT().
			Get(gomock.Any(), int64(7)).
			Return(dto.ReservationResponse{ID: 7, RoomID: 3}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reservations/7", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body dto.ReservationResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, int64(7), body.ID)
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reservations/abc", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		mockService.EXPECT().
			Get(gomock.Any(), int64(999)).
			Return(dto.ReservationResponse{}, failure.NotFound("reservation not found"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reservations/999", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
