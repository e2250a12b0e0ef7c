package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drufus/serenity/internal/service/bookings/models"
	createBooking "github.com/drufus/serenity/internal/usecase/create_booking"
)

type fakeUseCase struct {
	res *createBooking.Response
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return f.res, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func requestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"guestName":  "Jamie Rivera",
		"guestEmail": "jamie@example.com",
		"guestPhone": "+1-555-0100",
		"checkIn":    "2026-07-01",
		"checkOut":   "2026-07-04",
		"numGuests":  4,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func perform(t *testing.T, uc CreateBookingUseCase, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", body)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{res: &createBooking.Response{
		Booking: &models.BookingResponse{
			ConfirmationCode: "WXYZ2345",
			Status:           "pending",
			TotalAmount:      "795.00",
		},
	}}

	rec := perform(t, uc, requestBody(t))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "WXYZ2345", resp.ConfirmationCode)
}

func TestHandle_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"inverted range", createBooking.ErrInvalidDateRange, http.StatusBadRequest},
		{"past check-in", createBooking.ErrDateInPast, http.StatusBadRequest},
		{"below minimum stay", createBooking.ErrMinNights, http.StatusBadRequest},
		{"over capacity", createBooking.ErrTooManyGuests, http.StatusBadRequest},
		{"unknown addon", createBooking.ErrAddonNotFound, http.StatusBadRequest},
		{"dates taken", createBooking.ErrDatesNotAvailable, http.StatusConflict},
		{"race lost", createBooking.ErrDatesNoLongerAvailable, http.StatusConflict},
		{"store down", createBooking.ErrUnavailable, http.StatusServiceUnavailable},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := perform(t, &fakeUseCase{err: tc.err}, requestBody(t))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := perform(t, &fakeUseCase{}, bytes.NewBufferString("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	rec := perform(t, &fakeUseCase{}, bytes.NewBufferString(`{"totalAmount":"1.00"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
