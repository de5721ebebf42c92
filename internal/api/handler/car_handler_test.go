package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadready/rental-api/internal/core/domain"
)

type stubCarService struct {
	cars    map[int64]domain.Car
	updated *domain.Car
}

func (s *stubCarService) List(context.Context) ([]domain.Car, error) {
	out := make([]domain.Car, 0, len(s.cars))
	for _, c := range s.cars {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCarService) Get(_ context.Context, id int64) (*domain.Car, error) {
	c, ok := s.cars[id]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	return &c, nil
}

func (s *stubCarService) Create(_ context.Context, car *domain.Car) (int64, error) {
	id := int64(len(s.cars) + 1)
	s.cars[id] = *car
	return id, nil
}

func (s *stubCarService) Update(_ context.Context, car *domain.Car) error {
	if _, ok := s.cars[car.ID]; !ok {
		return domain.ErrCarNotFound
	}
	s.updated = car
	s.cars[car.ID] = *car
	return nil
}

func (s *stubCarService) Delete(_ context.Context, id int64) error {
	if _, ok := s.cars[id]; !ok {
		return domain.ErrCarNotFound
	}
	delete(s.cars, id)
	return nil
}

func newCarStub() *stubCarService {
	return &stubCarService{cars: map[int64]domain.Car{1: {ID: 1, Make: "Ford", Model: "Focus", Year: 2020}}}
}

func withParams(c echo.Context, names []string, values []string) echo.Context {
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

func TestCarHandler_Get(t *testing.T) {
	e := newTestEcho()
	h := NewCarHandler(newCarStub())

	rec := httptest.NewRecorder()
	c := withParams(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/car/1", nil), rec), []string{"id"}, []string{"1"})
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c = withParams(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/car/9", nil), httptest.NewRecorder()), []string{"id"}, []string{"9"})
	assert.ErrorIs(t, h.Get(c), domain.ErrCarNotFound)

	c = withParams(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/car/abc", nil), httptest.NewRecorder()), []string{"id"}, []string{"abc"})
	assert.Equal(t, http.StatusBadRequest, httpCode(h.Get(c)))
}

func TestCarHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := newCarStub()
	h := NewCarHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/car", `{"id":77,"make":"Kia","model":"Rio","year":2021,"pricePerDay":25}`), rec)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var car domain.Car
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &car))
	assert.Equal(t, int64(2), car.ID)
	assert.Equal(t, "Rio", car.Model)

	c = e.NewContext(jsonRequest(http.MethodPost, "/api/car", `{"make":"Kia"}`), httptest.NewRecorder())
	assert.Equal(t, http.StatusBadRequest, httpCode(h.Create(c)))
}

func TestCarHandler_UpdateIDFromPathOrBody(t *testing.T) {
	e := newTestEcho()
	stub := newCarStub()
	h := NewCarHandler(stub)
	body := `{"make":"Ford","model":"Fiesta","year":2019}`

	rec := httptest.NewRecorder()
	c := withParams(e.NewContext(jsonRequest(http.MethodPut, "/api/car/1", body), rec), []string{"id"}, []string{"1"})
	require.NoError(t, h.Update(c))
	assert.Equal(t, int64(1), stub.updated.ID)
	assert.JSONEq(t, `{"id":1,"make":"Ford","model":"Fiesta","year":2019,"plate":"","location":"","pricePerDay":0,"available":false}`, rec.Body.String())

	c = e.NewContext(jsonRequest(http.MethodPut, "/api/car", `{"id":1,"make":"Ford","model":"Ka","year":2018}`), httptest.NewRecorder())
	require.NoError(t, h.Update(c))
	assert.Equal(t, "Ka", stub.updated.Model)

	c = withParams(e.NewContext(jsonRequest(http.MethodPut, "/api/car/1", `{"id":2,"make":"Ford","model":"Ka","year":2018}`), httptest.NewRecorder()), []string{"id"}, []string{"1"})
	assert.Equal(t, http.StatusBadRequest, httpCode(h.Update(c)))

	c = withParams(e.NewContext(jsonRequest(http.MethodPut, "/api/car/5", body), httptest.NewRecorder()), []string{"id"}, []string{"5"})
	assert.ErrorIs(t, h.Update(c), domain.ErrCarNotFound)
}

func TestCarHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := newCarStub()
	h := NewCarHandler(stub)

	rec := httptest.NewRecorder()
	c := withParams(e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/car/1", nil), rec), []string{"id"}, []string{"1"})
	require.NoError(t, h.Delete(c))
	assert.JSONEq(t, `{"status":"Success","message":"Car deleted successfully"}`, rec.Body.String())

	c = withParams(e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/car/1", nil), httptest.NewRecorder()), []string{"id"}, []string{"1"})
	assert.ErrorIs(t, h.Delete(c), domain.ErrCarNotFound)
}
