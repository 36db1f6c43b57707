package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aimecol/cwsms/internal/models"
	"github.com/Aimecol/cwsms/internal/storage"
)

var carErrMessages = storeErrMessages{
	notFound:      "Car not found",
	duplicate:     "Car with this plate number already exists",
	missingParent: "Car does not exist",
	inUse:         "Cannot delete car as it is referenced in service packages",
}

type createCarRequest struct {
	PlateNumber string         `validate:"required"`
	CarType     string         `validate:"required"`
	CarSize     models.CarSize `validate:"required,oneof=Small Medium Large"`
	DriverName  string         `validate:"required"`
	PhoneNumber string         `validate:"required"`
}

type updateCarRequest struct {
	CarType     string         `validate:"required"`
	CarSize     models.CarSize `validate:"required,oneof=Small Medium Large"`
	DriverName  string         `validate:"required"`
	PhoneNumber string         `validate:"required"`
}

func (s *Server) listCars(w http.ResponseWriter, r *http.Request) {
	cars, err := s.store.ListCars(r.Context())
	if err != nil {
		writeStoreError(w, err, carErrMessages)
		return
	}
	if cars == nil {
		cars = []models.Car{}
	}
	writeJSON(w, http.StatusOK, cars)
}

func (s *Server) getCar(w http.ResponseWriter, r *http.Request) {
	car, err := s.store.GetCar(r.Context(), chi.URLParam(r, "plateNumber"))
	if err != nil {
		writeStoreError(w, err, carErrMessages)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (s *Server) createCar(w http.ResponseWriter, r *http.Request) {
	var req createCarRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	// Pre-check so the common duplicate case gets the friendly message
	// even before the primary key rejects it.
	if _, err := s.store.GetCar(r.Context(), req.PlateNumber); err == nil {
		writeMessage(w, http.StatusBadRequest, carErrMessages.duplicate)
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		writeStoreError(w, err, carErrMessages)
		return
	}

	car := models.Car{
		PlateNumber: req.PlateNumber,
		CarType:     req.CarType,
		CarSize:     req.CarSize,
		DriverName:  req.DriverName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.store.CreateCar(r.Context(), &car); err != nil {
		writeStoreError(w, err, carErrMessages)
		return
	}

	slog.Info("Car created", "plate", car.PlateNumber)
	writeJSON(w, http.StatusCreated, car)
}

func (s *Server) updateCar(w http.ResponseWriter, r *http.Request) {
	var req updateCarRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	car := models.Car{
		PlateNumber: chi.URLParam(r, "plateNumber"),
		CarType:     req.CarType,
		CarSize:     req.CarSize,
		DriverName:  req.DriverName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.store.UpdateCar(r.Context(), &car); err != nil {
		writeStoreError(w, err, carErrMessages)
		return
	}
	writeMessage(w, http.StatusOK, "Car updated successfully")
}

func (s *Server) deleteCar(w http.ResponseWriter, r *http.Request) {
	plate := chi.URLParam(r, "plateNumber")
	if err := s.store.DeleteCar(r.Context(), plate); err != nil {
		writeStoreError(w, err, carErrMessages)
		return
	}
	slog.Info("Car deleted", "plate", plate)
	writeMessage(w, http.StatusOK, "Car deleted successfully")
}
