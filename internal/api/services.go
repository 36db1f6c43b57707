package api

import (
	"log/slog"
	"net/http"

	"github.com/Aimecol/cwsms/internal/models"
)

var serviceErrMessages = storeErrMessages{
	notFound:      "Service package not found",
	duplicate:     "Service package already exists",
	missingParent: "Car or package does not exist",
	inUse:         "Cannot delete service package as it has associated payments",
}

type servicePackageRequest struct {
	ServiceDate   string `validate:"required,datetime=2006-01-02"`
	PlateNumber   string `validate:"required"`
	PackageNumber int64  `validate:"required"`
}

func (s *Server) listServicePackages(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListServicePackages(r.Context())
	if err != nil {
		writeStoreError(w, err, serviceErrMessages)
		return
	}
	if records == nil {
		records = []models.ServicePackageDetail{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) getServicePackage(w http.ResponseWriter, r *http.Request) {
	record, ok := idParam(w, r, "recordNumber")
	if !ok {
		return
	}
	sp, err := s.store.GetServicePackage(r.Context(), record)
	if err != nil {
		writeStoreError(w, err, serviceErrMessages)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (s *Server) createServicePackage(w http.ResponseWriter, r *http.Request) {
	var req servicePackageRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	sp := models.ServicePackage{
		ServiceDate:   req.ServiceDate,
		PlateNumber:   req.PlateNumber,
		PackageNumber: req.PackageNumber,
	}
	if err := s.store.CreateServicePackage(r.Context(), &sp); err != nil {
		writeStoreError(w, err, serviceErrMessages)
		return
	}

	slog.Info("Service package created", "record_number", sp.RecordNumber, "plate", sp.PlateNumber)
	writeJSON(w, http.StatusCreated, sp)
}

func (s *Server) updateServicePackage(w http.ResponseWriter, r *http.Request) {
	record, ok := idParam(w, r, "recordNumber")
	if !ok {
		return
	}
	var req servicePackageRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	sp := models.ServicePackage{
		RecordNumber:  record,
		ServiceDate:   req.ServiceDate,
		PlateNumber:   req.PlateNumber,
		PackageNumber: req.PackageNumber,
	}
	if err := s.store.UpdateServicePackage(r.Context(), &sp); err != nil {
		writeStoreError(w, err, serviceErrMessages)
		return
	}
	writeMessage(w, http.StatusOK, "Service package updated successfully")
}

func (s *Server) deleteServicePackage(w http.ResponseWriter, r *http.Request) {
	record, ok := idParam(w, r, "recordNumber")
	if !ok {
		return
	}
	if err := s.store.DeleteServicePackage(r.Context(), record); err != nil {
		writeStoreError(w, err, serviceErrMessages)
		return
	}
	slog.Info("Service package deleted", "record_number", record)
	writeMessage(w, http.StatusOK, "Service package deleted successfully")
}
