package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Aimecol/cwsms/internal/models"
)

var packageErrMessages = storeErrMessages{
	notFound:      "Package not found",
	duplicate:     "Package already exists",
	missingParent: "Package does not exist",
	inUse:         "Cannot delete package as it is referenced in service packages",
}

type packageRequest struct {
	PackageName        string        `validate:"required"`
	PackageDescription string
	PackagePrice       *models.Money `validate:"required"`
}

// idParam parses a numeric URL parameter. A false return means the 400
// has already been written.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid identifier")
		return 0, false
	}
	return id, true
}

func (s *Server) listPackages(w http.ResponseWriter, r *http.Request) {
	pkgs, err := s.store.ListPackages(r.Context())
	if err != nil {
		writeStoreError(w, err, packageErrMessages)
		return
	}
	if pkgs == nil {
		pkgs = []models.Package{}
	}
	writeJSON(w, http.StatusOK, pkgs)
}

func (s *Server) getPackage(w http.ResponseWriter, r *http.Request) {
	number, ok := idParam(w, r, "packageNumber")
	if !ok {
		return
	}
	pkg, err := s.store.GetPackage(r.Context(), number)
	if err != nil {
		writeStoreError(w, err, packageErrMessages)
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

func (s *Server) createPackage(w http.ResponseWriter, r *http.Request) {
	var req packageRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.PackagePrice.IsNegative() {
		writeMessage(w, http.StatusBadRequest, "Package price cannot be negative")
		return
	}

	pkg := models.Package{
		PackageName:        req.PackageName,
		PackageDescription: req.PackageDescription,
		PackagePrice:       *req.PackagePrice,
	}
	if err := s.store.CreatePackage(r.Context(), &pkg); err != nil {
		writeStoreError(w, err, packageErrMessages)
		return
	}

	slog.Info("Package created", "package_number", pkg.PackageNumber, "name", pkg.PackageName)
	writeJSON(w, http.StatusCreated, pkg)
}

func (s *Server) updatePackage(w http.ResponseWriter, r *http.Request) {
	number, ok := idParam(w, r, "packageNumber")
	if !ok {
		return
	}
	var req packageRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.PackagePrice.IsNegative() {
		writeMessage(w, http.StatusBadRequest, "Package price cannot be negative")
		return
	}

	pkg := models.Package{
		PackageNumber:      number,
		PackageName:        req.PackageName,
		PackageDescription: req.PackageDescription,
		PackagePrice:       *req.PackagePrice,
	}
	if err := s.store.UpdatePackage(r.Context(), &pkg); err != nil {
		writeStoreError(w, err, packageErrMessages)
		return
	}
	writeMessage(w, http.StatusOK, "Package updated successfully")
}

func (s *Server) deletePackage(w http.ResponseWriter, r *http.Request) {
	number, ok := idParam(w, r, "packageNumber")
	if !ok {
		return
	}
	if err := s.store.DeletePackage(r.Context(), number); err != nil {
		writeStoreError(w, err, packageErrMessages)
		return
	}
	slog.Info("Package deleted", "package_number", number)
	writeMessage(w, http.StatusOK, "Package deleted successfully")
}
