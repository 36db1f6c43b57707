package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Aimecol/cwsms/internal/models"
)

var reportErrMessages = storeErrMessages{
	notFound: "Report not found",
}

func (s *Server) dailySalesReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	rows, err := s.store.DailySales(r.Context(), date)
	if err != nil {
		writeStoreError(w, err, reportErrMessages)
		return
	}
	if rows == nil {
		rows = []models.DailySalesRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) monthlyRevenueReport(w http.ResponseWriter, r *http.Request) {
	var year int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1000 || parsed > 9999 {
			writeMessage(w, http.StatusBadRequest, "Invalid year, expected a 4-digit number")
			return
		}
		year = parsed
	}

	rows, err := s.store.MonthlyRevenue(r.Context(), year)
	if err != nil {
		writeStoreError(w, err, reportErrMessages)
		return
	}
	if rows == nil {
		rows = []models.MonthlyRevenueRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) packagePopularityReport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.PackagePopularity(r.Context())
	if err != nil {
		writeStoreError(w, err, reportErrMessages)
		return
	}
	if rows == nil {
		rows = []models.PackagePopularityRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) customerFrequencyReport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.CustomerFrequency(r.Context())
	if err != nil {
		writeStoreError(w, err, reportErrMessages)
		return
	}
	if rows == nil {
		rows = []models.CustomerFrequencyRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) revenueByCarTypeReport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.RevenueByCarType(r.Context())
	if err != nil {
		writeStoreError(w, err, reportErrMessages)
		return
	}
	if rows == nil {
		rows = []models.CarTypeRevenueRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) unpaidServicesReport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.UnpaidServices(r.Context())
	if err != nil {
		writeStoreError(w, err, reportErrMessages)
		return
	}
	if rows == nil {
		rows = []models.UnpaidServiceRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}
