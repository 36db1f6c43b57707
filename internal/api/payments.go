package api

import (
	"log/slog"
	"net/http"

	"github.com/Aimecol/cwsms/internal/models"
)

var paymentErrMessages = storeErrMessages{
	notFound:      "Payment not found",
	duplicate:     "Payment already exists",
	missingParent: "Service package does not exist",
	inUse:         "Cannot delete payment",
}

type paymentRequest struct {
	AmountPaid   *models.Money `validate:"required"`
	PaymentDate  string        `validate:"required,datetime=2006-01-02"`
	RecordNumber int64         `validate:"required"`
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.store.ListPayments(r.Context())
	if err != nil {
		writeStoreError(w, err, paymentErrMessages)
		return
	}
	if payments == nil {
		payments = []models.PaymentDetail{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (s *Server) getPayment(w http.ResponseWriter, r *http.Request) {
	number, ok := idParam(w, r, "paymentNumber")
	if !ok {
		return
	}
	payment, err := s.store.GetPayment(r.Context(), number)
	if err != nil {
		writeStoreError(w, err, paymentErrMessages)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if !req.AmountPaid.IsPositive() {
		writeMessage(w, http.StatusBadRequest, "Amount paid must be positive")
		return
	}

	payment := models.Payment{
		AmountPaid:   *req.AmountPaid,
		PaymentDate:  req.PaymentDate,
		RecordNumber: req.RecordNumber,
	}
	if err := s.store.CreatePayment(r.Context(), &payment); err != nil {
		writeStoreError(w, err, paymentErrMessages)
		return
	}

	slog.Info("Payment created", "payment_number", payment.PaymentNumber, "record_number", payment.RecordNumber)
	writeJSON(w, http.StatusCreated, payment)
}

func (s *Server) updatePayment(w http.ResponseWriter, r *http.Request) {
	number, ok := idParam(w, r, "paymentNumber")
	if !ok {
		return
	}
	var req paymentRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if !req.AmountPaid.IsPositive() {
		writeMessage(w, http.StatusBadRequest, "Amount paid must be positive")
		return
	}

	payment := models.Payment{
		PaymentNumber: number,
		AmountPaid:    *req.AmountPaid,
		PaymentDate:   req.PaymentDate,
		RecordNumber:  req.RecordNumber,
	}
	if err := s.store.UpdatePayment(r.Context(), &payment); err != nil {
		writeStoreError(w, err, paymentErrMessages)
		return
	}
	writeMessage(w, http.StatusOK, "Payment updated successfully")
}

func (s *Server) deletePayment(w http.ResponseWriter, r *http.Request) {
	number, ok := idParam(w, r, "paymentNumber")
	if !ok {
		return
	}
	if err := s.store.DeletePayment(r.Context(), number); err != nil {
		writeStoreError(w, err, paymentErrMessages)
		return
	}
	slog.Info("Payment deleted", "payment_number", number)
	writeMessage(w, http.StatusOK, "Payment deleted successfully")
}
