package sqlite

import (
	"context"
	"fmt"

	"github.com/Aimecol/cwsms/internal/models"
	"github.com/Aimecol/cwsms/internal/storage"
)

const paymentDetailQuery = `
SELECT p.PaymentNumber, p.AmountPaid, p.PaymentDate, p.RecordNumber,
       sp.ServiceDate, sp.PlateNumber, c.DriverName, pkg.PackageName, pkg.PackagePrice
FROM Payment p
JOIN ServicePackage sp ON p.RecordNumber = sp.RecordNumber
JOIN Car c ON sp.PlateNumber = c.PlateNumber
JOIN Package pkg ON sp.PackageNumber = pkg.PackageNumber`

func scanPaymentDetail(row interface{ Scan(...any) error }) (*models.PaymentDetail, error) {
	var d models.PaymentDetail
	err := row.Scan(
		&d.PaymentNumber, &d.AmountPaid, &d.PaymentDate, &d.RecordNumber,
		&d.ServiceDate, &d.PlateNumber, &d.DriverName, &d.PackageName, &d.PackagePrice,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListPayments returns all payments, newest first, with display fields
// reached through the service record joined in.
func (s *SQLiteStore) ListPayments(ctx context.Context) ([]models.PaymentDetail, error) {
	rows, err := s.db.QueryContext(ctx, paymentDetailQuery+" ORDER BY p.PaymentNumber DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var out []models.PaymentDetail
	for rows.Next() {
		d, err := scanPaymentDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return out, nil
}

// GetPayment retrieves a payment by payment number.
func (s *SQLiteStore) GetPayment(ctx context.Context, number int64) (*models.PaymentDetail, error) {
	d, err := scanPaymentDetail(s.db.QueryRowContext(ctx, paymentDetailQuery+" WHERE p.PaymentNumber = ?", number))
	if err != nil {
		return nil, fmt.Errorf("payment %d: %w", number, notFoundErr(err))
	}
	return d, nil
}

// CreatePayment persists a new payment and fills in the assigned number.
func (s *SQLiteStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO Payment (AmountPaid, PaymentDate, RecordNumber) VALUES (?, ?, ?)",
		p.AmountPaid, p.PaymentDate, p.RecordNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", writeErr(err))
	}
	p.PaymentNumber, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read payment number: %w", err)
	}
	return nil
}

// UpdatePayment rewrites an existing payment.
func (s *SQLiteStore) UpdatePayment(ctx context.Context, p *models.Payment) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE Payment SET AmountPaid = ?, PaymentDate = ?, RecordNumber = ? WHERE PaymentNumber = ?",
		p.AmountPaid, p.PaymentDate, p.RecordNumber, p.PaymentNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", writeErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("payment %d: %w", p.PaymentNumber, storage.ErrNotFound)
	}
	return nil
}

// DeletePayment removes a payment. Payments have no children, so the
// only failure modes are absence and storage errors.
func (s *SQLiteStore) DeletePayment(ctx context.Context, number int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM Payment WHERE PaymentNumber = ?", number)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("payment %d: %w", number, storage.ErrNotFound)
	}
	return nil
}
