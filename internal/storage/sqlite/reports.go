package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Aimecol/cwsms/internal/models"
)

// The report queries deliberately use LEFT JOINs from the parent side:
// a package, car, or car type with no historical activity must still
// appear with zero aggregates. The dashboard exists to surface unused
// inventory, and an inner join would hide exactly those rows.
// COALESCE pins empty sums to zero; AVG stays over matched rows only.

// DailySales groups payments by calendar date, newest first. A
// non-empty date (YYYY-MM-DD) restricts the report to that single day;
// a day with no payments yields an empty result, not an error.
func (s *SQLiteStore) DailySales(ctx context.Context, date string) ([]models.DailySalesRow, error) {
	query := `
		SELECT p.PaymentDate,
		       COUNT(p.PaymentNumber),
		       COALESCE(SUM(p.AmountPaid), 0)
		FROM Payment p`
	var args []any
	if date != "" {
		query += " WHERE p.PaymentDate = ?"
		args = append(args, date)
	}
	query += `
		GROUP BY p.PaymentDate
		ORDER BY p.PaymentDate DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run daily sales report: %w", err)
	}
	defer rows.Close()

	var out []models.DailySalesRow
	for rows.Next() {
		var r models.DailySalesRow
		if err := rows.Scan(&r.Date, &r.TotalServices, &r.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan daily sales row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily sales rows: %w", err)
	}
	return out, nil
}

// MonthlyRevenue groups payments by calendar month, newest first. A
// non-zero year restricts the report to that year.
func (s *SQLiteStore) MonthlyRevenue(ctx context.Context, year int) ([]models.MonthlyRevenueRow, error) {
	query := `
		SELECT strftime('%Y-%m', p.PaymentDate),
		       COUNT(p.PaymentNumber),
		       COALESCE(SUM(p.AmountPaid), 0)
		FROM Payment p`
	var args []any
	if year != 0 {
		query += " WHERE strftime('%Y', p.PaymentDate) = ?"
		args = append(args, fmt.Sprintf("%04d", year))
	}
	query += `
		GROUP BY strftime('%Y-%m', p.PaymentDate)
		ORDER BY strftime('%Y-%m', p.PaymentDate) DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run monthly revenue report: %w", err)
	}
	defer rows.Close()

	var out []models.MonthlyRevenueRow
	for rows.Next() {
		var r models.MonthlyRevenueRow
		if err := rows.Scan(&r.Month, &r.TotalServices, &r.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan monthly revenue row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly revenue rows: %w", err)
	}
	return out, nil
}

// PackagePopularity counts service records and reachable revenue per
// package, most used first. Unused packages appear with zeros.
func (s *SQLiteStore) PackagePopularity(ctx context.Context) ([]models.PackagePopularityRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.PackageNumber,
		       p.PackageName,
		       COUNT(sp.RecordNumber),
		       COALESCE(SUM(pay.AmountPaid), 0)
		FROM Package p
		LEFT JOIN ServicePackage sp ON p.PackageNumber = sp.PackageNumber
		LEFT JOIN Payment pay ON sp.RecordNumber = pay.RecordNumber
		GROUP BY p.PackageNumber, p.PackageName
		ORDER BY COUNT(sp.RecordNumber) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run package popularity report: %w", err)
	}
	defer rows.Close()

	var out []models.PackagePopularityRow
	for rows.Next() {
		var r models.PackagePopularityRow
		if err := rows.Scan(&r.PackageNumber, &r.PackageName, &r.TimesUsed, &r.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan package popularity row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate package popularity rows: %w", err)
	}
	return out, nil
}

// CustomerFrequency counts visits, spend, and last payment date per
// car, most frequent first. Cars with no visits appear with zeros and
// a nil last visit.
func (s *SQLiteStore) CustomerFrequency(ctx context.Context) ([]models.CustomerFrequencyRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.PlateNumber,
		       c.DriverName,
		       c.PhoneNumber,
		       COUNT(sp.RecordNumber),
		       COALESCE(SUM(pay.AmountPaid), 0),
		       MAX(pay.PaymentDate)
		FROM Car c
		LEFT JOIN ServicePackage sp ON c.PlateNumber = sp.PlateNumber
		LEFT JOIN Payment pay ON sp.RecordNumber = pay.RecordNumber
		GROUP BY c.PlateNumber, c.DriverName, c.PhoneNumber
		ORDER BY COUNT(sp.RecordNumber) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run customer frequency report: %w", err)
	}
	defer rows.Close()

	var out []models.CustomerFrequencyRow
	for rows.Next() {
		var r models.CustomerFrequencyRow
		var lastVisit sql.NullString
		if err := rows.Scan(&r.PlateNumber, &r.DriverName, &r.PhoneNumber, &r.VisitCount, &r.TotalSpent, &lastVisit); err != nil {
			return nil, fmt.Errorf("failed to scan customer frequency row: %w", err)
		}
		if lastVisit.Valid {
			r.LastVisit = &lastVisit.String
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer frequency rows: %w", err)
	}
	return out, nil
}

// RevenueByCarType aggregates revenue per vehicle type, highest revenue
// first. Types whose cars have no activity appear with zero aggregates;
// the average is over payments that exist, not over unpaid services.
func (s *SQLiteStore) RevenueByCarType(ctx context.Context) ([]models.CarTypeRevenueRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.CarType,
		       COUNT(sp.RecordNumber),
		       COALESCE(SUM(pay.AmountPaid), 0),
		       COALESCE(AVG(pay.AmountPaid), 0)
		FROM Car c
		LEFT JOIN ServicePackage sp ON c.PlateNumber = sp.PlateNumber
		LEFT JOIN Payment pay ON sp.RecordNumber = pay.RecordNumber
		GROUP BY c.CarType
		ORDER BY COALESCE(SUM(pay.AmountPaid), 0) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run revenue by car type report: %w", err)
	}
	defer rows.Close()

	var out []models.CarTypeRevenueRow
	for rows.Next() {
		var r models.CarTypeRevenueRow
		if err := rows.Scan(&r.CarType, &r.ServiceCount, &r.TotalRevenue, &r.AverageRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue by car type row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue by car type rows: %w", err)
	}
	return out, nil
}

// UnpaidServices lists service records with no payment against them,
// newest service date first. "Unpaid" means no payment row exists at
// all; whether partial payments below the package price should also
// count is an open business question, so the row-existence rule stands.
func (s *SQLiteStore) UnpaidServices(ctx context.Context) ([]models.UnpaidServiceRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sp.RecordNumber,
		       sp.ServiceDate,
		       c.PlateNumber,
		       c.DriverName,
		       c.PhoneNumber,
		       p.PackageName,
		       p.PackagePrice
		FROM ServicePackage sp
		JOIN Car c ON sp.PlateNumber = c.PlateNumber
		JOIN Package p ON sp.PackageNumber = p.PackageNumber
		LEFT JOIN Payment pay ON sp.RecordNumber = pay.RecordNumber
		WHERE pay.PaymentNumber IS NULL
		ORDER BY sp.ServiceDate DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run unpaid services report: %w", err)
	}
	defer rows.Close()

	var out []models.UnpaidServiceRow
	for rows.Next() {
		var r models.UnpaidServiceRow
		if err := rows.Scan(&r.RecordNumber, &r.ServiceDate, &r.PlateNumber, &r.DriverName, &r.PhoneNumber, &r.PackageName, &r.PackagePrice); err != nil {
			return nil, fmt.Errorf("failed to scan unpaid service row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate unpaid service rows: %w", err)
	}
	return out, nil
}
