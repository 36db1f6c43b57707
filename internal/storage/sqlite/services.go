package sqlite

import (
	"context"
	"fmt"

	"github.com/Aimecol/cwsms/internal/models"
	"github.com/Aimecol/cwsms/internal/storage"
)

const serviceDetailQuery = `
SELECT sp.RecordNumber, sp.ServiceDate, sp.PlateNumber, sp.PackageNumber,
       c.DriverName, c.CarType, c.CarSize, p.PackageName, p.PackagePrice
FROM ServicePackage sp
JOIN Car c ON sp.PlateNumber = c.PlateNumber
JOIN Package p ON sp.PackageNumber = p.PackageNumber`

func scanServiceDetail(row interface{ Scan(...any) error }) (*models.ServicePackageDetail, error) {
	var d models.ServicePackageDetail
	err := row.Scan(
		&d.RecordNumber, &d.ServiceDate, &d.PlateNumber, &d.PackageNumber,
		&d.DriverName, &d.CarType, &d.CarSize, &d.PackageName, &d.PackagePrice,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListServicePackages returns all service records, newest first, with
// car and package display fields joined in.
func (s *SQLiteStore) ListServicePackages(ctx context.Context) ([]models.ServicePackageDetail, error) {
	rows, err := s.db.QueryContext(ctx, serviceDetailQuery+" ORDER BY sp.RecordNumber DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list service packages: %w", err)
	}
	defer rows.Close()

	var out []models.ServicePackageDetail
	for rows.Next() {
		d, err := scanServiceDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service package: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service packages: %w", err)
	}
	return out, nil
}

// GetServicePackage retrieves a service record by record number.
func (s *SQLiteStore) GetServicePackage(ctx context.Context, record int64) (*models.ServicePackageDetail, error) {
	d, err := scanServiceDetail(s.db.QueryRowContext(ctx, serviceDetailQuery+" WHERE sp.RecordNumber = ?", record))
	if err != nil {
		return nil, fmt.Errorf("service package %d: %w", record, notFoundErr(err))
	}
	return d, nil
}

// CreateServicePackage persists a new service record and fills in the
// assigned record number.
func (s *SQLiteStore) CreateServicePackage(ctx context.Context, sp *models.ServicePackage) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO ServicePackage (ServiceDate, PlateNumber, PackageNumber) VALUES (?, ?, ?)",
		sp.ServiceDate, sp.PlateNumber, sp.PackageNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to insert service package: %w", writeErr(err))
	}
	sp.RecordNumber, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read record number: %w", err)
	}
	return nil
}

// UpdateServicePackage rewrites an existing service record. The record
// may be re-pointed at a different car or package.
func (s *SQLiteStore) UpdateServicePackage(ctx context.Context, sp *models.ServicePackage) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE ServicePackage SET ServiceDate = ?, PlateNumber = ?, PackageNumber = ? WHERE RecordNumber = ?",
		sp.ServiceDate, sp.PlateNumber, sp.PackageNumber, sp.RecordNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to update service package: %w", writeErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("service package %d: %w", sp.RecordNumber, storage.ErrNotFound)
	}
	return nil
}

// DeleteServicePackage removes a service record unless payments
// reference it.
func (s *SQLiteStore) DeleteServicePackage(ctx context.Context, record int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM ServicePackage WHERE RecordNumber = ?", record)
	if err != nil {
		return fmt.Errorf("failed to delete service package: %w", deleteErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("service package %d: %w", record, storage.ErrNotFound)
	}
	return nil
}
