package sqlite

import (
	"context"
	"fmt"

	"github.com/Aimecol/cwsms/internal/models"
	"github.com/Aimecol/cwsms/internal/storage"
)

// ListPackages returns all packages ordered by package number.
func (s *SQLiteStore) ListPackages(ctx context.Context) ([]models.Package, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT PackageNumber, PackageName, PackageDescription, PackagePrice FROM Package ORDER BY PackageNumber",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var out []models.Package
	for rows.Next() {
		var p models.Package
		if err := rows.Scan(&p.PackageNumber, &p.PackageName, &p.PackageDescription, &p.PackagePrice); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate packages: %w", err)
	}
	return out, nil
}

// GetPackage retrieves a package by number.
func (s *SQLiteStore) GetPackage(ctx context.Context, number int64) (*models.Package, error) {
	var p models.Package
	err := s.db.QueryRowContext(ctx,
		"SELECT PackageNumber, PackageName, PackageDescription, PackagePrice FROM Package WHERE PackageNumber = ?",
		number,
	).Scan(&p.PackageNumber, &p.PackageName, &p.PackageDescription, &p.PackagePrice)
	if err != nil {
		return nil, fmt.Errorf("package %d: %w", number, notFoundErr(err))
	}
	return &p, nil
}

// CreatePackage persists a new package and fills in the assigned number.
func (s *SQLiteStore) CreatePackage(ctx context.Context, pkg *models.Package) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO Package (PackageName, PackageDescription, PackagePrice) VALUES (?, ?, ?)",
		pkg.PackageName, pkg.PackageDescription, pkg.PackagePrice,
	)
	if err != nil {
		return fmt.Errorf("failed to insert package: %w", writeErr(err))
	}
	pkg.PackageNumber, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read package number: %w", err)
	}
	return nil
}

// UpdatePackage rewrites the non-key fields of an existing package.
func (s *SQLiteStore) UpdatePackage(ctx context.Context, pkg *models.Package) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE Package SET PackageName = ?, PackageDescription = ?, PackagePrice = ? WHERE PackageNumber = ?",
		pkg.PackageName, pkg.PackageDescription, pkg.PackagePrice, pkg.PackageNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", writeErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("package %d: %w", pkg.PackageNumber, storage.ErrNotFound)
	}
	return nil
}

// DeletePackage removes a package unless service records reference it.
func (s *SQLiteStore) DeletePackage(ctx context.Context, number int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM Package WHERE PackageNumber = ?", number)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", deleteErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("package %d: %w", number, storage.ErrNotFound)
	}
	return nil
}
