package sqlite

import (
	"context"
	"fmt"

	"github.com/Aimecol/cwsms/internal/models"
	"github.com/Aimecol/cwsms/internal/storage"
)

// ListCars returns all cars ordered by plate number.
func (s *SQLiteStore) ListCars(ctx context.Context) ([]models.Car, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT PlateNumber, CarType, CarSize, DriverName, PhoneNumber FROM Car ORDER BY PlateNumber",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	var out []models.Car
	for rows.Next() {
		var c models.Car
		if err := rows.Scan(&c.PlateNumber, &c.CarType, &c.CarSize, &c.DriverName, &c.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cars: %w", err)
	}
	return out, nil
}

// GetCar retrieves a car by plate number.
func (s *SQLiteStore) GetCar(ctx context.Context, plate string) (*models.Car, error) {
	var c models.Car
	err := s.db.QueryRowContext(ctx,
		"SELECT PlateNumber, CarType, CarSize, DriverName, PhoneNumber FROM Car WHERE PlateNumber = ?",
		plate,
	).Scan(&c.PlateNumber, &c.CarType, &c.CarSize, &c.DriverName, &c.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("car %s: %w", plate, notFoundErr(err))
	}
	return &c, nil
}

// CreateCar persists a new car under its caller-supplied plate number.
func (s *SQLiteStore) CreateCar(ctx context.Context, car *models.Car) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO Car (PlateNumber, CarType, CarSize, DriverName, PhoneNumber) VALUES (?, ?, ?, ?, ?)",
		car.PlateNumber, car.CarType, car.CarSize, car.DriverName, car.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("car %s: %w", car.PlateNumber, writeErr(err))
	}
	return nil
}

// UpdateCar rewrites the non-key fields of an existing car.
// The plate number is the primary key and is never changed.
func (s *SQLiteStore) UpdateCar(ctx context.Context, car *models.Car) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE Car SET CarType = ?, CarSize = ?, DriverName = ?, PhoneNumber = ? WHERE PlateNumber = ?",
		car.CarType, car.CarSize, car.DriverName, car.PhoneNumber, car.PlateNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to update car: %w", writeErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("car %s: %w", car.PlateNumber, storage.ErrNotFound)
	}
	return nil
}

// DeleteCar removes a car unless service records reference it.
func (s *SQLiteStore) DeleteCar(ctx context.Context, plate string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM Car WHERE PlateNumber = ?", plate)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", deleteErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("car %s: %w", plate, storage.ErrNotFound)
	}
	return nil
}
