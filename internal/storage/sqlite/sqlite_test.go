package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Aimecol/cwsms/internal/models"
	"github.com/Aimecol/cwsms/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "cwsms-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreatePackage(t *testing.T, store *SQLiteStore, name, price string) models.Package {
	t.Helper()
	p, err := models.ParseMoney(price)
	if err != nil {
		t.Fatalf("Bad price %q: %v", price, err)
	}
	pkg := models.Package{PackageName: name, PackagePrice: p}
	if err := store.CreatePackage(context.Background(), &pkg); err != nil {
		t.Fatalf("CreatePackage failed: %v", err)
	}
	return pkg
}

func mustCreateCar(t *testing.T, store *SQLiteStore, plate string) models.Car {
	t.Helper()
	car := models.Car{
		PlateNumber: plate,
		CarType:     "Sedan",
		CarSize:     models.CarSizeMedium,
		DriverName:  "J. Doe",
		PhoneNumber: "0780000000",
	}
	if err := store.CreateCar(context.Background(), &car); err != nil {
		t.Fatalf("CreateCar failed: %v", err)
	}
	return car
}

func mustCreateService(t *testing.T, store *SQLiteStore, date, plate string, pkgNumber int64) models.ServicePackage {
	t.Helper()
	sp := models.ServicePackage{ServiceDate: date, PlateNumber: plate, PackageNumber: pkgNumber}
	if err := store.CreateServicePackage(context.Background(), &sp); err != nil {
		t.Fatalf("CreateServicePackage failed: %v", err)
	}
	return sp
}

func TestPackageCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Create assigns a number", func(t *testing.T) {
		pkg := mustCreatePackage(t, store, "Basic Wash", "10.00")
		if pkg.PackageNumber == 0 {
			t.Error("Expected package number to be assigned")
		}
	})

	t.Run("Get returns the stored row", func(t *testing.T) {
		pkg := mustCreatePackage(t, store, "Deluxe Wash", "25.50")
		got, err := store.GetPackage(ctx, pkg.PackageNumber)
		if err != nil {
			t.Fatalf("GetPackage failed: %v", err)
		}
		if got.PackageName != "Deluxe Wash" {
			t.Errorf("Name mismatch: got %s", got.PackageName)
		}
		if got.PackagePrice.String() != "25.50" {
			t.Errorf("Price mismatch: got %s", got.PackagePrice)
		}
	})

	t.Run("Get missing returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetPackage(ctx, 99999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Update rewrites fields", func(t *testing.T) {
		pkg := mustCreatePackage(t, store, "Quick Wash", "5.00")
		pkg.PackageName = "Quick Wash Plus"
		pkg.PackagePrice = models.MoneyFromFloat(7.5)
		if err := store.UpdatePackage(ctx, &pkg); err != nil {
			t.Fatalf("UpdatePackage failed: %v", err)
		}
		got, err := store.GetPackage(ctx, pkg.PackageNumber)
		if err != nil {
			t.Fatalf("GetPackage failed: %v", err)
		}
		if got.PackageName != "Quick Wash Plus" || got.PackagePrice.String() != "7.50" {
			t.Errorf("Update not persisted: %+v", got)
		}
	})

	t.Run("Update missing returns ErrNotFound and never creates", func(t *testing.T) {
		pkg := models.Package{PackageNumber: 99999, PackageName: "Ghost", PackagePrice: models.MoneyFromFloat(1)}
		if err := store.UpdatePackage(ctx, &pkg); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if _, err := store.GetPackage(ctx, 99999); !errors.Is(err, storage.ErrNotFound) {
			t.Error("Update on absence must not create a row")
		}
	})

	t.Run("Delete then Get returns ErrNotFound", func(t *testing.T) {
		pkg := mustCreatePackage(t, store, "Throwaway", "1.00")
		if err := store.DeletePackage(ctx, pkg.PackageNumber); err != nil {
			t.Fatalf("DeletePackage failed: %v", err)
		}
		if _, err := store.GetPackage(ctx, pkg.PackageNumber); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("Numbers are monotonic and never reused", func(t *testing.T) {
		a := mustCreatePackage(t, store, "A", "1.00")
		if err := store.DeletePackage(ctx, a.PackageNumber); err != nil {
			t.Fatalf("DeletePackage failed: %v", err)
		}
		b := mustCreatePackage(t, store, "B", "1.00")
		if b.PackageNumber <= a.PackageNumber {
			t.Errorf("Expected number after %d, got %d", a.PackageNumber, b.PackageNumber)
		}
	})
}

func TestCarCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Create and Get round trip", func(t *testing.T) {
		car := mustCreateCar(t, store, "RAB123A")
		got, err := store.GetCar(ctx, car.PlateNumber)
		if err != nil {
			t.Fatalf("GetCar failed: %v", err)
		}
		if *got != car {
			t.Errorf("Round trip mismatch: got %+v, want %+v", *got, car)
		}
	})

	t.Run("Duplicate plate returns ErrDuplicateKey", func(t *testing.T) {
		mustCreateCar(t, store, "RAB200B")
		dup := models.Car{
			PlateNumber: "RAB200B",
			CarType:     "SUV",
			CarSize:     models.CarSizeLarge,
			DriverName:  "Other",
			PhoneNumber: "0781111111",
		}
		if err := store.CreateCar(ctx, &dup); !errors.Is(err, storage.ErrDuplicateKey) {
			t.Errorf("Expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("Invalid car size rejected by the schema", func(t *testing.T) {
		car := models.Car{
			PlateNumber: "RAB300C",
			CarType:     "Sedan",
			CarSize:     "Gigantic",
			DriverName:  "J. Doe",
			PhoneNumber: "0780000000",
		}
		if err := store.CreateCar(ctx, &car); !errors.Is(err, storage.ErrValidation) {
			t.Errorf("Expected ErrValidation, got %v", err)
		}
	})

	t.Run("Update keeps the plate immutable", func(t *testing.T) {
		car := mustCreateCar(t, store, "RAB400D")
		car.DriverName = "New Driver"
		car.CarSize = models.CarSizeSmall
		if err := store.UpdateCar(ctx, &car); err != nil {
			t.Fatalf("UpdateCar failed: %v", err)
		}
		got, err := store.GetCar(ctx, "RAB400D")
		if err != nil {
			t.Fatalf("GetCar failed: %v", err)
		}
		if got.DriverName != "New Driver" || got.CarSize != models.CarSizeSmall {
			t.Errorf("Update not persisted: %+v", got)
		}
	})

	t.Run("Delete then Get returns ErrNotFound", func(t *testing.T) {
		mustCreateCar(t, store, "RAB500E")
		if err := store.DeleteCar(ctx, "RAB500E"); err != nil {
			t.Fatalf("DeleteCar failed: %v", err)
		}
		if _, err := store.GetCar(ctx, "RAB500E"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestServicePackageReferentialIntegrity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	pkg := mustCreatePackage(t, store, "Basic Wash", "10.00")
	car := mustCreateCar(t, store, "RAB123A")

	t.Run("Create with valid references round trips", func(t *testing.T) {
		sp := mustCreateService(t, store, "2024-01-05", car.PlateNumber, pkg.PackageNumber)
		got, err := store.GetServicePackage(ctx, sp.RecordNumber)
		if err != nil {
			t.Fatalf("GetServicePackage failed: %v", err)
		}
		if got.ServicePackage != sp {
			t.Errorf("Round trip mismatch: got %+v, want %+v", got.ServicePackage, sp)
		}
		if got.DriverName != car.DriverName || got.PackageName != pkg.PackageName {
			t.Errorf("Detail fields not joined: %+v", got)
		}
		if !got.PackagePrice.Equal(pkg.PackagePrice) {
			t.Errorf("Package price mismatch: got %s", got.PackagePrice)
		}
	})

	t.Run("Create with missing car persists nothing", func(t *testing.T) {
		before, err := store.ListServicePackages(ctx)
		if err != nil {
			t.Fatalf("ListServicePackages failed: %v", err)
		}
		sp := models.ServicePackage{ServiceDate: "2024-01-06", PlateNumber: "GHOST", PackageNumber: pkg.PackageNumber}
		if err := store.CreateServicePackage(ctx, &sp); !errors.Is(err, storage.ErrReferentialViolation) {
			t.Errorf("Expected ErrReferentialViolation, got %v", err)
		}
		after, err := store.ListServicePackages(ctx)
		if err != nil {
			t.Fatalf("ListServicePackages failed: %v", err)
		}
		if len(after) != len(before) {
			t.Errorf("Failed insert persisted a row: %d -> %d", len(before), len(after))
		}
	})

	t.Run("Create with missing package fails", func(t *testing.T) {
		sp := models.ServicePackage{ServiceDate: "2024-01-06", PlateNumber: car.PlateNumber, PackageNumber: 99999}
		if err := store.CreateServicePackage(ctx, &sp); !errors.Is(err, storage.ErrReferentialViolation) {
			t.Errorf("Expected ErrReferentialViolation, got %v", err)
		}
	})

	t.Run("Deleting a referenced car fails and changes nothing", func(t *testing.T) {
		mustCreateService(t, store, "2024-01-07", car.PlateNumber, pkg.PackageNumber)
		if err := store.DeleteCar(ctx, car.PlateNumber); !errors.Is(err, storage.ErrReferentialInUse) {
			t.Errorf("Expected ErrReferentialInUse, got %v", err)
		}
		if _, err := store.GetCar(ctx, car.PlateNumber); err != nil {
			t.Errorf("Car must survive a refused delete: %v", err)
		}
	})

	t.Run("Deleting a referenced package fails", func(t *testing.T) {
		if err := store.DeletePackage(ctx, pkg.PackageNumber); !errors.Is(err, storage.ErrReferentialInUse) {
			t.Errorf("Expected ErrReferentialInUse, got %v", err)
		}
		if _, err := store.GetPackage(ctx, pkg.PackageNumber); err != nil {
			t.Errorf("Package must survive a refused delete: %v", err)
		}
	})

	t.Run("Deleting a paid service record fails", func(t *testing.T) {
		sp := mustCreateService(t, store, "2024-01-08", car.PlateNumber, pkg.PackageNumber)
		pay := models.Payment{AmountPaid: models.MoneyFromFloat(10), PaymentDate: "2024-01-08", RecordNumber: sp.RecordNumber}
		if err := store.CreatePayment(ctx, &pay); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
		if err := store.DeleteServicePackage(ctx, sp.RecordNumber); !errors.Is(err, storage.ErrReferentialInUse) {
			t.Errorf("Expected ErrReferentialInUse, got %v", err)
		}
		if err := store.DeletePayment(ctx, pay.PaymentNumber); err != nil {
			t.Fatalf("DeletePayment failed: %v", err)
		}
		if err := store.DeleteServicePackage(ctx, sp.RecordNumber); err != nil {
			t.Errorf("Delete should succeed once the payment is gone: %v", err)
		}
	})

	t.Run("Update may re-point at another parent", func(t *testing.T) {
		other := mustCreatePackage(t, store, "Premium Wash", "30.00")
		sp := mustCreateService(t, store, "2024-01-09", car.PlateNumber, pkg.PackageNumber)
		sp.PackageNumber = other.PackageNumber
		if err := store.UpdateServicePackage(ctx, &sp); err != nil {
			t.Fatalf("UpdateServicePackage failed: %v", err)
		}
		sp.PackageNumber = 99999
		if err := store.UpdateServicePackage(ctx, &sp); !errors.Is(err, storage.ErrReferentialViolation) {
			t.Errorf("Expected ErrReferentialViolation, got %v", err)
		}
	})
}

func TestPaymentCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	pkg := mustCreatePackage(t, store, "Basic Wash", "10.00")
	car := mustCreateCar(t, store, "RAB123A")
	sp := mustCreateService(t, store, "2024-01-05", car.PlateNumber, pkg.PackageNumber)

	t.Run("Create and Get round trip with detail fields", func(t *testing.T) {
		pay := models.Payment{AmountPaid: models.MoneyFromFloat(10), PaymentDate: "2024-01-05", RecordNumber: sp.RecordNumber}
		if err := store.CreatePayment(ctx, &pay); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
		got, err := store.GetPayment(ctx, pay.PaymentNumber)
		if err != nil {
			t.Fatalf("GetPayment failed: %v", err)
		}
		if !got.AmountPaid.Equal(pay.AmountPaid) || got.PaymentDate != "2024-01-05" {
			t.Errorf("Round trip mismatch: %+v", got)
		}
		if got.PlateNumber != car.PlateNumber || got.PackageName != pkg.PackageName || got.ServiceDate != sp.ServiceDate {
			t.Errorf("Detail fields not joined: %+v", got)
		}
	})

	t.Run("Create against missing record fails", func(t *testing.T) {
		pay := models.Payment{AmountPaid: models.MoneyFromFloat(10), PaymentDate: "2024-01-05", RecordNumber: 99999}
		if err := store.CreatePayment(ctx, &pay); !errors.Is(err, storage.ErrReferentialViolation) {
			t.Errorf("Expected ErrReferentialViolation, got %v", err)
		}
	})

	t.Run("Delete then Get returns ErrNotFound", func(t *testing.T) {
		pay := models.Payment{AmountPaid: models.MoneyFromFloat(5), PaymentDate: "2024-01-06", RecordNumber: sp.RecordNumber}
		if err := store.CreatePayment(ctx, &pay); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
		if err := store.DeletePayment(ctx, pay.PaymentNumber); err != nil {
			t.Fatalf("DeletePayment failed: %v", err)
		}
		if _, err := store.GetPayment(ctx, pay.PaymentNumber); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})
}
