package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database tables.
// These run on startup and are idempotent.
// IMPORTANT: Car and Package must be created BEFORE ServicePackage, and
// ServicePackage before Payment, due to foreign key constraints.
//
// AUTOINCREMENT keeps generated identities monotonic: a deleted number
// is never handed out again. Foreign keys carry no ON DELETE action, so
// deleting a referenced parent fails instead of cascading.
const schema = `
CREATE TABLE IF NOT EXISTS Package (
    PackageNumber INTEGER PRIMARY KEY AUTOINCREMENT,
    PackageName TEXT NOT NULL,
    PackageDescription TEXT NOT NULL DEFAULT '',
    PackagePrice NUMERIC NOT NULL CHECK (PackagePrice >= 0)
);

CREATE TABLE IF NOT EXISTS Car (
    PlateNumber TEXT PRIMARY KEY,
    CarType TEXT NOT NULL,
    CarSize TEXT NOT NULL CHECK (CarSize IN ('Small', 'Medium', 'Large')),
    DriverName TEXT NOT NULL,
    PhoneNumber TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ServicePackage (
    RecordNumber INTEGER PRIMARY KEY AUTOINCREMENT,
    ServiceDate TEXT NOT NULL,
    PlateNumber TEXT NOT NULL,
    PackageNumber INTEGER NOT NULL,
    FOREIGN KEY (PlateNumber) REFERENCES Car(PlateNumber),
    FOREIGN KEY (PackageNumber) REFERENCES Package(PackageNumber)
);

CREATE TABLE IF NOT EXISTS Payment (
    PaymentNumber INTEGER PRIMARY KEY AUTOINCREMENT,
    AmountPaid NUMERIC NOT NULL CHECK (AmountPaid > 0),
    PaymentDate TEXT NOT NULL,
    RecordNumber INTEGER NOT NULL,
    FOREIGN KEY (RecordNumber) REFERENCES ServicePackage(RecordNumber)
);

CREATE INDEX IF NOT EXISTS idx_servicepackage_plate ON ServicePackage(PlateNumber);
CREATE INDEX IF NOT EXISTS idx_servicepackage_package ON ServicePackage(PackageNumber);
CREATE INDEX IF NOT EXISTS idx_payment_record ON Payment(RecordNumber);
`

// ensureSchema executes the schema setup.
func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
