package models

// Payment is money received against a service record. The schema does
// not cap payments at one per record; the unpaid-services report treats
// any payment row as "paid".
type Payment struct {
	// PaymentNumber is the storage-assigned identifier.
	PaymentNumber int64

	// AmountPaid is the positive amount received.
	AmountPaid Money

	// PaymentDate is the calendar date of the payment (YYYY-MM-DD).
	PaymentDate string

	// RecordNumber references an existing ServicePackage.
	RecordNumber int64
}

// PaymentDetail is a Payment enriched with display fields reached
// through its service record.
type PaymentDetail struct {
	Payment

	ServiceDate  string
	PlateNumber  string
	DriverName   string
	PackageName  string
	PackagePrice Money
}
