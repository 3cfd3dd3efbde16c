package constants

// ScanStatus is the canonical status for rows in scan_job.
type ScanStatus string

// Stable values (store these exact strings in DB).
const (
	ScanStatusQueued  ScanStatus = "QUEUED"  // accepted, waiting for a worker
	ScanStatusRunning ScanStatus = "RUNNING" // OCR in progress
	ScanStatusOCROK   ScanStatus = "OCR_OK"  // text extracted, parsing pending
	ScanStatusParsed  ScanStatus = "PARSED"  // extraction offered for review
	ScanStatusFailed  ScanStatus = "FAILED"  // terminal failure
)

// InvoiceStatus tracks an invoice through the review and export lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "DRAFT"
	InvoiceStatusReviewed      InvoiceStatus = "REVIEWED"
	InvoiceStatusApproved      InvoiceStatus = "APPROVED"
	InvoiceStatusPushedToTally InvoiceStatus = "PUSHED_TO_TALLY"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
)

// ScanStatusValues lists the stable scan statuses for schema validators.
func ScanStatusValues() []string {
	return []string{
		string(ScanStatusQueued),
		string(ScanStatusRunning),
		string(ScanStatusOCROK),
		string(ScanStatusParsed),
		string(ScanStatusFailed),
	}
}

// InvoiceStatusValues lists the stable invoice statuses for schema validators.
func InvoiceStatusValues() []string {
	return []string{
		string(InvoiceStatusDraft),
		string(InvoiceStatusReviewed),
		string(InvoiceStatusApproved),
		string(InvoiceStatusPushedToTally),
		string(InvoiceStatusPaid),
	}
}
