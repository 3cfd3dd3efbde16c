package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invoicedesk/constants"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/repository"
)

type fakeInvoiceRepo struct {
	created    *repository.CreateInvoiceRequest
	invoice    *entity.Invoice
	invoices   []*entity.Invoice
	history    map[string]*repository.PriceHistory
	pushedIDs  []uuid.UUID
	lastFilter repository.ListInvoicesFilter
	err        error
}

func (f *fakeInvoiceRepo) CreateInvoice(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return f.invoice, nil
}

func (f *fakeInvoiceRepo) GetInvoice(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	if f.invoice == nil || f.invoice.ID != id {
		return nil, errors.New("not found")
	}
	return f.invoice, nil
}

func (f *fakeInvoiceRepo) ListInvoices(_ context.Context, filter repository.ListInvoicesFilter) ([]*entity.Invoice, error) {
	f.lastFilter = filter
	return f.invoices, f.err
}

func (f *fakeInvoiceRepo) GetInvoices(_ context.Context, ids []uuid.UUID) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(ids))
	for _, inv := range f.invoices {
		for _, id := range ids {
			if inv.ID == id {
				out = append(out, inv)
			}
		}
	}
	return out, f.err
}

func (f *fakeInvoiceRepo) LastUnitPrice(_ context.Context, description string) (*repository.PriceHistory, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history[description], nil
}

func (f *fakeInvoiceRepo) MarkPushedToTally(_ context.Context, ids []uuid.UUID) error {
	f.pushedIDs = append(f.pushedIDs, ids...)
	return nil
}

type fakeVendorRepo struct {
	vendors []*entity.Vendor
	matched *entity.Vendor
	created *repository.CreateVendorRequest
	err     error
}

func (f *fakeVendorRepo) ListVendors(context.Context) ([]*entity.Vendor, error) {
	return f.vendors, f.err
}

func (f *fakeVendorRepo) GetVendor(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	for _, v := range f.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeVendorRepo) CreateVendor(_ context.Context, req *repository.CreateVendorRequest) (*entity.Vendor, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return &entity.Vendor{
		ID:      uuid.New(),
		Name:    req.Name,
		GSTIN:   req.GSTIN,
		Phone:   req.Phone,
		Address: req.Address,
	}, nil
}

func (f *fakeVendorRepo) MatchVendor(context.Context, string, string) (*entity.Vendor, error) {
	return f.matched, f.err
}

func (f *fakeVendorRepo) FindOrCreateByName(_ context.Context, name string) (*entity.Vendor, error) {
	return &entity.Vendor{ID: uuid.New(), Name: name}, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (f *fakeCategoryRepo) ListCategories(context.Context) ([]*entity.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryRepo) FindByName(context.Context, string) (*entity.Category, error) {
	return nil, errors.New("not found")
}

func (f *fakeCategoryRepo) FindOrCreateByName(_ context.Context, name string) (*entity.Category, error) {
	return &entity.Category{ID: uuid.New(), Name: name}, nil
}

func (f *fakeCategoryRepo) EnsureSubcategory(context.Context, string, string) error {
	return nil
}

func (f *fakeCategoryRepo) SeedDefaults(context.Context) error {
	return nil
}

type fakeScanJobRepo struct {
	job      *entity.ScanJob
	running  []uuid.UUID
	ocrOK    []uuid.UUID
	parsed   []uuid.UUID
	failed   map[uuid.UUID]string
	lastJSON json.RawMessage
}

func newFakeScanJobRepo() *fakeScanJobRepo {
	return &fakeScanJobRepo{failed: make(map[uuid.UUID]string)}
}

func (f *fakeScanJobRepo) CreateScanJob(_ context.Context, fileName, sourceType string) (*entity.ScanJob, error) {
	f.job = &entity.ScanJob{
		ID:         uuid.New(),
		FileName:   fileName,
		SourceType: sourceType,
		Status:     string(constants.ScanStatusQueued),
		CreatedAt:  time.Now(),
	}
	return f.job, nil
}

func (f *fakeScanJobRepo) MarkRunning(_ context.Context, id uuid.UUID) error {
	f.running = append(f.running, id)
	return nil
}

func (f *fakeScanJobRepo) MarkOCROK(_ context.Context, id uuid.UUID, _ string, _ float32) error {
	f.ocrOK = append(f.ocrOK, id)
	return nil
}

func (f *fakeScanJobRepo) MarkParsed(_ context.Context, id uuid.UUID, extracted json.RawMessage, _ []string) error {
	f.parsed = append(f.parsed, id)
	f.lastJSON = extracted
	return nil
}

func (f *fakeScanJobRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	f.failed[id] = message
	return nil
}

func (f *fakeScanJobRepo) GetScanJob(context.Context, uuid.UUID) (*entity.ScanJob, error) {
	return f.job, nil
}

func storedInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "GST-2024-010",
		InvoiceDate:   time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		VendorName:    "Sharma Traders",
		Items: []entity.InvoiceItem{
			{
				ID:           uuid.New(),
				Description:  "Sugar",
				Quantity:     decimal.NewFromInt(5),
				Unit:         "kg",
				UnitPrice:    decimal.NewFromInt(40),
				GSTRate:      decimal.NewFromInt(5),
				CategoryName: "Grains",
			},
		},
		Subtotal:    decimal.NewFromInt(200),
		CGST:        decimal.NewFromInt(5),
		SGST:        decimal.NewFromInt(5),
		TotalAmount: decimal.NewFromInt(210),
		Status:      string(constants.InvoiceStatusDraft),
	}
}
