package export_test

import (
	"bytes"
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"invoicedesk/constants"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/export"
	"invoicedesk/internal/repository"
)

type fakeInvoiceRepo struct {
	listed     []*entity.Invoice
	byID       []*entity.Invoice
	lastFilter repository.ListInvoicesFilter
	lastIDs    []uuid.UUID
	pushedIDs  []uuid.UUID
	pushErr    error
}

func (f *fakeInvoiceRepo) CreateInvoice(context.Context, *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	panic("not used")
}

func (f *fakeInvoiceRepo) GetInvoice(context.Context, uuid.UUID) (*entity.Invoice, error) {
	panic("not used")
}

func (f *fakeInvoiceRepo) ListInvoices(_ context.Context, filter repository.ListInvoicesFilter) ([]*entity.Invoice, error) {
	f.lastFilter = filter
	return f.listed, nil
}

func (f *fakeInvoiceRepo) GetInvoices(_ context.Context, ids []uuid.UUID) ([]*entity.Invoice, error) {
	f.lastIDs = ids
	return f.byID, nil
}

func (f *fakeInvoiceRepo) LastUnitPrice(context.Context, string) (*repository.PriceHistory, error) {
	panic("not used")
}

func (f *fakeInvoiceRepo) MarkPushedToTally(_ context.Context, ids []uuid.UUID) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushedIDs = ids
	return nil
}

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "GST-2024-001",
		InvoiceDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		VendorName:    "Sharma Traders",
		VendorGSTIN:   "27AABCS1234A1Z5",
		Items: []entity.InvoiceItem{
			{
				Description:  "Rice (Basmati)",
				Quantity:     decimal.NewFromInt(10),
				Unit:         "kg",
				UnitPrice:    decimal.NewFromInt(80),
				GSTRate:      decimal.NewFromInt(5),
				CategoryName: "Grains",
			},
		},
		Subtotal:    decimal.NewFromInt(800),
		CGST:        decimal.NewFromInt(20),
		SGST:        decimal.NewFromInt(20),
		Cess:        decimal.Zero,
		TotalAmount: decimal.NewFromInt(840),
		Status:      string(constants.InvoiceStatusApproved),
	}
}

var _ = Describe("Service.Resolve", func() {
	var repo *fakeInvoiceRepo
	var svc *export.Service

	BeforeEach(func() {
		repo = &fakeInvoiceRepo{}
		svc = export.NewService(repo, nil)
	})

	It("prefers explicit invoice ids over a date window", func() {
		id := uuid.New()
		repo.byID = []*entity.Invoice{sampleInvoice()}
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		got, err := svc.Resolve(context.Background(), []uuid.UUID{id}, &from, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(1))
		Expect(repo.lastIDs).To(Equal([]uuid.UUID{id}))
	})

	It("defaults the end of a from-only window to today", func() {
		from := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)

		_, err := svc.Resolve(context.Background(), nil, &from, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.lastFilter.From).NotTo(BeNil())
		Expect(repo.lastFilter.From.Hour()).To(Equal(0))
		Expect(repo.lastFilter.To).NotTo(BeNil())

		today := time.Now().UTC()
		Expect(repo.lastFilter.To.Year()).To(Equal(today.Year()))
		Expect(repo.lastFilter.To.YearDay()).To(Equal(today.YearDay()))
	})

	It("passes an empty filter when no selection is given", func() {
		_, err := svc.Resolve(context.Background(), nil, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.lastFilter.From).To(BeNil())
		Expect(repo.lastFilter.To).To(BeNil())
	})
})

var _ = Describe("Service.ExportXLSX", func() {
	It("writes invoice and item sheets", func() {
		svc := export.NewService(&fakeInvoiceRepo{}, nil)
		out, err := svc.ExportXLSX([]*entity.Invoice{sampleInvoice()})
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		invNo, err := f.GetCellValue("Invoices", "A2")
		Expect(err).NotTo(HaveOccurred())
		Expect(invNo).To(Equal("GST-2024-001"))

		total, err := f.GetCellValue("Invoices", "H2")
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal("840.00"))

		item, err := f.GetCellValue("Items", "C2")
		Expect(err).NotTo(HaveOccurred())
		Expect(item).To(Equal("Rice (Basmati)"))

		amount, err := f.GetCellValue("Items", "I2")
		Expect(err).NotTo(HaveOccurred())
		Expect(amount).To(Equal("840.00"))
	})

	It("renders a missing vendor as a dash", func() {
		inv := sampleInvoice()
		inv.VendorName = ""
		svc := export.NewService(&fakeInvoiceRepo{}, nil)

		out, err := svc.ExportXLSX([]*entity.Invoice{inv})
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		vendor, err := f.GetCellValue("Invoices", "C2")
		Expect(err).NotTo(HaveOccurred())
		Expect(vendor).To(Equal("—"))
	})
})

var _ = Describe("BuildTallyXML", func() {
	It("renders a purchase voucher with party, purchase and GST ledgers", func() {
		out, err := export.BuildTallyXML([]*entity.Invoice{sampleInvoice()})
		Expect(err).NotTo(HaveOccurred())

		xmlStr := string(out)
		Expect(xmlStr).To(ContainSubstring("<TALLYREQUEST>Import Data</TALLYREQUEST>"))
		Expect(xmlStr).To(ContainSubstring("<REPORTNAME>Vouchers</REPORTNAME>"))
		Expect(xmlStr).To(ContainSubstring(`VCHTYPE="Purchase"`))
		Expect(xmlStr).To(ContainSubstring(`ACTION="Create"`))
		Expect(xmlStr).To(ContainSubstring("<DATE>20240315</DATE>"))
		Expect(xmlStr).To(ContainSubstring("<VOUCHERNUMBER>GST-2024-001</VOUCHERNUMBER>"))
		Expect(xmlStr).To(ContainSubstring("<PARTYLEDGERNAME>Sharma Traders</PARTYLEDGERNAME>"))
		Expect(xmlStr).To(ContainSubstring("<PARTYGSTIN>27AABCS1234A1Z5</PARTYGSTIN>"))

		// Party credited for the full amount, purchases debited net of tax.
		Expect(xmlStr).To(ContainSubstring("<AMOUNT>-840.00</AMOUNT>"))
		Expect(xmlStr).To(ContainSubstring("<LEDGERNAME>Purchase Account</LEDGERNAME>"))
		Expect(xmlStr).To(ContainSubstring("<AMOUNT>800.00</AMOUNT>"))
		Expect(xmlStr).To(ContainSubstring("<LEDGERNAME>GST Input</LEDGERNAME>"))
		Expect(xmlStr).To(ContainSubstring("<AMOUNT>40.00</AMOUNT>"))

		Expect(xmlStr).To(ContainSubstring("<STOCKITEMNAME>Rice (Basmati)</STOCKITEMNAME>"))
		Expect(xmlStr).To(ContainSubstring("<RATE>80.00/kg</RATE>"))
		Expect(xmlStr).To(ContainSubstring("<ACTUALQTY>10 kg</ACTUALQTY>"))
	})

	It("falls back to Unknown Vendor and omits GSTIN and the GST ledger", func() {
		inv := sampleInvoice()
		inv.VendorName = ""
		inv.VendorGSTIN = ""
		inv.CGST = decimal.Zero
		inv.SGST = decimal.Zero
		inv.TotalAmount = decimal.NewFromInt(800)

		out, err := export.BuildTallyXML([]*entity.Invoice{inv})
		Expect(err).NotTo(HaveOccurred())

		xmlStr := string(out)
		Expect(xmlStr).To(ContainSubstring("<PARTYLEDGERNAME>Unknown Vendor</PARTYLEDGERNAME>"))
		Expect(xmlStr).NotTo(ContainSubstring("PARTYGSTIN"))
		Expect(xmlStr).NotTo(ContainSubstring("GST Input"))
	})

	It("emits one TALLYMESSAGE per invoice", func() {
		a := sampleInvoice()
		b := sampleInvoice()
		b.InvoiceNumber = "GST-2024-002"

		out, err := export.BuildTallyXML([]*entity.Invoice{a, b})
		Expect(err).NotTo(HaveOccurred())
		Expect(bytes.Count(out, []byte("<VOUCHER "))).To(Equal(2))
	})
})

var _ = Describe("Service.ExportTallyXML", func() {
	It("marks exported invoices as pushed", func() {
		repo := &fakeInvoiceRepo{}
		svc := export.NewService(repo, nil)
		inv := sampleInvoice()

		out, err := svc.ExportTallyXML(context.Background(), []*entity.Invoice{inv})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).NotTo(BeEmpty())
		Expect(repo.pushedIDs).To(Equal([]uuid.UUID{inv.ID}))
	})
})
