package server_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/export"
	"invoicedesk/internal/ocr"
	"invoicedesk/internal/parse"
	"invoicedesk/internal/repository"
	"invoicedesk/internal/server"
)

type fixtures struct {
	invoices *fakeInvoiceRepo
	vendors  *fakeVendorRepo
	cats     *fakeCategoryRepo
	scans    *fakeScanJobRepo
	svc      *server.InvoiceDeskService
}

func newFixtures() *fixtures {
	f := &fixtures{
		invoices: &fakeInvoiceRepo{},
		vendors:  &fakeVendorRepo{},
		cats:     &fakeCategoryRepo{},
		scans:    newFakeScanJobRepo(),
	}
	f.svc = server.NewInvoiceDeskService(server.Deps{
		InvoiceRepo:  f.invoices,
		VendorRepo:   f.vendors,
		CategoryRepo: f.cats,
		ScanJobRepo:  f.scans,
		Extractor:    ocr.NewExtractor(ocr.Config{}, nil),
		Parser:       parse.New(parse.DefaultConfig()),
		Exporter:     export.NewService(f.invoices, nil),
	})
	return f
}

func grpcCode(err error) codes.Code {
	st, ok := status.FromError(err)
	Expect(ok).To(BeTrue(), "expected a grpc status error, got %v", err)
	return st.Code()
}

var _ = Describe("ScanInvoice validation", func() {
	It("rejects an empty file path", func() {
		f := newFixtures()
		_, err := f.svc.ScanInvoice(context.Background(), &invoicedeskpb.ScanInvoiceRequest{})
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})

	It("rejects unsupported file types before creating a job", func() {
		f := newFixtures()
		_, err := f.svc.ScanInvoice(context.Background(), &invoicedeskpb.ScanInvoiceRequest{
			FilePath: "/uploads/invoice.docx",
		})
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
		Expect(f.scans.job).To(BeNil())
	})
})

var _ = Describe("CreateInvoice", func() {
	var f *fixtures

	BeforeEach(func() {
		f = newFixtures()
		f.invoices.invoice = storedInvoice()
	})

	validRequest := func() *invoicedeskpb.CreateInvoiceRequest {
		return &invoicedeskpb.CreateInvoiceRequest{
			InvoiceNumber: "GST-2024-010",
			InvoiceDate:   "2024-04-02",
			VendorName:    "Sharma Traders",
			Items: []*invoicedeskpb.NewLineItem{
				{
					Description: "Sugar",
					Quantity:    "5",
					Unit:        "kg",
					UnitPrice:   "40",
					GstRate:     "5",
				},
			},
		}
	}

	It("persists a valid invoice and returns it", func() {
		resp, err := f.svc.CreateInvoice(context.Background(), validRequest())
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetInvoice().GetInvoiceNumber()).To(Equal("GST-2024-010"))
		Expect(resp.GetInvoice().GetTotalAmount()).To(Equal("210.00"))

		Expect(f.invoices.created).NotTo(BeNil())
		Expect(f.invoices.created.Items).To(HaveLen(1))
		Expect(f.invoices.created.Items[0].Quantity.String()).To(Equal("5"))
	})

	It("defaults unit and category on items", func() {
		req := validRequest()
		req.Items[0].Unit = ""
		req.Items[0].CategoryName = ""

		_, err := f.svc.CreateInvoice(context.Background(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.invoices.created.Items[0].Unit).To(Equal("pcs"))
		Expect(f.invoices.created.Items[0].CategoryName).To(Equal("Other"))
	})

	It("requires an invoice number", func() {
		req := validRequest()
		req.InvoiceNumber = "  "
		_, err := f.svc.CreateInvoice(context.Background(), req)
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})

	It("rejects a malformed date", func() {
		req := validRequest()
		req.InvoiceDate = "02-04-2024"
		_, err := f.svc.CreateInvoice(context.Background(), req)
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})

	It("requires at least one item", func() {
		req := validRequest()
		req.Items = nil
		_, err := f.svc.CreateInvoice(context.Background(), req)
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})

	It("rejects a non-positive quantity", func() {
		req := validRequest()
		req.Items[0].Quantity = "0"
		_, err := f.svc.CreateInvoice(context.Background(), req)
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})

	It("rejects a malformed vendor id", func() {
		req := validRequest()
		req.VendorId = "not-a-uuid"
		_, err := f.svc.CreateInvoice(context.Background(), req)
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})
})

var _ = Describe("GetInvoice", func() {
	It("returns a stored invoice", func() {
		f := newFixtures()
		f.invoices.invoice = storedInvoice()

		resp, err := f.svc.GetInvoice(context.Background(), &invoicedeskpb.GetInvoiceRequest{
			Id: f.invoices.invoice.ID.String(),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetInvoice().GetVendorName()).To(Equal("Sharma Traders"))
		Expect(resp.GetInvoice().GetItems()).To(HaveLen(1))
	})

	It("maps a miss to NotFound", func() {
		f := newFixtures()
		_, err := f.svc.GetInvoice(context.Background(), &invoicedeskpb.GetInvoiceRequest{
			Id: uuid.NewString(),
		})
		Expect(grpcCode(err)).To(Equal(codes.NotFound))
	})

	It("rejects a malformed id", func() {
		f := newFixtures()
		_, err := f.svc.GetInvoice(context.Background(), &invoicedeskpb.GetInvoiceRequest{Id: "nope"})
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})
})

var _ = Describe("ListInvoices", func() {
	It("passes the date window and status through", func() {
		f := newFixtures()
		f.invoices.invoices = []*entity.Invoice{storedInvoice()}

		resp, err := f.svc.ListInvoices(context.Background(), &invoicedeskpb.ListInvoicesRequest{
			FromDate: "2024-04-01",
			ToDate:   "2024-04-30",
			Status:   "DRAFT",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetInvoices()).To(HaveLen(1))
		Expect(f.invoices.lastFilter.From.Format("2006-01-02")).To(Equal("2024-04-01"))
		Expect(f.invoices.lastFilter.To.Format("2006-01-02")).To(Equal("2024-04-30"))
		Expect(f.invoices.lastFilter.Status).To(Equal("DRAFT"))
	})

	It("rejects an unknown status", func() {
		f := newFixtures()
		_, err := f.svc.ListInvoices(context.Background(), &invoicedeskpb.ListInvoicesRequest{
			Status: "OPEN",
		})
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})
})

var _ = Describe("PriceCheck", func() {
	It("flags items whose price moved more than a paisa", func() {
		f := newFixtures()
		f.invoices.history = map[string]*repository.PriceHistory{
			"Sugar": {
				UnitPrice:   decimal.NewFromInt(40),
				InvoiceDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				VendorName:  "Sharma Traders",
			},
		}

		resp, err := f.svc.PriceCheck(context.Background(), &invoicedeskpb.PriceCheckRequest{
			Items: []*invoicedeskpb.PriceCheckItem{
				{Description: "Sugar", UnitPrice: "44"},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetChanges()).To(HaveLen(1))

		change := resp.GetChanges()[0]
		Expect(change.GetOldPrice()).To(Equal("40.00"))
		Expect(change.GetNewPrice()).To(Equal("44.00"))
		Expect(change.GetChange()).To(Equal("4.00"))
		Expect(change.GetChangePercent()).To(Equal("10.00"))
		Expect(change.GetLastDate()).To(Equal("2024-03-01"))
		Expect(change.GetLastVendor()).To(Equal("Sharma Traders"))
	})

	It("ignores unchanged and never-bought items", func() {
		f := newFixtures()
		f.invoices.history = map[string]*repository.PriceHistory{
			"Sugar": {UnitPrice: decimal.NewFromInt(40), InvoiceDate: time.Now()},
		}

		resp, err := f.svc.PriceCheck(context.Background(), &invoicedeskpb.PriceCheckRequest{
			Items: []*invoicedeskpb.PriceCheckItem{
				{Description: "Sugar", UnitPrice: "40.005"},
				{Description: "Salt", UnitPrice: "12"},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetChanges()).To(BeEmpty())
	})

	It("shows a dash when the last purchase has no vendor", func() {
		f := newFixtures()
		f.invoices.history = map[string]*repository.PriceHistory{
			"Sugar": {UnitPrice: decimal.NewFromInt(40), InvoiceDate: time.Now()},
		}

		resp, err := f.svc.PriceCheck(context.Background(), &invoicedeskpb.PriceCheckRequest{
			Items: []*invoicedeskpb.PriceCheckItem{
				{Description: "Sugar", UnitPrice: "50"},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetChanges()[0].GetLastVendor()).To(Equal("—"))
	})
})

var _ = Describe("Vendors", func() {
	It("lists vendors", func() {
		f := newFixtures()
		f.vendors.vendors = []*entity.Vendor{
			{ID: uuid.New(), Name: "Sharma Traders", GSTIN: "27AABCS1234A1Z5"},
		}
		resp, err := f.svc.ListVendors(context.Background(), &invoicedeskpb.ListVendorsRequest{})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetVendors()).To(HaveLen(1))
		Expect(resp.GetVendors()[0].GetGstin()).To(Equal("27AABCS1234A1Z5"))
	})

	It("creates a vendor with an uppercased GSTIN", func() {
		f := newFixtures()
		resp, err := f.svc.CreateVendor(context.Background(), &invoicedeskpb.CreateVendorRequest{
			Name:  "Patel Supplies",
			Gstin: "27aabcp1234a1z5",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetVendor().GetGstin()).To(Equal("27AABCP1234A1Z5"))
	})

	It("requires a name", func() {
		f := newFixtures()
		_, err := f.svc.CreateVendor(context.Background(), &invoicedeskpb.CreateVendorRequest{
			Gstin: "27AABCS1234A1Z5",
		})
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})

	It("rejects a malformed GSTIN", func() {
		f := newFixtures()
		_, err := f.svc.CreateVendor(context.Background(), &invoicedeskpb.CreateVendorRequest{
			Name:  "Patel Supplies",
			Gstin: "INVALID",
		})
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})
})

var _ = Describe("ListCategories", func() {
	It("returns categories with their subcategories", func() {
		f := newFixtures()
		f.cats.categories = []*entity.Category{
			{
				ID:   uuid.New(),
				Name: "Grains",
				Subcategories: []entity.Subcategory{
					{ID: uuid.New(), Name: "Rice (Basmati)"},
				},
			},
		}
		resp, err := f.svc.ListCategories(context.Background(), &invoicedeskpb.ListCategoriesRequest{})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetCategories()).To(HaveLen(1))
		Expect(resp.GetCategories()[0].GetSubcategories()).To(HaveLen(1))
	})
})

var _ = Describe("ExportInvoices", func() {
	var f *fixtures

	BeforeEach(func() {
		f = newFixtures()
		f.invoices.invoices = []*entity.Invoice{storedInvoice()}
	})

	It("defaults to an XLSX register", func() {
		resp, err := f.svc.ExportInvoices(context.Background(), &invoicedeskpb.ExportInvoicesRequest{
			InvoiceIds: []string{f.invoices.invoices[0].ID.String()},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetFileName()).To(HaveSuffix(".xlsx"))
		Expect(resp.GetContent()).NotTo(BeEmpty())
		Expect(resp.GetInvoiceCount()).To(Equal(int32(1)))
		Expect(f.invoices.pushedIDs).To(BeEmpty())
	})

	It("marks invoices pushed on a Tally export", func() {
		inv := f.invoices.invoices[0]
		resp, err := f.svc.ExportInvoices(context.Background(), &invoicedeskpb.ExportInvoicesRequest{
			InvoiceIds: []string{inv.ID.String()},
			Format:     invoicedeskpb.ExportFormat_EXPORT_FORMAT_TALLY_XML,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.GetFileName()).To(HaveSuffix(".xml"))
		Expect(string(resp.GetContent())).To(ContainSubstring("TALLYMESSAGE"))
		Expect(f.invoices.pushedIDs).To(Equal([]uuid.UUID{inv.ID}))
	})

	It("returns NotFound when nothing matches", func() {
		f.invoices.invoices = nil
		_, err := f.svc.ExportInvoices(context.Background(), &invoicedeskpb.ExportInvoicesRequest{})
		Expect(grpcCode(err)).To(Equal(codes.NotFound))
	})

	It("rejects a malformed invoice id", func() {
		_, err := f.svc.ExportInvoices(context.Background(), &invoicedeskpb.ExportInvoicesRequest{
			InvoiceIds: []string{"nope"},
		})
		Expect(grpcCode(err)).To(Equal(codes.InvalidArgument))
	})
})
