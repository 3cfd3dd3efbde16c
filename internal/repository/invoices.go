package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invoicedesk/constants"
	"invoicedesk/gen/ent"
	"invoicedesk/gen/ent/invoice"
	"invoicedesk/gen/ent/invoiceitem"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/utils"
)

// CreateInvoiceRequest wraps parameters for persisting an approved invoice.
type CreateInvoiceRequest struct {
	InvoiceNumber string
	InvoiceDate   time.Time
	VendorID      *uuid.UUID
	VendorName    string // used to find-or-create when VendorID is nil
	Items         []entity.InvoiceItem
	Notes         string
	ScanJobID     *uuid.UUID
}

// ListInvoicesFilter narrows ListInvoices. Zero values mean "no constraint".
type ListInvoicesFilter struct {
	From     *time.Time
	To       *time.Time
	VendorID *uuid.UUID
	Status   string
}

// PriceHistory is the most recent purchase of an item description.
type PriceHistory struct {
	UnitPrice   decimal.Decimal
	InvoiceDate time.Time
	VendorName  string
}

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListInvoices(ctx context.Context, filter ListInvoicesFilter) ([]*entity.Invoice, error)
	GetInvoices(ctx context.Context, ids []uuid.UUID) ([]*entity.Invoice, error)
	// LastUnitPrice returns the latest recorded purchase of the given item
	// description, or nil when it was never bought.
	LastUnitPrice(ctx context.Context, description string) (*PriceHistory, error)
	// MarkPushedToTally stamps the export time and status on the invoices.
	MarkPushedToTally(ctx context.Context, ids []uuid.UUID) error
}

type invoiceRepository struct {
	client     *ent.Client
	vendors    VendorRepository
	categories CategoryRepository
	logger     *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, vendors VendorRepository, categories CategoryRepository, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client:     client,
		vendors:    vendors,
		categories: categories,
		logger:     logger,
	}
}

func (r *invoiceRepository) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error) {
	vendorID := req.VendorID
	if vendorID == nil && req.VendorName != "" {
		v, err := r.vendors.FindOrCreateByName(ctx, req.VendorName)
		if err != nil {
			return nil, fmt.Errorf("resolve vendor: %w", err)
		}
		vendorID = &v.ID
	}

	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, it := range req.Items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
		tax = tax.Add(it.GSTAmount())
	}
	// intra-state GST splits evenly between central and state halves
	half := tax.Div(decimal.NewFromInt(2)).Round(2)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	create := tx.Invoice.Create().
		SetInvoiceNumber(req.InvoiceNumber).
		SetInvoiceDate(req.InvoiceDate).
		SetSubtotal(subtotal.Round(2)).
		SetCgst(half).
		SetSgst(half).
		SetCess(decimal.Zero).
		SetTotalAmount(subtotal.Add(tax).Round(2)).
		SetNotes(req.Notes)
	if vendorID != nil {
		create = create.SetVendorID(*vendorID)
	}
	inv, err := create.Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}

	for _, it := range req.Items {
		unit := it.Unit
		if unit == "" {
			unit = constants.DefaultUnit
		}
		categoryName := it.CategoryName
		if categoryName == "" {
			categoryName = constants.OtherCategory
		}
		if _, err := tx.InvoiceItem.Create().
			SetInvoiceID(inv.ID).
			SetDescription(it.Description).
			SetQuantity(it.Quantity).
			SetUnit(unit).
			SetUnitPrice(it.UnitPrice).
			SetGstRate(it.GSTRate).
			SetCategoryName(categoryName).
			Save(ctx); err != nil {
			return nil, rollback(tx, err)
		}
	}

	if req.ScanJobID != nil {
		if err := tx.ScanJob.UpdateOneID(*req.ScanJobID).
			SetInvoiceID(inv.ID).
			Exec(ctx); err != nil {
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	// Grow the taxonomy outside the invoice transaction; a failure here
	// only costs future auto-matching.
	for _, it := range req.Items {
		if err := r.categories.EnsureSubcategory(ctx, it.CategoryName, it.Description); err != nil {
			r.logger.Warn("failed to record subcategory", "description", it.Description, "error", err)
		}
	}

	r.logger.Info("invoice created", "invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber, "items", len(req.Items))
	return r.GetInvoice(ctx, inv.ID)
}

func (r *invoiceRepository) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := r.client.Invoice.Query().
		Where(invoice.ID(id)).
		WithItems(func(q *ent.InvoiceItemQuery) {
			q.Order(invoiceitem.ByCreatedAt())
		}).
		WithVendor().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(inv), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, filter ListInvoicesFilter) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().
		WithItems().
		WithVendor()
	if filter.From != nil {
		q = q.Where(invoice.InvoiceDateGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(invoice.InvoiceDateLTE(*filter.To))
	}
	if filter.VendorID != nil {
		q = q.Where(invoice.VendorID(*filter.VendorID))
	}
	if filter.Status != "" {
		q = q.Where(invoice.Status(filter.Status))
	}

	invs, err := q.Order(invoice.ByInvoiceDate(), invoice.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(invs))
	for i, inv := range invs {
		result[i] = utils.ToInvoice(inv)
	}
	return result, nil
}

func (r *invoiceRepository) GetInvoices(ctx context.Context, ids []uuid.UUID) ([]*entity.Invoice, error) {
	invs, err := r.client.Invoice.Query().
		Where(invoice.IDIn(ids...)).
		WithItems().
		WithVendor().
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Invoice, len(invs))
	for i, inv := range invs {
		result[i] = utils.ToInvoice(inv)
	}
	return result, nil
}

func (r *invoiceRepository) LastUnitPrice(ctx context.Context, description string) (*PriceHistory, error) {
	row, err := r.client.InvoiceItem.Query().
		Where(invoiceitem.DescriptionEqualFold(description)).
		Order(ent.Desc(invoiceitem.FieldCreatedAt)).
		WithInvoice(func(q *ent.InvoiceQuery) {
			q.WithVendor()
		}).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	hist := &PriceHistory{UnitPrice: row.UnitPrice}
	if inv := row.Edges.Invoice; inv != nil {
		hist.InvoiceDate = inv.InvoiceDate
		if v := inv.Edges.Vendor; v != nil {
			hist.VendorName = v.Name
		}
	}
	return hist, nil
}

func (r *invoiceRepository) MarkPushedToTally(ctx context.Context, ids []uuid.UUID) error {
	return r.client.Invoice.Update().
		Where(invoice.IDIn(ids...)).
		SetStatus(string(constants.InvoiceStatusPushedToTally)).
		SetTallyPushedAt(time.Now()).
		Exec(ctx)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}
