package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"invoicedesk/gen/ent"
	"invoicedesk/gen/ent/vendor"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/utils"
)

// CreateVendorRequest wraps parameters for creating a vendor.
type CreateVendorRequest struct {
	Name    string
	GSTIN   string
	Phone   string
	Address string
}

type VendorRepository interface {
	ListVendors(ctx context.Context) ([]*entity.Vendor, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	CreateVendor(ctx context.Context, req *CreateVendorRequest) (*entity.Vendor, error)
	// MatchVendor finds an existing vendor by GSTIN first, then by exact
	// case-insensitive name. Returns nil when nothing matches.
	MatchVendor(ctx context.Context, gstin, name string) (*entity.Vendor, error)
	// FindOrCreateByName returns the vendor with the given name, creating a
	// bare row when none exists.
	FindOrCreateByName(ctx context.Context, name string) (*entity.Vendor, error)
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{
		client: client,
		logger: logger,
	}
}

func (r *vendorRepository) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := r.client.Vendor.Query().
		Order(vendor.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list vendors", "error", err)
		return nil, err
	}

	result := make([]*entity.Vendor, len(vendors))
	for i, v := range vendors {
		result[i] = utils.ToVendor(v)
	}
	return result, nil
}

func (r *vendorRepository) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) CreateVendor(ctx context.Context, req *CreateVendorRequest) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Create().
		SetName(strings.TrimSpace(req.Name)).
		SetGstin(strings.ToUpper(strings.TrimSpace(req.GSTIN))).
		SetPhone(strings.TrimSpace(req.Phone)).
		SetAddress(strings.TrimSpace(req.Address)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create vendor", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("vendor created", "vendor_id", v.ID, "name", v.Name)
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) MatchVendor(ctx context.Context, gstin, name string) (*entity.Vendor, error) {
	gstin = strings.ToUpper(strings.TrimSpace(gstin))
	if gstin != "" {
		v, err := r.client.Vendor.Query().
			Where(vendor.Gstin(gstin)).
			First(ctx)
		if err == nil {
			return utils.ToVendor(v), nil
		}
		if !ent.IsNotFound(err) {
			return nil, err
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	v, err := r.client.Vendor.Query().
		Where(vendor.NameEqualFold(name)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) FindOrCreateByName(ctx context.Context, name string) (*entity.Vendor, error) {
	name = strings.TrimSpace(name)
	v, err := r.client.Vendor.Query().
		Where(vendor.NameEqualFold(name)).
		First(ctx)
	if err == nil {
		return utils.ToVendor(v), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	created, err := r.client.Vendor.Create().SetName(name).Save(ctx)
	if err != nil {
		// lost a create race; re-read
		if ent.IsConstraintError(err) {
			v, err2 := r.client.Vendor.Query().
				Where(vendor.NameEqualFold(name)).
				First(ctx)
			if err2 == nil {
				return utils.ToVendor(v), nil
			}
		}
		return nil, err
	}
	r.logger.Info("vendor auto-created", "vendor_id", created.ID, "name", created.Name)
	return utils.ToVendor(created), nil
}
