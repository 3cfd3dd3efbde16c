package repository

import (
	"context"
	"log/slog"
	"strings"

	"invoicedesk/constants"
	"invoicedesk/gen/ent"
	"invoicedesk/gen/ent/category"
	"invoicedesk/gen/ent/subcategory"
	"invoicedesk/internal/entity"
	"invoicedesk/internal/utils"
)

type CategoryRepository interface {
	// ListCategories returns the taxonomy with subcategories eager-loaded,
	// in matcher walk order.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	// FindOrCreateByName resolves a category name to a row, creating it at
	// the end of the walk order when missing.
	FindOrCreateByName(ctx context.Context, name string) (*entity.Category, error)
	// EnsureSubcategory records an item description as a subcategory of the
	// given category so future scans auto-match it.
	EnsureSubcategory(ctx context.Context, categoryName, subName string) error
	// SeedDefaults installs the default taxonomy into an empty database.
	SeedDefaults(ctx context.Context) error
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := r.client.Category.
		Query().
		WithSubcategories(func(q *ent.SubcategoryQuery) {
			q.Order(subcategory.ByName())
		}).
		Order(category.ByPosition(), category.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Category, len(categories))
	for i, cat := range categories {
		result[i] = utils.ToCategory(cat)
	}
	return result, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	cat, err := r.client.Category.Query().
		Where(category.NameEqualFold(strings.TrimSpace(name))).
		WithSubcategories().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToCategory(cat), nil
}

func (r *categoryRepository) FindOrCreateByName(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = constants.OtherCategory
	}
	cat, err := r.client.Category.Query().
		Where(category.NameEqualFold(name)).
		First(ctx)
	if err == nil {
		return utils.ToCategory(cat), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	n, err := r.client.Category.Query().Count(ctx)
	if err != nil {
		return nil, err
	}
	created, err := r.client.Category.Create().
		SetName(name).
		SetPosition(n).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			cat, err2 := r.client.Category.Query().
				Where(category.NameEqualFold(name)).
				First(ctx)
			if err2 == nil {
				return utils.ToCategory(cat), nil
			}
		}
		return nil, err
	}
	r.logger.Info("category auto-created", "category_id", created.ID, "name", created.Name)
	return utils.ToCategory(created), nil
}

func (r *categoryRepository) EnsureSubcategory(ctx context.Context, categoryName, subName string) error {
	subName = strings.TrimSpace(subName)
	if subName == "" {
		return nil
	}
	cat, err := r.FindOrCreateByName(ctx, categoryName)
	if err != nil {
		return err
	}

	exists, err := r.client.Subcategory.Query().
		Where(
			subcategory.CategoryID(cat.ID),
			subcategory.NameEqualFold(subName),
		).
		Exist(ctx)
	if err != nil || exists {
		return err
	}

	_, err = r.client.Subcategory.Create().
		SetCategoryID(cat.ID).
		SetName(subName).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil
	}
	return err
}

func (r *categoryRepository) SeedDefaults(ctx context.Context) error {
	n, err := r.client.Category.Query().Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	r.logger.Info("seeding default taxonomy")
	for i, seed := range constants.DefaultTaxonomy {
		cat, err := r.client.Category.Create().
			SetName(seed.Name).
			SetPosition(i).
			Save(ctx)
		if err != nil {
			return err
		}
		for _, sub := range seed.Subcategories {
			if _, err := r.client.Subcategory.Create().
				SetCategoryID(cat.ID).
				SetName(sub).
				Save(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
