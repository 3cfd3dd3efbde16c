// Code generated by ent, DO NOT EDIT.

package ent

import (
	"invoicedesk/db/ent/schema"
	"invoicedesk/gen/ent/category"
	"invoicedesk/gen/ent/invoice"
	"invoicedesk/gen/ent/invoiceitem"
	"invoicedesk/gen/ent/scanjob"
	"invoicedesk/gen/ent/subcategory"
	"invoicedesk/gen/ent/vendor"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescPosition is the schema descriptor for position field.
	categoryDescPosition := categoryFields[2].Descriptor()
	// category.DefaultPosition holds the default value on creation for the position field.
	category.DefaultPosition = categoryDescPosition.Default.(int)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[2].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[9].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[12].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[13].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoiceitemFields := schema.InvoiceItem{}.Fields()
	_ = invoiceitemFields
	// invoiceitemDescDescription is the schema descriptor for description field.
	invoiceitemDescDescription := invoiceitemFields[2].Descriptor()
	// invoiceitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoiceitem.DescriptionValidator = invoiceitemDescDescription.Validators[0].(func(string) error)
	// invoiceitemDescUnit is the schema descriptor for unit field.
	invoiceitemDescUnit := invoiceitemFields[4].Descriptor()
	// invoiceitem.DefaultUnit holds the default value on creation for the unit field.
	invoiceitem.DefaultUnit = invoiceitemDescUnit.Default.(string)
	// invoiceitemDescCategoryName is the schema descriptor for category_name field.
	invoiceitemDescCategoryName := invoiceitemFields[7].Descriptor()
	// invoiceitem.DefaultCategoryName holds the default value on creation for the category_name field.
	invoiceitem.DefaultCategoryName = invoiceitemDescCategoryName.Default.(string)
	// invoiceitemDescCreatedAt is the schema descriptor for created_at field.
	invoiceitemDescCreatedAt := invoiceitemFields[8].Descriptor()
	// invoiceitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceitem.DefaultCreatedAt = invoiceitemDescCreatedAt.Default.(func() time.Time)
	// invoiceitemDescID is the schema descriptor for id field.
	invoiceitemDescID := invoiceitemFields[0].Descriptor()
	// invoiceitem.DefaultID holds the default value on creation for the id field.
	invoiceitem.DefaultID = invoiceitemDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescFileName is the schema descriptor for file_name field.
	scanjobDescFileName := scanjobFields[2].Descriptor()
	// scanjob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	scanjob.FileNameValidator = scanjobDescFileName.Validators[0].(func(string) error)
	// scanjobDescSourceType is the schema descriptor for source_type field.
	scanjobDescSourceType := scanjobFields[3].Descriptor()
	// scanjob.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	scanjob.SourceTypeValidator = func() func(string) error {
		validators := scanjobDescSourceType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_type string) error {
			for _, fn := range fns {
				if err := fn(source_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanjobDescStatus is the schema descriptor for status field.
	scanjobDescStatus := scanjobFields[4].Descriptor()
	// scanjob.DefaultStatus holds the default value on creation for the status field.
	scanjob.DefaultStatus = scanjobDescStatus.Default.(string)
	// scanjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanjob.StatusValidator = scanjobDescStatus.Validators[0].(func(string) error)
	// scanjobDescCreatedAt is the schema descriptor for created_at field.
	scanjobDescCreatedAt := scanjobFields[10].Descriptor()
	// scanjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	scanjob.DefaultCreatedAt = scanjobDescCreatedAt.Default.(func() time.Time)
	// scanjobDescUpdatedAt is the schema descriptor for updated_at field.
	scanjobDescUpdatedAt := scanjobFields[11].Descriptor()
	// scanjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scanjob.DefaultUpdatedAt = scanjobDescUpdatedAt.Default.(func() time.Time)
	// scanjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scanjob.UpdateDefaultUpdatedAt = scanjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
	subcategoryFields := schema.Subcategory{}.Fields()
	_ = subcategoryFields
	// subcategoryDescName is the schema descriptor for name field.
	subcategoryDescName := subcategoryFields[2].Descriptor()
	// subcategory.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subcategory.NameValidator = subcategoryDescName.Validators[0].(func(string) error)
	// subcategoryDescID is the schema descriptor for id field.
	subcategoryDescID := subcategoryFields[0].Descriptor()
	// subcategory.DefaultID holds the default value on creation for the id field.
	subcategory.DefaultID = subcategoryDescID.Default.(func() uuid.UUID)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescName is the schema descriptor for name field.
	vendorDescName := vendorFields[1].Descriptor()
	// vendor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vendor.NameValidator = vendorDescName.Validators[0].(func(string) error)
	// vendorDescGstin is the schema descriptor for gstin field.
	vendorDescGstin := vendorFields[2].Descriptor()
	// vendor.GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	vendor.GstinValidator = vendorDescGstin.Validators[0].(func(string) error)
	// vendorDescCreatedAt is the schema descriptor for created_at field.
	vendorDescCreatedAt := vendorFields[5].Descriptor()
	// vendor.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendor.DefaultCreatedAt = vendorDescCreatedAt.Default.(func() time.Time)
	// vendorDescUpdatedAt is the schema descriptor for updated_at field.
	vendorDescUpdatedAt := vendorFields[6].Descriptor()
	// vendor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendor.DefaultUpdatedAt = vendorDescUpdatedAt.Default.(func() time.Time)
	// vendor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendor.UpdateDefaultUpdatedAt = vendorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendorDescID is the schema descriptor for id field.
	vendorDescID := vendorFields[0].Descriptor()
	// vendor.DefaultID holds the default value on creation for the id field.
	vendor.DefaultID = vendorDescID.Default.(func() uuid.UUID)
}
