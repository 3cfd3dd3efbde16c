// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "invoice_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "subtotal", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cgst", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "sgst", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cess", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeString, Default: "DRAFT"},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "tally_pushed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "vendor_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_vendors_invoices",
				Columns:    []*schema.Column{InvoicesColumns[13]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[2]},
			},
			{
				Name:    "invoice_vendor_id_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[13], InvoicesColumns[2]},
			},
			{
				Name:    "invoice_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1]},
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit", Type: field.TypeString, Default: "pcs"},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "gst_rate", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "category_name", Type: field.TypeString, Default: "Other"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_items_invoices_items",
				Columns:    []*schema.Column{InvoiceItemsColumns[8]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceitem_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{InvoiceItemsColumns[8]},
			},
			{
				Name:    "invoiceitem_description_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceItemsColumns[1], InvoiceItemsColumns[7]},
			},
		},
	}
	// ScanJobColumns holds the columns for the "scan_job" table.
	ScanJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "review_issues", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
	}
	// ScanJobTable holds the schema information for the "scan_job" table.
	ScanJobTable = &schema.Table{
		Name:       "scan_job",
		Columns:    ScanJobColumns,
		PrimaryKey: []*schema.Column{ScanJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_job_invoices_scans",
				Columns:    []*schema.Column{ScanJobColumns[11]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[3], ScanJobColumns[9]},
			},
			{
				Name:    "scanjob_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[11]},
			},
		},
	}
	// SubcategoriesColumns holds the columns for the "subcategories" table.
	SubcategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// SubcategoriesTable holds the schema information for the "subcategories" table.
	SubcategoriesTable = &schema.Table{
		Name:       "subcategories",
		Columns:    SubcategoriesColumns,
		PrimaryKey: []*schema.Column{SubcategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subcategories_categories_subcategories",
				Columns:    []*schema.Column{SubcategoriesColumns[2]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subcategory_category_id_name",
				Unique:  true,
				Columns: []*schema.Column{SubcategoriesColumns[2], SubcategoriesColumns[1]},
			},
		},
	}
	// VendorsColumns holds the columns for the "vendors" table.
	VendorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "gstin", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VendorsTable holds the schema information for the "vendors" table.
	VendorsTable = &schema.Table{
		Name:       "vendors",
		Columns:    VendorsColumns,
		PrimaryKey: []*schema.Column{VendorsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		InvoicesTable,
		InvoiceItemsTable,
		ScanJobTable,
		SubcategoriesTable,
		VendorsTable,
	}
)

func init() {
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	InvoicesTable.ForeignKeys[0].RefTable = VendorsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceItemsTable.Annotation = &entsql.Annotation{
		Table: "invoice_items",
	}
	ScanJobTable.ForeignKeys[0].RefTable = InvoicesTable
	ScanJobTable.Annotation = &entsql.Annotation{
		Table: "scan_job",
	}
	SubcategoriesTable.ForeignKeys[0].RefTable = CategoriesTable
	SubcategoriesTable.Annotation = &entsql.Annotation{
		Table: "subcategories",
	}
	VendorsTable.Annotation = &entsql.Annotation{
		Table: "vendors",
	}
}
