package utils

import (
	"time"

	"invoicedesk/gen/ent"
	invoicedeskpb "invoicedesk/gen/proto/invoicedesk/v1"
	"invoicedesk/internal/entity"
)

// ParseYMD parses a YYYY-MM-DD date in UTC.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func ToVendor(v *ent.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:        v.ID,
		Name:      v.Name,
		GSTIN:     v.Gstin,
		Phone:     v.Phone,
		Address:   v.Address,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func ToCategory(c *ent.Category) *entity.Category {
	out := &entity.Category{
		ID:   c.ID,
		Name: c.Name,
	}
	for _, sub := range c.Edges.Subcategories {
		out.Subcategories = append(out.Subcategories, entity.Subcategory{
			ID:   sub.ID,
			Name: sub.Name,
		})
	}
	return out
}

func ToInvoiceItem(it *ent.InvoiceItem) entity.InvoiceItem {
	return entity.InvoiceItem{
		ID:           it.ID,
		Description:  it.Description,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		UnitPrice:    it.UnitPrice,
		GSTRate:      it.GstRate,
		CategoryName: it.CategoryName,
	}
}

func ToInvoice(inv *ent.Invoice) *entity.Invoice {
	out := &entity.Invoice{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		VendorID:      inv.VendorID,
		Subtotal:      inv.Subtotal,
		CGST:          inv.Cgst,
		SGST:          inv.Sgst,
		Cess:          inv.Cess,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		Notes:         inv.Notes,
		TallyPushedAt: inv.TallyPushedAt,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	if v := inv.Edges.Vendor; v != nil {
		out.VendorName = v.Name
		out.VendorGSTIN = v.Gstin
	}
	for _, it := range inv.Edges.Items {
		out.Items = append(out.Items, ToInvoiceItem(it))
	}
	return out
}

func ToScanJob(job *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:             job.ID,
		FileName:       job.FileName,
		SourceType:     job.SourceType,
		Status:         job.Status,
		OCRText:        job.OcrText,
		Confidence:     job.Confidence,
		ExtractedJSON:  string(job.ExtractedJSON),
		ReviewIssues:   job.ReviewIssues,
		FailureMessage: job.FailureMessage,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}

func ToPBVendor(v *entity.Vendor) *invoicedeskpb.Vendor {
	return &invoicedeskpb.Vendor{
		Id:        v.ID.String(),
		Name:      v.Name,
		Gstin:     v.GSTIN,
		Phone:     v.Phone,
		Address:   v.Address,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBCategory(c *entity.Category) *invoicedeskpb.Category {
	out := &invoicedeskpb.Category{
		Id:   c.ID.String(),
		Name: c.Name,
	}
	for _, sub := range c.Subcategories {
		out.Subcategories = append(out.Subcategories, &invoicedeskpb.Subcategory{
			Id:   sub.ID.String(),
			Name: sub.Name,
		})
	}
	return out
}

func ToPBInvoice(inv *entity.Invoice) *invoicedeskpb.Invoice {
	out := &invoicedeskpb.Invoice{
		Id:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		VendorName:    inv.VendorName,
		Subtotal:      inv.Subtotal.StringFixed(2),
		Cgst:          inv.CGST.StringFixed(2),
		Sgst:          inv.SGST.StringFixed(2),
		Cess:          inv.Cess.StringFixed(2),
		TotalAmount:   inv.TotalAmount.StringFixed(2),
		Status:        inv.Status,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if inv.VendorID != nil {
		out.VendorId = inv.VendorID.String()
	}
	if inv.TallyPushedAt != nil {
		out.TallyPushedAt = inv.TallyPushedAt.UTC().Format(time.RFC3339)
	}
	for _, it := range inv.Items {
		out.Items = append(out.Items, &invoicedeskpb.LineItem{
			Id:           it.ID.String(),
			Description:  it.Description,
			Quantity:     it.Quantity.String(),
			Unit:         it.Unit,
			UnitPrice:    it.UnitPrice.StringFixed(2),
			GstRate:      it.GSTRate.String(),
			CategoryName: it.CategoryName,
		})
	}
	return out
}

func ToPBExtracted(inv entity.ExtractedInvoice) *invoicedeskpb.ExtractedInvoice {
	out := &invoicedeskpb.ExtractedInvoice{
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		VendorName:    inv.VendorName,
		VendorGstin:   inv.VendorGSTIN,
		VendorPhone:   inv.VendorPhone,
		VendorAddress: inv.VendorAddress,
		Subtotal:      inv.Subtotal.String(),
		Cgst:          inv.CGST.String(),
		Sgst:          inv.SGST.String(),
		Cess:          inv.Cess.String(),
		TotalAmount:   inv.TotalAmount.String(),
		ItemsSubtotal: inv.ItemsSubtotal.String(),
		RawText:       inv.RawText,
	}
	for _, it := range inv.Items {
		out.Items = append(out.Items, &invoicedeskpb.ExtractedLineItem{
			Category:    it.Category,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   it.UnitPrice.String(),
			GstRate:     it.GSTRate.String(),
		})
	}
	return out
}
