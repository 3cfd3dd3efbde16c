// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoicedesk/v1/invoicedesk.proto

package invoicedeskpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExportFormat int32

const (
	ExportFormat_EXPORT_FORMAT_UNSPECIFIED ExportFormat = 0
	ExportFormat_EXPORT_FORMAT_XLSX        ExportFormat = 1
	ExportFormat_EXPORT_FORMAT_TALLY_XML   ExportFormat = 2
)

// Enum value maps for ExportFormat.
var (
	ExportFormat_name = map[int32]string{
		0: "EXPORT_FORMAT_UNSPECIFIED",
		1: "EXPORT_FORMAT_XLSX",
		2: "EXPORT_FORMAT_TALLY_XML",
	}
	ExportFormat_value = map[string]int32{
		"EXPORT_FORMAT_UNSPECIFIED": 0,
		"EXPORT_FORMAT_XLSX":        1,
		"EXPORT_FORMAT_TALLY_XML":   2,
	}
)

func (x ExportFormat) Enum() *ExportFormat {
	p := new(ExportFormat)
	*p = x
	return p
}

func (x ExportFormat) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ExportFormat) Descriptor() protoreflect.EnumDescriptor {
	return file_invoicedesk_v1_invoicedesk_proto_enumTypes[0].Descriptor()
}

func (ExportFormat) Type() protoreflect.EnumType {
	return &file_invoicedesk_v1_invoicedesk_proto_enumTypes[0]
}

func (x ExportFormat) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ExportFormat.Descriptor instead.
func (ExportFormat) EnumDescriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{0}
}

type Vendor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Gstin         string                 `protobuf:"bytes,3,opt,name=gstin,proto3" json:"gstin,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	Address       string                 `protobuf:"bytes,5,opt,name=address,proto3" json:"address,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Vendor) Reset() {
	*x = Vendor{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vendor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vendor) ProtoMessage() {}

func (x *Vendor) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vendor.ProtoReflect.Descriptor instead.
func (*Vendor) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{0}
}

func (x *Vendor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vendor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vendor) GetGstin() string {
	if x != nil {
		return x.Gstin
	}
	return ""
}

func (x *Vendor) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Vendor) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Vendor) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Vendor) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Subcategory struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Subcategory) Reset() {
	*x = Subcategory{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Subcategory) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Subcategory) ProtoMessage() {}

func (x *Subcategory) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Subcategory.ProtoReflect.Descriptor instead.
func (*Subcategory) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{1}
}

func (x *Subcategory) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Subcategory) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type Category struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Subcategories []*Subcategory         `protobuf:"bytes,3,rep,name=subcategories,proto3" json:"subcategories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Category) Reset() {
	*x = Category{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Category) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Category) ProtoMessage() {}

func (x *Category) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Category.ProtoReflect.Descriptor instead.
func (*Category) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{2}
}

func (x *Category) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Category) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Category) GetSubcategories() []*Subcategory {
	if x != nil {
		return x.Subcategories
	}
	return nil
}

type ExtractedLineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      string                 `protobuf:"bytes,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	GstRate       string                 `protobuf:"bytes,5,opt,name=gst_rate,json=gstRate,proto3" json:"gst_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedLineItem) Reset() {
	*x = ExtractedLineItem{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedLineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedLineItem) ProtoMessage() {}

func (x *ExtractedLineItem) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedLineItem.ProtoReflect.Descriptor instead.
func (*ExtractedLineItem) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractedLineItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ExtractedLineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ExtractedLineItem) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *ExtractedLineItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *ExtractedLineItem) GetGstRate() string {
	if x != nil {
		return x.GstRate
	}
	return ""
}

type ExtractedInvoice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceNumber string                 `protobuf:"bytes,1,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,2,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD
	VendorName    string                 `protobuf:"bytes,3,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	VendorGstin   string                 `protobuf:"bytes,4,opt,name=vendor_gstin,json=vendorGstin,proto3" json:"vendor_gstin,omitempty"`
	VendorPhone   string                 `protobuf:"bytes,5,opt,name=vendor_phone,json=vendorPhone,proto3" json:"vendor_phone,omitempty"`
	VendorAddress string                 `protobuf:"bytes,6,opt,name=vendor_address,json=vendorAddress,proto3" json:"vendor_address,omitempty"`
	Items         []*ExtractedLineItem   `protobuf:"bytes,7,rep,name=items,proto3" json:"items,omitempty"`
	Subtotal      string                 `protobuf:"bytes,8,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Cgst          string                 `protobuf:"bytes,9,opt,name=cgst,proto3" json:"cgst,omitempty"`
	Sgst          string                 `protobuf:"bytes,10,opt,name=sgst,proto3" json:"sgst,omitempty"`
	Cess          string                 `protobuf:"bytes,11,opt,name=cess,proto3" json:"cess,omitempty"`
	TotalAmount   string                 `protobuf:"bytes,12,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	ItemsSubtotal string                 `protobuf:"bytes,13,opt,name=items_subtotal,json=itemsSubtotal,proto3" json:"items_subtotal,omitempty"`
	RawText       string                 `protobuf:"bytes,14,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedInvoice) Reset() {
	*x = ExtractedInvoice{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedInvoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedInvoice) ProtoMessage() {}

func (x *ExtractedInvoice) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedInvoice.ProtoReflect.Descriptor instead.
func (*ExtractedInvoice) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractedInvoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *ExtractedInvoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *ExtractedInvoice) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *ExtractedInvoice) GetVendorGstin() string {
	if x != nil {
		return x.VendorGstin
	}
	return ""
}

func (x *ExtractedInvoice) GetVendorPhone() string {
	if x != nil {
		return x.VendorPhone
	}
	return ""
}

func (x *ExtractedInvoice) GetVendorAddress() string {
	if x != nil {
		return x.VendorAddress
	}
	return ""
}

func (x *ExtractedInvoice) GetItems() []*ExtractedLineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ExtractedInvoice) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *ExtractedInvoice) GetCgst() string {
	if x != nil {
		return x.Cgst
	}
	return ""
}

func (x *ExtractedInvoice) GetSgst() string {
	if x != nil {
		return x.Sgst
	}
	return ""
}

func (x *ExtractedInvoice) GetCess() string {
	if x != nil {
		return x.Cess
	}
	return ""
}

func (x *ExtractedInvoice) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *ExtractedInvoice) GetItemsSubtotal() string {
	if x != nil {
		return x.ItemsSubtotal
	}
	return ""
}

func (x *ExtractedInvoice) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      string                 `protobuf:"bytes,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Unit          string                 `protobuf:"bytes,4,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,5,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	GstRate       string                 `protobuf:"bytes,6,opt,name=gst_rate,json=gstRate,proto3" json:"gst_rate,omitempty"`
	CategoryName  string                 `protobuf:"bytes,7,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{5}
}

func (x *LineItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *LineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LineItem) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *LineItem) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *LineItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *LineItem) GetGstRate() string {
	if x != nil {
		return x.GstRate
	}
	return ""
}

func (x *LineItem) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

type Invoice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,2,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,3,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD
	VendorId      string                 `protobuf:"bytes,4,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	VendorName    string                 `protobuf:"bytes,5,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,6,rep,name=items,proto3" json:"items,omitempty"`
	Subtotal      string                 `protobuf:"bytes,7,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Cgst          string                 `protobuf:"bytes,8,opt,name=cgst,proto3" json:"cgst,omitempty"`
	Sgst          string                 `protobuf:"bytes,9,opt,name=sgst,proto3" json:"sgst,omitempty"`
	Cess          string                 `protobuf:"bytes,10,opt,name=cess,proto3" json:"cess,omitempty"`
	TotalAmount   string                 `protobuf:"bytes,11,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	Status        string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	Notes         string                 `protobuf:"bytes,13,opt,name=notes,proto3" json:"notes,omitempty"`
	TallyPushedAt string                 `protobuf:"bytes,14,opt,name=tally_pushed_at,json=tallyPushedAt,proto3" json:"tally_pushed_at,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{6}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *Invoice) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Invoice) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Invoice) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *Invoice) GetCgst() string {
	if x != nil {
		return x.Cgst
	}
	return ""
}

func (x *Invoice) GetSgst() string {
	if x != nil {
		return x.Sgst
	}
	return ""
}

func (x *Invoice) GetCess() string {
	if x != nil {
		return x.Cess
	}
	return ""
}

func (x *Invoice) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *Invoice) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Invoice) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Invoice) GetTallyPushedAt() string {
	if x != nil {
		return x.TallyPushedAt
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ScanInvoiceRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Path of the uploaded file as stored by the upload handler.
	FilePath      string `protobuf:"bytes,1,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanInvoiceRequest) Reset() {
	*x = ScanInvoiceRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanInvoiceRequest) ProtoMessage() {}

func (x *ScanInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ScanInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{7}
}

func (x *ScanInvoiceRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

type ScanInvoiceResponse struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	JobId        string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status       string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Confidence   float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Extraction   *ExtractedInvoice      `protobuf:"bytes,4,opt,name=extraction,proto3" json:"extraction,omitempty"`
	ReviewIssues []string               `protobuf:"bytes,5,rep,name=review_issues,json=reviewIssues,proto3" json:"review_issues,omitempty"`
	// Vendor matched by GSTIN or name, when one exists already.
	MatchedVendorId string `protobuf:"bytes,6,opt,name=matched_vendor_id,json=matchedVendorId,proto3" json:"matched_vendor_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ScanInvoiceResponse) Reset() {
	*x = ScanInvoiceResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanInvoiceResponse) ProtoMessage() {}

func (x *ScanInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ScanInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{8}
}

func (x *ScanInvoiceResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ScanInvoiceResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ScanInvoiceResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ScanInvoiceResponse) GetExtraction() *ExtractedInvoice {
	if x != nil {
		return x.Extraction
	}
	return nil
}

func (x *ScanInvoiceResponse) GetReviewIssues() []string {
	if x != nil {
		return x.ReviewIssues
	}
	return nil
}

func (x *ScanInvoiceResponse) GetMatchedVendorId() string {
	if x != nil {
		return x.MatchedVendorId
	}
	return ""
}

type NewLineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      string                 `protobuf:"bytes,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Unit          string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	GstRate       string                 `protobuf:"bytes,5,opt,name=gst_rate,json=gstRate,proto3" json:"gst_rate,omitempty"`
	CategoryName  string                 `protobuf:"bytes,6,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NewLineItem) Reset() {
	*x = NewLineItem{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewLineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewLineItem) ProtoMessage() {}

func (x *NewLineItem) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewLineItem.ProtoReflect.Descriptor instead.
func (*NewLineItem) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{9}
}

func (x *NewLineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *NewLineItem) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *NewLineItem) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *NewLineItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *NewLineItem) GetGstRate() string {
	if x != nil {
		return x.GstRate
	}
	return ""
}

func (x *NewLineItem) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

type CreateInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceNumber string                 `protobuf:"bytes,1,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,2,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD
	VendorId      string                 `protobuf:"bytes,3,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	// Used to find-or-create the vendor when vendor_id is empty.
	VendorName string         `protobuf:"bytes,4,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	Items      []*NewLineItem `protobuf:"bytes,5,rep,name=items,proto3" json:"items,omitempty"`
	Notes      string         `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	// Optional scan job to link for audit.
	ScanJobId     string `protobuf:"bytes,7,opt,name=scan_job_id,json=scanJobId,proto3" json:"scan_job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInvoiceRequest) Reset() {
	*x = CreateInvoiceRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInvoiceRequest) ProtoMessage() {}

func (x *CreateInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInvoiceRequest.ProtoReflect.Descriptor instead.
func (*CreateInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{10}
}

func (x *CreateInvoiceRequest) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *CreateInvoiceRequest) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *CreateInvoiceRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *CreateInvoiceRequest) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *CreateInvoiceRequest) GetItems() []*NewLineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *CreateInvoiceRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *CreateInvoiceRequest) GetScanJobId() string {
	if x != nil {
		return x.ScanJobId
	}
	return ""
}

type CreateInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInvoiceResponse) Reset() {
	*x = CreateInvoiceResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInvoiceResponse) ProtoMessage() {}

func (x *CreateInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInvoiceResponse.ProtoReflect.Descriptor instead.
func (*CreateInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{11}
}

func (x *CreateInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type GetInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceRequest) Reset() {
	*x = GetInvoiceRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceRequest) ProtoMessage() {}

func (x *GetInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{12}
}

func (x *GetInvoiceRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceResponse) Reset() {
	*x = GetInvoiceResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceResponse) ProtoMessage() {}

func (x *GetInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceResponse.ProtoReflect.Descriptor instead.
func (*GetInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{13}
}

func (x *GetInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	VendorId      string                 `protobuf:"bytes,3,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{14}
}

func (x *ListInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *ListInvoicesRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{15}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type ListVendorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsRequest) Reset() {
	*x = ListVendorsRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsRequest) ProtoMessage() {}

func (x *ListVendorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsRequest.ProtoReflect.Descriptor instead.
func (*ListVendorsRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{16}
}

type ListVendorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendors       []*Vendor              `protobuf:"bytes,1,rep,name=vendors,proto3" json:"vendors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsResponse) Reset() {
	*x = ListVendorsResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsResponse) ProtoMessage() {}

func (x *ListVendorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsResponse.ProtoReflect.Descriptor instead.
func (*ListVendorsResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{17}
}

func (x *ListVendorsResponse) GetVendors() []*Vendor {
	if x != nil {
		return x.Vendors
	}
	return nil
}

type CreateVendorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Gstin         string                 `protobuf:"bytes,2,opt,name=gstin,proto3" json:"gstin,omitempty"`
	Phone         string                 `protobuf:"bytes,3,opt,name=phone,proto3" json:"phone,omitempty"`
	Address       string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVendorRequest) Reset() {
	*x = CreateVendorRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVendorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVendorRequest) ProtoMessage() {}

func (x *CreateVendorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVendorRequest.ProtoReflect.Descriptor instead.
func (*CreateVendorRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{18}
}

func (x *CreateVendorRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateVendorRequest) GetGstin() string {
	if x != nil {
		return x.Gstin
	}
	return ""
}

func (x *CreateVendorRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateVendorRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type CreateVendorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        *Vendor                `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVendorResponse) Reset() {
	*x = CreateVendorResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVendorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVendorResponse) ProtoMessage() {}

func (x *CreateVendorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVendorResponse.ProtoReflect.Descriptor instead.
func (*CreateVendorResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{19}
}

func (x *CreateVendorResponse) GetVendor() *Vendor {
	if x != nil {
		return x.Vendor
	}
	return nil
}

type ListCategoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesRequest) Reset() {
	*x = ListCategoriesRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesRequest) ProtoMessage() {}

func (x *ListCategoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesRequest.ProtoReflect.Descriptor instead.
func (*ListCategoriesRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{20}
}

type ListCategoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesResponse) Reset() {
	*x = ListCategoriesResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesResponse) ProtoMessage() {}

func (x *ListCategoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesResponse.ProtoReflect.Descriptor instead.
func (*ListCategoriesResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{21}
}

func (x *ListCategoriesResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type PriceCheckItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,2,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PriceCheckItem) Reset() {
	*x = PriceCheckItem{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriceCheckItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriceCheckItem) ProtoMessage() {}

func (x *PriceCheckItem) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriceCheckItem.ProtoReflect.Descriptor instead.
func (*PriceCheckItem) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{22}
}

func (x *PriceCheckItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *PriceCheckItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

type PriceCheckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*PriceCheckItem      `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PriceCheckRequest) Reset() {
	*x = PriceCheckRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriceCheckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriceCheckRequest) ProtoMessage() {}

func (x *PriceCheckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriceCheckRequest.ProtoReflect.Descriptor instead.
func (*PriceCheckRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{23}
}

func (x *PriceCheckRequest) GetItems() []*PriceCheckItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type PriceChange struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemName      string                 `protobuf:"bytes,1,opt,name=item_name,json=itemName,proto3" json:"item_name,omitempty"`
	OldPrice      string                 `protobuf:"bytes,2,opt,name=old_price,json=oldPrice,proto3" json:"old_price,omitempty"`
	NewPrice      string                 `protobuf:"bytes,3,opt,name=new_price,json=newPrice,proto3" json:"new_price,omitempty"`
	LastDate      string                 `protobuf:"bytes,4,opt,name=last_date,json=lastDate,proto3" json:"last_date,omitempty"` // YYYY-MM-DD
	LastVendor    string                 `protobuf:"bytes,5,opt,name=last_vendor,json=lastVendor,proto3" json:"last_vendor,omitempty"`
	Change        string                 `protobuf:"bytes,6,opt,name=change,proto3" json:"change,omitempty"`
	ChangePercent string                 `protobuf:"bytes,7,opt,name=change_percent,json=changePercent,proto3" json:"change_percent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PriceChange) Reset() {
	*x = PriceChange{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriceChange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriceChange) ProtoMessage() {}

func (x *PriceChange) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriceChange.ProtoReflect.Descriptor instead.
func (*PriceChange) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{24}
}

func (x *PriceChange) GetItemName() string {
	if x != nil {
		return x.ItemName
	}
	return ""
}

func (x *PriceChange) GetOldPrice() string {
	if x != nil {
		return x.OldPrice
	}
	return ""
}

func (x *PriceChange) GetNewPrice() string {
	if x != nil {
		return x.NewPrice
	}
	return ""
}

func (x *PriceChange) GetLastDate() string {
	if x != nil {
		return x.LastDate
	}
	return ""
}

func (x *PriceChange) GetLastVendor() string {
	if x != nil {
		return x.LastVendor
	}
	return ""
}

func (x *PriceChange) GetChange() string {
	if x != nil {
		return x.Change
	}
	return ""
}

func (x *PriceChange) GetChangePercent() string {
	if x != nil {
		return x.ChangePercent
	}
	return ""
}

type PriceCheckResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Changes       []*PriceChange         `protobuf:"bytes,1,rep,name=changes,proto3" json:"changes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PriceCheckResponse) Reset() {
	*x = PriceCheckResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriceCheckResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriceCheckResponse) ProtoMessage() {}

func (x *PriceCheckResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriceCheckResponse.ProtoReflect.Descriptor instead.
func (*PriceCheckResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{25}
}

func (x *PriceCheckResponse) GetChanges() []*PriceChange {
	if x != nil {
		return x.Changes
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceIds    []string               `protobuf:"bytes,1,rep,name=invoice_ids,json=invoiceIds,proto3" json:"invoice_ids,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, used when invoice_ids is empty
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	Format        ExportFormat           `protobuf:"varint,4,opt,name=format,proto3,enum=invoicedesk.v1.ExportFormat" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{26}
}

func (x *ExportInvoicesRequest) GetInvoiceIds() []string {
	if x != nil {
		return x.InvoiceIds
	}
	return nil
}

func (x *ExportInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetFormat() ExportFormat {
	if x != nil {
		return x.Format
	}
	return ExportFormat_EXPORT_FORMAT_UNSPECIFIED
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	InvoiceCount  int32                  `protobuf:"varint,3,opt,name=invoice_count,json=invoiceCount,proto3" json:"invoice_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicedesk_v1_invoicedesk_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP(), []int{27}
}

func (x *ExportInvoicesResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ExportInvoicesResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportInvoicesResponse) GetInvoiceCount() int32 {
	if x != nil {
		return x.InvoiceCount
	}
	return 0
}

var File_invoicedesk_v1_invoicedesk_proto protoreflect.FileDescriptor

const file_invoicedesk_v1_invoicedesk_proto_rawDesc = "" +
	"\n" +
	" invoicedesk/v1/invoicedesk.proto\x12\x0einvoicedesk.v1\"\xb0\x01\n" +
	"\x06Vendor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05gstin\x18\x03 \x01(\tR\x05gstin\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x18\n" +
	"\aaddress\x18\x05 \x01(\tR\aaddress\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"1\n" +
	"\vSubcategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"q\n" +
	"\bCategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12A\n" +
	"\rsubcategories\x18\x03 \x03(\v2\x1b.invoicedesk.v1.SubcategoryR\rsubcategories\"\xa7\x01\n" +
	"\x11ExtractedLineItem\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\tR\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\tR\tunitPrice\x12\x19\n" +
	"\bgst_rate\x18\x05 \x01(\tR\agstRate\"\xe0\x03\n" +
	"\x10ExtractedInvoice\x12%\n" +
	"\x0einvoice_number\x18\x01 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\x02 \x01(\tR\vinvoiceDate\x12\x1f\n" +
	"\vvendor_name\x18\x03 \x01(\tR\n" +
	"vendorName\x12!\n" +
	"\fvendor_gstin\x18\x04 \x01(\tR\vvendorGstin\x12!\n" +
	"\fvendor_phone\x18\x05 \x01(\tR\vvendorPhone\x12%\n" +
	"\x0evendor_address\x18\x06 \x01(\tR\rvendorAddress\x127\n" +
	"\x05items\x18\a \x03(\v2!.invoicedesk.v1.ExtractedLineItemR\x05items\x12\x1a\n" +
	"\bsubtotal\x18\b \x01(\tR\bsubtotal\x12\x12\n" +
	"\x04cgst\x18\t \x01(\tR\x04cgst\x12\x12\n" +
	"\x04sgst\x18\n" +
	" \x01(\tR\x04sgst\x12\x12\n" +
	"\x04cess\x18\v \x01(\tR\x04cess\x12!\n" +
	"\ftotal_amount\x18\f \x01(\tR\vtotalAmount\x12%\n" +
	"\x0eitems_subtotal\x18\r \x01(\tR\ritemsSubtotal\x12\x19\n" +
	"\braw_text\x18\x0e \x01(\tR\arawText\"\xcb\x01\n" +
	"\bLineItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\tR\bquantity\x12\x12\n" +
	"\x04unit\x18\x04 \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x05 \x01(\tR\tunitPrice\x12\x19\n" +
	"\bgst_rate\x18\x06 \x01(\tR\agstRate\x12#\n" +
	"\rcategory_name\x18\a \x01(\tR\fcategoryName\"\xe0\x03\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0einvoice_number\x18\x02 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\x03 \x01(\tR\vinvoiceDate\x12\x1b\n" +
	"\tvendor_id\x18\x04 \x01(\tR\bvendorId\x12\x1f\n" +
	"\vvendor_name\x18\x05 \x01(\tR\n" +
	"vendorName\x12.\n" +
	"\x05items\x18\x06 \x03(\v2\x18.invoicedesk.v1.LineItemR\x05items\x12\x1a\n" +
	"\bsubtotal\x18\a \x01(\tR\bsubtotal\x12\x12\n" +
	"\x04cgst\x18\b \x01(\tR\x04cgst\x12\x12\n" +
	"\x04sgst\x18\t \x01(\tR\x04sgst\x12\x12\n" +
	"\x04cess\x18\n" +
	" \x01(\tR\x04cess\x12!\n" +
	"\ftotal_amount\x18\v \x01(\tR\vtotalAmount\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12\x14\n" +
	"\x05notes\x18\r \x01(\tR\x05notes\x12&\n" +
	"\x0ftally_pushed_at\x18\x0e \x01(\tR\rtallyPushedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\"1\n" +
	"\x12ScanInvoiceRequest\x12\x1b\n" +
	"\tfile_path\x18\x01 \x01(\tR\bfilePath\"\xf7\x01\n" +
	"\x13ScanInvoiceResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\x12@\n" +
	"\n" +
	"extraction\x18\x04 \x01(\v2 .invoicedesk.v1.ExtractedInvoiceR\n" +
	"extraction\x12#\n" +
	"\rreview_issues\x18\x05 \x03(\tR\freviewIssues\x12*\n" +
	"\x11matched_vendor_id\x18\x06 \x01(\tR\x0fmatchedVendorId\"\xbe\x01\n" +
	"\vNewLineItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\tR\bquantity\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\tR\tunitPrice\x12\x19\n" +
	"\bgst_rate\x18\x05 \x01(\tR\agstRate\x12#\n" +
	"\rcategory_name\x18\x06 \x01(\tR\fcategoryName\"\x87\x02\n" +
	"\x14CreateInvoiceRequest\x12%\n" +
	"\x0einvoice_number\x18\x01 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\x02 \x01(\tR\vinvoiceDate\x12\x1b\n" +
	"\tvendor_id\x18\x03 \x01(\tR\bvendorId\x12\x1f\n" +
	"\vvendor_name\x18\x04 \x01(\tR\n" +
	"vendorName\x121\n" +
	"\x05items\x18\x05 \x03(\v2\x1b.invoicedesk.v1.NewLineItemR\x05items\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\x12\x1e\n" +
	"\vscan_job_id\x18\a \x01(\tR\tscanJobId\"J\n" +
	"\x15CreateInvoiceResponse\x121\n" +
	"\ainvoice\x18\x01 \x01(\v2\x17.invoicedesk.v1.InvoiceR\ainvoice\"#\n" +
	"\x11GetInvoiceRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"G\n" +
	"\x12GetInvoiceResponse\x121\n" +
	"\ainvoice\x18\x01 \x01(\v2\x17.invoicedesk.v1.InvoiceR\ainvoice\"\x80\x01\n" +
	"\x13ListInvoicesRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1b\n" +
	"\tvendor_id\x18\x03 \x01(\tR\bvendorId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\"K\n" +
	"\x14ListInvoicesResponse\x123\n" +
	"\binvoices\x18\x01 \x03(\v2\x17.invoicedesk.v1.InvoiceR\binvoices\"\x14\n" +
	"\x12ListVendorsRequest\"G\n" +
	"\x13ListVendorsResponse\x120\n" +
	"\avendors\x18\x01 \x03(\v2\x16.invoicedesk.v1.VendorR\avendors\"o\n" +
	"\x13CreateVendorRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05gstin\x18\x02 \x01(\tR\x05gstin\x12\x14\n" +
	"\x05phone\x18\x03 \x01(\tR\x05phone\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\"F\n" +
	"\x14CreateVendorResponse\x12.\n" +
	"\x06vendor\x18\x01 \x01(\v2\x16.invoicedesk.v1.VendorR\x06vendor\"\x17\n" +
	"\x15ListCategoriesRequest\"R\n" +
	"\x16ListCategoriesResponse\x128\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x18.invoicedesk.v1.CategoryR\n" +
	"categories\"Q\n" +
	"\x0ePriceCheckItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x02 \x01(\tR\tunitPrice\"I\n" +
	"\x11PriceCheckRequest\x124\n" +
	"\x05items\x18\x01 \x03(\v2\x1e.invoicedesk.v1.PriceCheckItemR\x05items\"\xe1\x01\n" +
	"\vPriceChange\x12\x1b\n" +
	"\titem_name\x18\x01 \x01(\tR\bitemName\x12\x1b\n" +
	"\told_price\x18\x02 \x01(\tR\boldPrice\x12\x1b\n" +
	"\tnew_price\x18\x03 \x01(\tR\bnewPrice\x12\x1b\n" +
	"\tlast_date\x18\x04 \x01(\tR\blastDate\x12\x1f\n" +
	"\vlast_vendor\x18\x05 \x01(\tR\n" +
	"lastVendor\x12\x16\n" +
	"\x06change\x18\x06 \x01(\tR\x06change\x12%\n" +
	"\x0echange_percent\x18\a \x01(\tR\rchangePercent\"K\n" +
	"\x12PriceCheckResponse\x125\n" +
	"\achanges\x18\x01 \x03(\v2\x1b.invoicedesk.v1.PriceChangeR\achanges\"\xa4\x01\n" +
	"\x15ExportInvoicesRequest\x12\x1f\n" +
	"\vinvoice_ids\x18\x01 \x03(\tR\n" +
	"invoiceIds\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\x124\n" +
	"\x06format\x18\x04 \x01(\x0e2\x1c.invoicedesk.v1.ExportFormatR\x06format\"t\n" +
	"\x16ExportInvoicesResponse\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12#\n" +
	"\rinvoice_count\x18\x03 \x01(\x05R\finvoiceCount*b\n" +
	"\fExportFormat\x12\x1d\n" +
	"\x19EXPORT_FORMAT_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12EXPORT_FORMAT_XLSX\x10\x01\x12\x1b\n" +
	"\x17EXPORT_FORMAT_TALLY_XML\x10\x022\xc4\x06\n" +
	"\x12InvoiceDeskService\x12V\n" +
	"\vScanInvoice\x12\".invoicedesk.v1.ScanInvoiceRequest\x1a#.invoicedesk.v1.ScanInvoiceResponse\x12\\\n" +
	"\rCreateInvoice\x12$.invoicedesk.v1.CreateInvoiceRequest\x1a%.invoicedesk.v1.CreateInvoiceResponse\x12S\n" +
	"\n" +
	"GetInvoice\x12!.invoicedesk.v1.GetInvoiceRequest\x1a\".invoicedesk.v1.GetInvoiceResponse\x12Y\n" +
	"\fListInvoices\x12#.invoicedesk.v1.ListInvoicesRequest\x1a$.invoicedesk.v1.ListInvoicesResponse\x12V\n" +
	"\vListVendors\x12\".invoicedesk.v1.ListVendorsRequest\x1a#.invoicedesk.v1.ListVendorsResponse\x12Y\n" +
	"\fCreateVendor\x12#.invoicedesk.v1.CreateVendorRequest\x1a$.invoicedesk.v1.CreateVendorResponse\x12_\n" +
	"\x0eListCategories\x12%.invoicedesk.v1.ListCategoriesRequest\x1a&.invoicedesk.v1.ListCategoriesResponse\x12S\n" +
	"\n" +
	"PriceCheck\x12!.invoicedesk.v1.PriceCheckRequest\x1a\".invoicedesk.v1.PriceCheckResponse\x12_\n" +
	"\x0eExportInvoices\x12%.invoicedesk.v1.ExportInvoicesRequest\x1a&.invoicedesk.v1.ExportInvoicesResponseB4Z2invoicedesk/gen/proto/invoicedesk/v1;invoicedeskpbb\x06proto3"

var (
	file_invoicedesk_v1_invoicedesk_proto_rawDescOnce sync.Once
	file_invoicedesk_v1_invoicedesk_proto_rawDescData []byte
)

func file_invoicedesk_v1_invoicedesk_proto_rawDescGZIP() []byte {
	file_invoicedesk_v1_invoicedesk_proto_rawDescOnce.Do(func() {
		file_invoicedesk_v1_invoicedesk_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoicedesk_v1_invoicedesk_proto_rawDesc), len(file_invoicedesk_v1_invoicedesk_proto_rawDesc)))
	})
	return file_invoicedesk_v1_invoicedesk_proto_rawDescData
}

var file_invoicedesk_v1_invoicedesk_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_invoicedesk_v1_invoicedesk_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_invoicedesk_v1_invoicedesk_proto_goTypes = []any{
	(ExportFormat)(0),              // 0: invoicedesk.v1.ExportFormat
	(*Vendor)(nil),                 // 1: invoicedesk.v1.Vendor
	(*Subcategory)(nil),            // 2: invoicedesk.v1.Subcategory
	(*Category)(nil),               // 3: invoicedesk.v1.Category
	(*ExtractedLineItem)(nil),      // 4: invoicedesk.v1.ExtractedLineItem
	(*ExtractedInvoice)(nil),       // 5: invoicedesk.v1.ExtractedInvoice
	(*LineItem)(nil),               // 6: invoicedesk.v1.LineItem
	(*Invoice)(nil),                // 7: invoicedesk.v1.Invoice
	(*ScanInvoiceRequest)(nil),     // 8: invoicedesk.v1.ScanInvoiceRequest
	(*ScanInvoiceResponse)(nil),    // 9: invoicedesk.v1.ScanInvoiceResponse
	(*NewLineItem)(nil),            // 10: invoicedesk.v1.NewLineItem
	(*CreateInvoiceRequest)(nil),   // 11: invoicedesk.v1.CreateInvoiceRequest
	(*CreateInvoiceResponse)(nil),  // 12: invoicedesk.v1.CreateInvoiceResponse
	(*GetInvoiceRequest)(nil),      // 13: invoicedesk.v1.GetInvoiceRequest
	(*GetInvoiceResponse)(nil),     // 14: invoicedesk.v1.GetInvoiceResponse
	(*ListInvoicesRequest)(nil),    // 15: invoicedesk.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),   // 16: invoicedesk.v1.ListInvoicesResponse
	(*ListVendorsRequest)(nil),     // 17: invoicedesk.v1.ListVendorsRequest
	(*ListVendorsResponse)(nil),    // 18: invoicedesk.v1.ListVendorsResponse
	(*CreateVendorRequest)(nil),    // 19: invoicedesk.v1.CreateVendorRequest
	(*CreateVendorResponse)(nil),   // 20: invoicedesk.v1.CreateVendorResponse
	(*ListCategoriesRequest)(nil),  // 21: invoicedesk.v1.ListCategoriesRequest
	(*ListCategoriesResponse)(nil), // 22: invoicedesk.v1.ListCategoriesResponse
	(*PriceCheckItem)(nil),         // 23: invoicedesk.v1.PriceCheckItem
	(*PriceCheckRequest)(nil),      // 24: invoicedesk.v1.PriceCheckRequest
	(*PriceChange)(nil),            // 25: invoicedesk.v1.PriceChange
	(*PriceCheckResponse)(nil),     // 26: invoicedesk.v1.PriceCheckResponse
	(*ExportInvoicesRequest)(nil),  // 27: invoicedesk.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil), // 28: invoicedesk.v1.ExportInvoicesResponse
}
var file_invoicedesk_v1_invoicedesk_proto_depIdxs = []int32{
	2,  // 0: invoicedesk.v1.Category.subcategories:type_name -> invoicedesk.v1.Subcategory
	4,  // 1: invoicedesk.v1.ExtractedInvoice.items:type_name -> invoicedesk.v1.ExtractedLineItem
	6,  // 2: invoicedesk.v1.Invoice.items:type_name -> invoicedesk.v1.LineItem
	5,  // 3: invoicedesk.v1.ScanInvoiceResponse.extraction:type_name -> invoicedesk.v1.ExtractedInvoice
	10, // 4: invoicedesk.v1.CreateInvoiceRequest.items:type_name -> invoicedesk.v1.NewLineItem
	7,  // 5: invoicedesk.v1.CreateInvoiceResponse.invoice:type_name -> invoicedesk.v1.Invoice
	7,  // 6: invoicedesk.v1.GetInvoiceResponse.invoice:type_name -> invoicedesk.v1.Invoice
	7,  // 7: invoicedesk.v1.ListInvoicesResponse.invoices:type_name -> invoicedesk.v1.Invoice
	1,  // 8: invoicedesk.v1.ListVendorsResponse.vendors:type_name -> invoicedesk.v1.Vendor
	1,  // 9: invoicedesk.v1.CreateVendorResponse.vendor:type_name -> invoicedesk.v1.Vendor
	3,  // 10: invoicedesk.v1.ListCategoriesResponse.categories:type_name -> invoicedesk.v1.Category
	23, // 11: invoicedesk.v1.PriceCheckRequest.items:type_name -> invoicedesk.v1.PriceCheckItem
	25, // 12: invoicedesk.v1.PriceCheckResponse.changes:type_name -> invoicedesk.v1.PriceChange
	0,  // 13: invoicedesk.v1.ExportInvoicesRequest.format:type_name -> invoicedesk.v1.ExportFormat
	8,  // 14: invoicedesk.v1.InvoiceDeskService.ScanInvoice:input_type -> invoicedesk.v1.ScanInvoiceRequest
	11, // 15: invoicedesk.v1.InvoiceDeskService.CreateInvoice:input_type -> invoicedesk.v1.CreateInvoiceRequest
	13, // 16: invoicedesk.v1.InvoiceDeskService.GetInvoice:input_type -> invoicedesk.v1.GetInvoiceRequest
	15, // 17: invoicedesk.v1.InvoiceDeskService.ListInvoices:input_type -> invoicedesk.v1.ListInvoicesRequest
	17, // 18: invoicedesk.v1.InvoiceDeskService.ListVendors:input_type -> invoicedesk.v1.ListVendorsRequest
	19, // 19: invoicedesk.v1.InvoiceDeskService.CreateVendor:input_type -> invoicedesk.v1.CreateVendorRequest
	21, // 20: invoicedesk.v1.InvoiceDeskService.ListCategories:input_type -> invoicedesk.v1.ListCategoriesRequest
	24, // 21: invoicedesk.v1.InvoiceDeskService.PriceCheck:input_type -> invoicedesk.v1.PriceCheckRequest
	27, // 22: invoicedesk.v1.InvoiceDeskService.ExportInvoices:input_type -> invoicedesk.v1.ExportInvoicesRequest
	9,  // 23: invoicedesk.v1.InvoiceDeskService.ScanInvoice:output_type -> invoicedesk.v1.ScanInvoiceResponse
	12, // 24: invoicedesk.v1.InvoiceDeskService.CreateInvoice:output_type -> invoicedesk.v1.CreateInvoiceResponse
	14, // 25: invoicedesk.v1.InvoiceDeskService.GetInvoice:output_type -> invoicedesk.v1.GetInvoiceResponse
	16, // 26: invoicedesk.v1.InvoiceDeskService.ListInvoices:output_type -> invoicedesk.v1.ListInvoicesResponse
	18, // 27: invoicedesk.v1.InvoiceDeskService.ListVendors:output_type -> invoicedesk.v1.ListVendorsResponse
	20, // 28: invoicedesk.v1.InvoiceDeskService.CreateVendor:output_type -> invoicedesk.v1.CreateVendorResponse
	22, // 29: invoicedesk.v1.InvoiceDeskService.ListCategories:output_type -> invoicedesk.v1.ListCategoriesResponse
	26, // 30: invoicedesk.v1.InvoiceDeskService.PriceCheck:output_type -> invoicedesk.v1.PriceCheckResponse
	28, // 31: invoicedesk.v1.InvoiceDeskService.ExportInvoices:output_type -> invoicedesk.v1.ExportInvoicesResponse
	23, // [23:32] is the sub-list for method output_type
	14, // [14:23] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_invoicedesk_v1_invoicedesk_proto_init() }
func file_invoicedesk_v1_invoicedesk_proto_init() {
	if File_invoicedesk_v1_invoicedesk_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoicedesk_v1_invoicedesk_proto_rawDesc), len(file_invoicedesk_v1_invoicedesk_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_invoicedesk_v1_invoicedesk_proto_goTypes,
		DependencyIndexes: file_invoicedesk_v1_invoicedesk_proto_depIdxs,
		EnumInfos:         file_invoicedesk_v1_invoicedesk_proto_enumTypes,
		MessageInfos:      file_invoicedesk_v1_invoicedesk_proto_msgTypes,
	}.Build()
	File_invoicedesk_v1_invoicedesk_proto = out.File
	file_invoicedesk_v1_invoicedesk_proto_goTypes = nil
	file_invoicedesk_v1_invoicedesk_proto_depIdxs = nil
}
