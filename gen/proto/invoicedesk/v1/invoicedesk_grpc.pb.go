// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: invoicedesk/v1/invoicedesk.proto

package invoicedeskpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InvoiceDeskService_ScanInvoice_FullMethodName    = "/invoicedesk.v1.InvoiceDeskService/ScanInvoice"
	InvoiceDeskService_CreateInvoice_FullMethodName  = "/invoicedesk.v1.InvoiceDeskService/CreateInvoice"
	InvoiceDeskService_GetInvoice_FullMethodName     = "/invoicedesk.v1.InvoiceDeskService/GetInvoice"
	InvoiceDeskService_ListInvoices_FullMethodName   = "/invoicedesk.v1.InvoiceDeskService/ListInvoices"
	InvoiceDeskService_ListVendors_FullMethodName    = "/invoicedesk.v1.InvoiceDeskService/ListVendors"
	InvoiceDeskService_CreateVendor_FullMethodName   = "/invoicedesk.v1.InvoiceDeskService/CreateVendor"
	InvoiceDeskService_ListCategories_FullMethodName = "/invoicedesk.v1.InvoiceDeskService/ListCategories"
	InvoiceDeskService_PriceCheck_FullMethodName     = "/invoicedesk.v1.InvoiceDeskService/PriceCheck"
	InvoiceDeskService_ExportInvoices_FullMethodName = "/invoicedesk.v1.InvoiceDeskService/ExportInvoices"
)

// InvoiceDeskServiceClient is the client API for InvoiceDeskService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InvoiceDeskService manages scanned purchase invoices: OCR + extraction,
// review persistence, vendor and category lookups, and register export.
// Monetary and quantity fields travel as decimal strings.
type InvoiceDeskServiceClient interface {
	// ScanInvoice runs OCR over an uploaded file and returns the proposed
	// extraction together with review warnings. Nothing is persisted except
	// the scan job audit row.
	ScanInvoice(ctx context.Context, in *ScanInvoiceRequest, opts ...grpc.CallOption) (*ScanInvoiceResponse, error)
	// CreateInvoice persists a human-approved invoice with its items.
	CreateInvoice(ctx context.Context, in *CreateInvoiceRequest, opts ...grpc.CallOption) (*CreateInvoiceResponse, error)
	GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*GetInvoiceResponse, error)
	ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error)
	ListVendors(ctx context.Context, in *ListVendorsRequest, opts ...grpc.CallOption) (*ListVendorsResponse, error)
	CreateVendor(ctx context.Context, in *CreateVendorRequest, opts ...grpc.CallOption) (*CreateVendorResponse, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	// PriceCheck compares proposed unit prices against the most recent
	// purchase of each item.
	PriceCheck(ctx context.Context, in *PriceCheckRequest, opts ...grpc.CallOption) (*PriceCheckResponse, error)
	// ExportInvoices renders an invoice register (XLSX) or Tally import
	// vouchers (XML) for the selected invoices.
	ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error)
}

type invoiceDeskServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInvoiceDeskServiceClient(cc grpc.ClientConnInterface) InvoiceDeskServiceClient {
	return &invoiceDeskServiceClient{cc}
}

func (c *invoiceDeskServiceClient) ScanInvoice(ctx context.Context, in *ScanInvoiceRequest, opts ...grpc.CallOption) (*ScanInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_ScanInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceDeskServiceClient) CreateInvoice(ctx context.Context, in *CreateInvoiceRequest, opts ...grpc.CallOption) (*CreateInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_CreateInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceDeskServiceClient) GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*GetInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_GetInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceDeskServiceClient) ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInvoicesResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_ListInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceDeskServiceClient) ListVendors(ctx context.Context, in *ListVendorsRequest, opts ...grpc.CallOption) (*ListVendorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVendorsResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_ListVendors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceDeskServiceClient) CreateVendor(ctx context.Context, in *CreateVendorRequest, opts ...grpc.CallOption) (*CreateVendorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateVendorResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_CreateVendor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceDeskServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCategoriesResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_ListCategories_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceDeskServiceClient) PriceCheck(ctx context.Context, in *PriceCheckRequest, opts ...grpc.CallOption) (*PriceCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PriceCheckResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_PriceCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceDeskServiceClient) ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportInvoicesResponse)
	err := c.cc.Invoke(ctx, InvoiceDeskService_ExportInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvoiceDeskServiceServer is the server API for InvoiceDeskService service.
// All implementations must embed UnimplementedInvoiceDeskServiceServer
// for forward compatibility.
//
// InvoiceDeskService manages scanned purchase invoices: OCR + extraction,
// review persistence, vendor and category lookups, and register export.
// Monetary and quantity fields travel as decimal strings.
type InvoiceDeskServiceServer interface {
	// ScanInvoice runs OCR over an uploaded file and returns the proposed
	// extraction together with review warnings. Nothing is persisted except
	// the scan job audit row.
	ScanInvoice(context.Context, *ScanInvoiceRequest) (*ScanInvoiceResponse, error)
	// CreateInvoice persists a human-approved invoice with its items.
	CreateInvoice(context.Context, *CreateInvoiceRequest) (*CreateInvoiceResponse, error)
	GetInvoice(context.Context, *GetInvoiceRequest) (*GetInvoiceResponse, error)
	ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error)
	ListVendors(context.Context, *ListVendorsRequest) (*ListVendorsResponse, error)
	CreateVendor(context.Context, *CreateVendorRequest) (*CreateVendorResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	// PriceCheck compares proposed unit prices against the most recent
	// purchase of each item.
	PriceCheck(context.Context, *PriceCheckRequest) (*PriceCheckResponse, error)
	// ExportInvoices renders an invoice register (XLSX) or Tally import
	// vouchers (XML) for the selected invoices.
	ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error)
	mustEmbedUnimplementedInvoiceDeskServiceServer()
}

// UnimplementedInvoiceDeskServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInvoiceDeskServiceServer struct{}

func (UnimplementedInvoiceDeskServiceServer) ScanInvoice(context.Context, *ScanInvoiceRequest) (*ScanInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanInvoice not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) CreateInvoice(context.Context, *CreateInvoiceRequest) (*CreateInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateInvoice not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) GetInvoice(context.Context, *GetInvoiceRequest) (*GetInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInvoice not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInvoices not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) ListVendors(context.Context, *ListVendorsRequest) (*ListVendorsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListVendors not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) CreateVendor(context.Context, *CreateVendorRequest) (*CreateVendorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateVendor not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) PriceCheck(context.Context, *PriceCheckRequest) (*PriceCheckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PriceCheck not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportInvoices not implemented")
}
func (UnimplementedInvoiceDeskServiceServer) mustEmbedUnimplementedInvoiceDeskServiceServer() {}
func (UnimplementedInvoiceDeskServiceServer) testEmbeddedByValue()                            {}

// UnsafeInvoiceDeskServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InvoiceDeskServiceServer will
// result in compilation errors.
type UnsafeInvoiceDeskServiceServer interface {
	mustEmbedUnimplementedInvoiceDeskServiceServer()
}

func RegisterInvoiceDeskServiceServer(s grpc.ServiceRegistrar, srv InvoiceDeskServiceServer) {
	// If the following call pancis, it indicates UnimplementedInvoiceDeskServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InvoiceDeskService_ServiceDesc, srv)
}

func _InvoiceDeskService_ScanInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).ScanInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_ScanInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).ScanInvoice(ctx, req.(*ScanInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceDeskService_CreateInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).CreateInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_CreateInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).CreateInvoice(ctx, req.(*CreateInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceDeskService_GetInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).GetInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_GetInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).GetInvoice(ctx, req.(*GetInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceDeskService_ListInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).ListInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_ListInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).ListInvoices(ctx, req.(*ListInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceDeskService_ListVendors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVendorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).ListVendors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_ListVendors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).ListVendors(ctx, req.(*ListVendorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceDeskService_CreateVendor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateVendorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).CreateVendor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_CreateVendor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).CreateVendor(ctx, req.(*CreateVendorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceDeskService_ListCategories_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCategoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).ListCategories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_ListCategories_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).ListCategories(ctx, req.(*ListCategoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceDeskService_PriceCheck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PriceCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).PriceCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_PriceCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).PriceCheck(ctx, req.(*PriceCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceDeskService_ExportInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceDeskServiceServer).ExportInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceDeskService_ExportInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceDeskServiceServer).ExportInvoices(ctx, req.(*ExportInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InvoiceDeskService_ServiceDesc is the grpc.ServiceDesc for InvoiceDeskService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InvoiceDeskService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoicedesk.v1.InvoiceDeskService",
	HandlerType: (*InvoiceDeskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScanInvoice",
			Handler:    _InvoiceDeskService_ScanInvoice_Handler,
		},
		{
			MethodName: "CreateInvoice",
			Handler:    _InvoiceDeskService_CreateInvoice_Handler,
		},
		{
			MethodName: "GetInvoice",
			Handler:    _InvoiceDeskService_GetInvoice_Handler,
		},
		{
			MethodName: "ListInvoices",
			Handler:    _InvoiceDeskService_ListInvoices_Handler,
		},
		{
			MethodName: "ListVendors",
			Handler:    _InvoiceDeskService_ListVendors_Handler,
		},
		{
			MethodName: "CreateVendor",
			Handler:    _InvoiceDeskService_CreateVendor_Handler,
		},
		{
			MethodName: "ListCategories",
			Handler:    _InvoiceDeskService_ListCategories_Handler,
		},
		{
			MethodName: "PriceCheck",
			Handler:    _InvoiceDeskService_PriceCheck_Handler,
		},
		{
			MethodName: "ExportInvoices",
			Handler:    _InvoiceDeskService_ExportInvoices_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoicedesk/v1/invoicedesk.proto",
}
