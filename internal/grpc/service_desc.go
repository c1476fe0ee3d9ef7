package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName полное имя gRPC сервиса. Сообщения передаются как google.protobuf.Struct
// с теми же полями, что и JSON REST API.
const ServiceName = "cryptofraud.v1.TransactionService"

const (
	analyzeTransactionMethod   = "/" + ServiceName + "/AnalyzeTransaction"
	getTransactionStatusMethod = "/" + ServiceName + "/GetTransactionStatus"
)

// TransactionServiceServer серверная часть cryptofraud.v1.TransactionService
type TransactionServiceServer interface {
	AnalyzeTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetTransactionStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var transactionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TransactionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AnalyzeTransaction", Handler: analyzeTransactionHandler},
		{MethodName: "GetTransactionStatus", Handler: getTransactionStatusHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cryptofraud/v1/transaction.proto",
}

// RegisterTransactionServiceServer регистрирует реализацию на gRPC сервере
func RegisterTransactionServiceServer(s grpc.ServiceRegistrar, srv TransactionServiceServer) {
	s.RegisterService(&transactionServiceDesc, srv)
}

func analyzeTransactionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionServiceServer).AnalyzeTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: analyzeTransactionMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionServiceServer).AnalyzeTransaction(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getTransactionStatusHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionServiceServer).GetTransactionStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getTransactionStatusMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionServiceServer).GetTransactionStatus(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// TransactionServiceClient клиент cryptofraud.v1.TransactionService
type TransactionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTransactionServiceClient(cc grpc.ClientConnInterface) *TransactionServiceClient {
	return &TransactionServiceClient{cc: cc}
}

func (c *TransactionServiceClient) AnalyzeTransaction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, analyzeTransactionMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TransactionServiceClient) GetTransactionStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getTransactionStatusMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
