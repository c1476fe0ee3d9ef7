package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/models"
	"crypto-fraud-detector/internal/services"

	"github.com/gin-gonic/gin/binding"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type TransactionGRPCServer struct {
	service services.TransactionService
}

var _ TransactionServiceServer = (*TransactionGRPCServer)(nil)

func NewTransactionGRPCServer(service services.TransactionService) *TransactionGRPCServer {
	return &TransactionGRPCServer{service: service}
}

// AnalyzeTransaction анализирует транзакцию синхронно, как POST /api/transaction
func (s *TransactionGRPCServer) AnalyzeTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input models.TransactionInput
	if err := decodeStruct(req, &input); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Validation error: %v", err)
	}
	if err := binding.Validator.ValidateStruct(&input); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Validation error: %v", err)
	}

	record, err := s.service.ProcessTransaction(ctx, input.ToRequest())
	if err != nil {
		logger.Log.Errorw("gRPC analysis failed", "error", err)
		return nil, status.Errorf(codes.Internal, "Analysis error: %v", err)
	}

	return encodeStruct(record.ToResponse())
}

// GetTransactionStatus возвращает сохраненный результат анализа
func (s *TransactionGRPCServer) GetTransactionStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := req.GetFields()["transaction_id"].GetStringValue()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "transaction_id is required")
	}

	record, err := s.service.GetTransaction(ctx, id)
	switch {
	case errors.Is(err, services.ErrTransactionNotFound):
		return nil, status.Error(codes.NotFound, "Transaction not found")
	case errors.Is(err, services.ErrStorageUnavailable):
		return nil, status.Error(codes.Unavailable, "Database not available")
	case err != nil:
		logger.Log.Errorw("gRPC status lookup failed", "transaction_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "Failed to get transaction: %v", err)
	}

	return encodeStruct(record)
}

func decodeStruct(in *structpb.Struct, out interface{}) error {
	data, err := in.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return json.Unmarshal(data, out)
}

func encodeStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to marshal response: %v", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to unmarshal response: %v", err)
	}
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build response: %v", err)
	}
	return out, nil
}

// NewServer создает gRPC сервер с сервисом транзакций, health и reflection
func NewServer(server *TransactionGRPCServer) *grpc.Server {
	s := grpc.NewServer()
	RegisterTransactionServiceServer(s, server)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)

	// Включаем reflection API для grpcurl и других инструментов
	reflection.Register(s)
	return s
}

// StartGRPCServer слушает порт и блокирует до остановки сервера
func StartGRPCServer(port int, s *grpc.Server) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger.Log.Infow("gRPC server listening", "port", port)
	if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}
