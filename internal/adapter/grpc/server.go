package grpc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/networth-backend/internal/usecase/dashboard"
	"github.com/simaogato/networth-backend/internal/usecase/investment"
	"github.com/simaogato/networth-backend/internal/usecase/loan"
)

// Server implements the NetWorthService gRPC server
type Server struct {
	DashboardService  *dashboard.DashboardService
	InvestmentService *investment.InvestmentService

	// now supplies the evaluation time when a request has no "at" field
	now func() time.Time
}

// NewServer creates a new gRPC server instance
func NewServer(
	dashboardService *dashboard.DashboardService,
	investmentService *investment.InvestmentService,
) *Server {
	return &Server{
		DashboardService:  dashboardService,
		InvestmentService: investmentService,
		now:               time.Now,
	}
}

// GetSnapshot handles the GetSnapshot RPC
// Request: {"at": RFC3339?}
func (s *Server) GetSnapshot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	at, err := s.evaluationTime(req)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.DashboardService.GetSnapshot(ctx, at)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(snapshot)
}

// PlanRebalance handles the PlanRebalance RPC
// Request: {"at": RFC3339?, "threshold": number|string?}
func (s *Server) PlanRebalance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	at, err := s.evaluationTime(req)
	if err != nil {
		return nil, err
	}
	threshold, err := decimalField(req, "threshold")
	if err != nil {
		return nil, err
	}

	actions, err := s.DashboardService.GetRebalance(ctx, at, threshold)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"actions": actions})
}

// ListLoans handles the ListLoans RPC
// Request: {"at": RFC3339?}
func (s *Server) ListLoans(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	at, err := s.evaluationTime(req)
	if err != nil {
		return nil, err
	}

	loans, err := s.DashboardService.GetLoans(ctx, at)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{
		"loans":      loans,
		"total_debt": loan.TotalDebt(loans),
	})
}

// UpdatePrice handles the UpdatePrice RPC
// Request: {"asset_id": uuid, "price": number|string, "at": RFC3339?}
func (s *Server) UpdatePrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// Parse asset ID
	assetID, err := uuid.Parse(req.GetFields()["asset_id"].GetStringValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid asset_id format: %v", err)
	}

	price, err := decimalField(req, "price")
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, status.Error(codes.InvalidArgument, "price is required")
	}

	at, err := s.evaluationTime(req)
	if err != nil {
		return nil, err
	}

	entry, err := s.InvestmentService.UpdatePrice(ctx, assetID, *price, at)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(map[string]any{
		"entry_id": entry.ID.String(),
		"asset_id": entry.AssetID.String(),
		"price":    entry.Price,
		"date":     entry.Date.UTC().Format(time.RFC3339),
	})
}

// GetHistory handles the GetHistory RPC
func (s *Server) GetHistory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	h, err := s.DashboardService.GetHistory(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(h)
}

// evaluationTime reads the optional "at" field, defaulting to now
func (s *Server) evaluationTime(req *structpb.Struct) (time.Time, error) {
	raw := req.GetFields()["at"].GetStringValue()
	if raw == "" {
		return s.now(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid at format: %v", err)
	}
	return at, nil
}

// decimalField reads a number or numeric string field; a missing field is nil
func decimalField(req *structpb.Struct, name string) (*decimal.Decimal, error) {
	value, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}

	switch v := value.GetKind().(type) {
	case *structpb.Value_NumberValue:
		d := decimal.NewFromFloat(v.NumberValue)
		return &d, nil
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(v.StringValue)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", name, err)
		}
		return &d, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a number or numeric string", name)
	}
}

// toStruct converts a JSON-tagged value into a protobuf Struct
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to convert response: %v", err)
	}
	return out, nil
}
