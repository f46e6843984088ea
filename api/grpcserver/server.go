// Package grpcserver adapts OrderService to the gRPC API.
package grpcserver

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tycho/api/pb"
	"tycho/domain/orderbook"
	"tycho/service"
)

const defaultDepthLevels = 10

type Server struct {
	pb.UnimplementedOrderServiceServer
	svc *service.OrderService
}

func NewServer(svc *service.OrderService) *Server {
	return &Server{svc: svc}
}

func (s *Server) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.PlaceOrderResponse, error) {
	res, err := s.svc.PlaceOrder(
		req.OrderId,
		toSide(req.Side),
		toType(req.Type),
		req.Price,
		req.Qty,
	)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.PlaceOrderResponse{
		OrderId:   res.OrderID,
		SeqId:     res.SeqID,
		Status:    fromStatus(res.Status),
		Remaining: res.Remaining,
		Fills:     fromFills(res.Fills),
	}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *pb.CancelOrderRequest) (*pb.CancelOrderResponse, error) {
	if err := s.svc.CancelOrder(req.OrderId); err != nil {
		return nil, toStatus(err)
	}
	return &pb.CancelOrderResponse{
		OrderId: req.OrderId,
		Status:  pb.Status_CANCELLED,
	}, nil
}

func (s *Server) ModifyOrder(ctx context.Context, req *pb.ModifyOrderRequest) (*pb.ModifyOrderResponse, error) {
	var price *int64
	var qty *uint64
	if req.HasPrice {
		price = &req.NewPrice
	}
	if req.HasQty {
		qty = &req.NewQty
	}

	res, err := s.svc.ModifyOrder(req.OrderId, price, qty)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.ModifyOrderResponse{
		OrderId:   res.OrderID,
		SeqId:     res.SeqID,
		Status:    fromStatus(res.Status),
		Remaining: res.Remaining,
		Fills:     fromFills(res.Fills),
	}, nil
}

func (s *Server) GetDepth(ctx context.Context, req *pb.DepthRequest) (*pb.DepthResponse, error) {
	levels := int(req.Levels)
	if levels <= 0 {
		levels = defaultDepthLevels
	}
	bids, asks := s.svc.MarketDepth(levels)

	return &pb.DepthResponse{
		Symbol: s.svc.Symbol(),
		Bids:   fromLevels(bids),
		Asks:   fromLevels(asks),
		Time:   time.Now().UnixNano(),
	}, nil
}

func (s *Server) GetSummary(ctx context.Context, req *pb.SummaryRequest) (*pb.SummaryResponse, error) {
	sum := s.svc.Summary()

	return &pb.SummaryResponse{
		Symbol:          sum.Symbol,
		BestBid:         sum.BestBid,
		HasBid:          sum.HasBid,
		BestAsk:         sum.BestAsk,
		HasAsk:          sum.HasAsk,
		Spread:          sum.Spread,
		BidOrders:       uint64(sum.BidOrders),
		AskOrders:       uint64(sum.AskOrders),
		BidQty:          sum.BidQty,
		AskQty:          sum.AskQty,
		OrdersProcessed: sum.OrdersProcessed,
		QtyMatched:      sum.QtyMatched,
	}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, orderbook.ErrOrderNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, orderbook.ErrDuplicateOrderID):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, orderbook.ErrInvalidQuantity),
		errors.Is(err, orderbook.ErrPriceOutOfRange):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toSide(s pb.Side) orderbook.Side {
	if s == pb.Side_ASK {
		return orderbook.Ask
	}
	return orderbook.Bid
}

func toType(t pb.OrderType) orderbook.OrderType {
	if t == pb.OrderType_MARKET {
		return orderbook.Market
	}
	return orderbook.Limit
}

func fromStatus(s orderbook.Status) pb.Status {
	switch s {
	case orderbook.PartiallyFilled:
		return pb.Status_PARTIALLY_FILLED
	case orderbook.Filled:
		return pb.Status_FILLED
	case orderbook.Cancelled:
		return pb.Status_CANCELLED
	default:
		return pb.Status_NEW
	}
}

func fromFills(fills []orderbook.Fill) []*pb.Fill {
	out := make([]*pb.Fill, 0, len(fills))
	for _, f := range fills {
		out = append(out, &pb.Fill{
			MakerId:   f.MakerID,
			TakerId:   f.TakerID,
			Price:     f.Price,
			Qty:       f.Qty,
			TakerSide: pb.Side(f.TakerSide),
		})
	}
	return out
}

func fromLevels(levels []orderbook.DepthLevel) []*pb.DepthLevel {
	out := make([]*pb.DepthLevel, 0, len(levels))
	for _, l := range levels {
		out = append(out, &pb.DepthLevel{Price: l.Price, Qty: l.Qty})
	}
	return out
}
