package handler

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/skustore/skustore/internal/adapter/handler/pb"
	"github.com/skustore/skustore/internal/core/domain"
	"github.com/skustore/skustore/internal/core/service"
)

const (
	statusAdded           = "success: item was added"
	statusRemoved         = "success: item was removed"
	statusAlreadyAbsent   = "success: item didn't exist"
	statusQuantityUpdated = "success: quantity was updated"
	statusPriceUpdated    = "success: price was updated"
)

type GRPCHandler struct {
	pb.UnimplementedInventoryServer
	inventory *service.InventoryService
	logger    zerolog.Logger
}

func NewGRPCHandler(inventory *service.InventoryService, logger zerolog.Logger) *GRPCHandler {
	return &GRPCHandler{inventory: inventory, logger: logger}
}

func (h *GRPCHandler) Add(ctx context.Context, req *pb.Item) (*pb.InventoryChangeResponse, error) {
	item, err := itemFromProto(req)
	if err != nil {
		return nil, statusFromError(err)
	}

	if err := h.inventory.Add(ctx, item); err != nil {
		return nil, statusFromError(err)
	}

	h.logger.Info().Str("sku", item.SKU).Msg("item added")
	return &pb.InventoryChangeResponse{Status: statusAdded}, nil
}

func (h *GRPCHandler) Remove(ctx context.Context, req *pb.ItemIdentifier) (*pb.InventoryChangeResponse, error) {
	if req == nil {
		return nil, statusFromError(domain.ErrMissingIdentifier)
	}

	removed, err := h.inventory.Remove(ctx, req.GetSku())
	if err != nil {
		return nil, statusFromError(err)
	}

	msg := statusAlreadyAbsent
	if removed {
		msg = statusRemoved
		h.logger.Info().Str("sku", req.GetSku()).Msg("item removed")
	}
	return &pb.InventoryChangeResponse{Status: msg}, nil
}

func (h *GRPCHandler) Get(ctx context.Context, req *pb.ItemIdentifier) (*pb.Item, error) {
	if req == nil {
		return nil, statusFromError(domain.ErrMissingIdentifier)
	}

	item, err := h.inventory.Get(ctx, req.GetSku())
	if err != nil {
		return nil, statusFromError(err)
	}

	return itemToProto(item), nil
}

func (h *GRPCHandler) UpdateQuantity(ctx context.Context, req *pb.QuantityChangeRequest) (*pb.InventoryUpdateResponse, error) {
	stock, err := h.inventory.AdjustQuantity(ctx, req.GetSku(), req.GetChange())
	if err != nil {
		return nil, statusFromError(err)
	}

	h.logger.Info().Str("sku", req.GetSku()).Int32("change", req.GetChange()).Uint32("quantity", stock.Quantity).Msg("quantity updated")
	return &pb.InventoryUpdateResponse{
		Status:   statusQuantityUpdated,
		Price:    priceToProto(stock.Price),
		Quantity: stock.Quantity,
	}, nil
}

func (h *GRPCHandler) UpdatePrice(ctx context.Context, req *pb.PriceChangeRequest) (*pb.InventoryUpdateResponse, error) {
	stock, err := h.inventory.SetPrice(ctx, req.GetSku(), priceFromProto(req.GetPrice()))
	if err != nil {
		return nil, statusFromError(err)
	}

	h.logger.Info().Str("sku", req.GetSku()).Float32("price", req.GetPrice()).Msg("price updated")
	return &pb.InventoryUpdateResponse{
		Status:   statusPriceUpdated,
		Price:    priceToProto(stock.Price),
		Quantity: stock.Quantity,
	}, nil
}

func (h *GRPCHandler) Watch(req *pb.ItemIdentifier, stream pb.Inventory_WatchServer) error {
	if req == nil {
		return statusFromError(domain.ErrMissingIdentifier)
	}

	ctx := stream.Context()
	sub, err := h.inventory.Watch(ctx, req.GetSku())
	if err != nil {
		return statusFromError(err)
	}
	defer sub.Close()

	h.logger.Info().Str("sku", req.GetSku()).Msg("watch stream started")

	for ev := range sub.Events() {
		if ev.Deleted {
			return status.Error(codes.NotFound, domain.ErrItemNotFound.Error())
		}
		if err := stream.Send(itemToProto(ev.Item)); err != nil {
			return err
		}
	}

	return ctx.Err()
}

// statusFromError maps domain error kinds to gRPC status codes.
func statusFromError(err error) error {
	var code codes.Code
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument, domain.KindNoOpPrice:
		code = codes.InvalidArgument
	case domain.KindAlreadyExists:
		code = codes.AlreadyExists
	case domain.KindNotFound:
		code = codes.NotFound
	case domain.KindInsufficientStock:
		code = codes.ResourceExhausted
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

func itemFromProto(req *pb.Item) (domain.Item, error) {
	if req.GetIdentifier() == nil {
		return domain.Item{}, domain.ErrMissingIdentifier
	}

	item := domain.Item{SKU: req.GetIdentifier().GetSku()}
	if st := req.GetStock(); st != nil {
		item.Stock = &domain.Stock{
			Price:    priceFromProto(st.GetPrice()),
			Quantity: st.GetQuantity(),
		}
	}
	if info := req.GetInformation(); info != nil {
		item.Info = &domain.Info{
			Name:        info.Name,
			Description: info.Description,
		}
	}
	return item, nil
}

func itemToProto(item domain.Item) *pb.Item {
	out := &pb.Item{
		Identifier: &pb.ItemIdentifier{Sku: item.SKU},
	}
	if item.Stock != nil {
		out.Stock = &pb.ItemStock{
			Price:    priceToProto(item.Stock.Price),
			Quantity: item.Stock.Quantity,
		}
	}
	if item.Info != nil {
		out.Information = &pb.ItemInformation{
			Name:        item.Info.Name,
			Description: item.Info.Description,
		}
	}
	return out
}

func priceFromProto(price float32) decimal.Decimal {
	return decimal.NewFromFloat32(price)
}

func priceToProto(price decimal.Decimal) float32 {
	return float32(price.InexactFloat64())
}
