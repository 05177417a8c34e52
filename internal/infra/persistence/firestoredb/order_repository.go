package firestoredb

import (
	"context"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// orderRepository implements repository.OrderRepository on the document
// store.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

// Save writes the full order document under its OrderID.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	_, err := repo.client.Collection(ordersCollection).Doc(order.OrderID).Set(ctx, toOrderModel(order))
	if err != nil {
		return errors.Wrap(err, "failed to save order")
	}

	return nil
}

// SaveSummary writes the minimal order record under its OrderID.
func (repo *orderRepository) SaveSummary(ctx context.Context, summary *entity.OrderSummary) error {
	orderM := &model.OrderSummaryModel{
		OrderID:      summary.OrderID,
		SellerID:     summary.SellerID,
		OrderDetails: summary.OrderDetails,
		Status:       summary.Status,
		CreatedAt:    summary.CreatedAt,
	}

	_, err := repo.client.Collection(orderSummariesCollection).Doc(summary.OrderID).Set(ctx, orderM)
	if err != nil {
		return errors.Wrap(err, "failed to save order summary")
	}

	return nil
}

func toOrderModel(order *entity.Order) *model.OrderModel {
	products := make([]model.OrderItemModel, 0, len(order.Products))
	for _, item := range order.Products {
		products = append(products, model.OrderItemModel(item))
	}

	return &model.OrderModel{
		OrderID:         order.OrderID,
		UserID:          order.UserID,
		Products:        products,
		Total:           order.Total,
		DeliveryAddress: order.DeliveryAddress,
		Distance:        order.Distance,
		TotalWeightKg:   order.TotalWeightKg,
		DeliveryFee:     order.DeliveryFee,
		GrandTotal:      order.GrandTotal,
		StoreID:         order.StoreID,
		OrderStatus:     order.OrderStatus,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
