package avro

import (
	"shopdata/internal/domain/order"
	"shopdata/internal/domain/review"
)

func OrderItemNative(it order.OrderItem) map[string]any {
	return map[string]any{
		"order_item_id": int64(it.ID),
		"order_id":      int64(it.OrderID),
		"product_id":    int64(it.ProductID),
		"quantity":      int32(it.Quantity),
		"unit_price":    it.UnitPrice.Decimal().Rat(),
		"subtotal":      it.Subtotal.Decimal().Rat(),
	}
}

func ReviewNative(r review.Review) map[string]any {
	return map[string]any{
		"review_id":   int64(r.ID),
		"product_id":  int64(r.ProductID),
		"customer_id": int64(r.CustomerID),
		"rating":      int32(r.Rating),
		"review_text": r.Text,
		"review_date": r.ReviewDate.UTC(),
	}
}
