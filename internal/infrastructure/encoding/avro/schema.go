package avro

// Amounts use the decimal logical type so cents survive the round trip.
// Dates use the date logical type (days since the epoch).

const OrderItemSchema = `{
	"type": "record",
	"name": "OrderItem",
	"namespace": "shopdata.order",
	"fields": [
		{"name": "order_item_id", "type": "long"},
		{"name": "order_id", "type": "long"},
		{"name": "product_id", "type": "long"},
		{"name": "quantity", "type": "int"},
		{"name": "unit_price", "type": {"type": "bytes", "logicalType": "decimal", "precision": 10, "scale": 2}},
		{"name": "subtotal", "type": {"type": "bytes", "logicalType": "decimal", "precision": 10, "scale": 2}}
	]
}`

const ReviewSchema = `{
	"type": "record",
	"name": "Review",
	"namespace": "shopdata.review",
	"fields": [
		{"name": "review_id", "type": "long"},
		{"name": "product_id", "type": "long"},
		{"name": "customer_id", "type": "long"},
		{"name": "rating", "type": "int"},
		{"name": "review_text", "type": "string"},
		{"name": "review_date", "type": {"type": "int", "logicalType": "date"}}
	]
}`
