package postgres

import (
	"shopdata/internal/domain/repository"
)

// copyRows converts a record set to COPY rows. Dates stay time.Time; amounts
// go in as their two-decimal text, which pgx parses into NUMERIC.
func copyRows(ds *repository.Dataset, table string) [][]any {
	var out [][]any
	switch table {
	case repository.TableCustomers:
		for _, c := range ds.Customers {
			out = append(out, []any{int32(c.ID), c.FirstName, c.LastName, c.Email, c.Phone,
				c.RegistrationDate, c.Country, c.City, c.PostalCode})
		}
	case repository.TableProducts:
		for _, p := range ds.Products {
			out = append(out, []any{int32(p.ID), p.Name, p.Category, p.Brand, p.Price.String(),
				int32(p.StockQuantity), int32(p.SupplierID)})
		}
	case repository.TableOrders:
		for _, o := range ds.Orders {
			out = append(out, []any{int32(o.ID), int32(o.CustomerID), o.OrderDate, string(o.Status),
				o.TotalAmount.String(), o.ShippingAddress, o.PaymentMethod})
		}
	case repository.TableOrderItems:
		for _, it := range ds.OrderItems {
			out = append(out, []any{int32(it.ID), int32(it.OrderID), int32(it.ProductID), int32(it.Quantity),
				it.UnitPrice.String(), it.Subtotal.String()})
		}
	case repository.TableReviews:
		for _, r := range ds.Reviews {
			out = append(out, []any{int32(r.ID), int32(r.ProductID), int32(r.CustomerID), int32(r.Rating),
				r.Text, r.ReviewDate})
		}
	}
	return out
}
