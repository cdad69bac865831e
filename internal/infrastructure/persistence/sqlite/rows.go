package sqlite

import (
	"shopdata/internal/domain/repository"
	"shopdata/internal/infrastructure/persistence/csvstore"
)

// tableRows flattens one record set into insert arguments in csvstore column
// order. Amounts and dates go in as their canonical text.
func tableRows(ds *repository.Dataset, table string) [][]any {
	var out [][]any
	switch table {
	case repository.TableCustomers:
		for _, c := range ds.Customers {
			out = append(out, []any{c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
				c.RegistrationDate.Format(csvstore.DateLayout), c.Country, c.City, c.PostalCode})
		}
	case repository.TableProducts:
		for _, p := range ds.Products {
			out = append(out, []any{p.ID, p.Name, p.Category, p.Brand, p.Price.String(), p.StockQuantity, p.SupplierID})
		}
	case repository.TableOrders:
		for _, o := range ds.Orders {
			out = append(out, []any{o.ID, o.CustomerID, o.OrderDate.Format(csvstore.DateLayout), string(o.Status),
				o.TotalAmount.String(), o.ShippingAddress, o.PaymentMethod})
		}
	case repository.TableOrderItems:
		for _, it := range ds.OrderItems {
			out = append(out, []any{it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice.String(), it.Subtotal.String()})
		}
	case repository.TableReviews:
		for _, r := range ds.Reviews {
			out = append(out, []any{r.ID, r.ProductID, r.CustomerID, r.Rating, r.Text, r.ReviewDate.Format(csvstore.DateLayout)})
		}
	}
	return out
}
