package sqlite

var createTables = []string{
	`CREATE TABLE customers (
		customer_id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT,
		registration_date DATE NOT NULL,
		country TEXT,
		city TEXT,
		postal_code TEXT
	)`,
	`CREATE TABLE products (
		product_id INTEGER PRIMARY KEY,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		brand TEXT,
		price DECIMAL(10, 2) NOT NULL,
		stock_quantity INTEGER DEFAULT 0,
		supplier_id INTEGER
	)`,
	`CREATE TABLE orders (
		order_id INTEGER PRIMARY KEY,
		customer_id INTEGER NOT NULL,
		order_date DATE NOT NULL,
		order_status TEXT CHECK(order_status IN ('Pending', 'Processing', 'Shipped', 'Delivered', 'Cancelled')),
		total_amount DECIMAL(10, 2) NOT NULL,
		shipping_address TEXT,
		payment_method TEXT,
		FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
	)`,
	`CREATE TABLE order_items (
		order_item_id INTEGER PRIMARY KEY,
		order_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL CHECK(quantity > 0),
		unit_price DECIMAL(10, 2) NOT NULL,
		subtotal DECIMAL(10, 2) NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(order_id),
		FOREIGN KEY (product_id) REFERENCES products(product_id)
	)`,
	`CREATE TABLE reviews (
		review_id INTEGER PRIMARY KEY,
		product_id INTEGER NOT NULL,
		customer_id INTEGER NOT NULL,
		rating INTEGER CHECK(rating >= 1 AND rating <= 5),
		review_text TEXT,
		review_date DATE NOT NULL,
		FOREIGN KEY (product_id) REFERENCES products(product_id),
		FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
	)`,
}
