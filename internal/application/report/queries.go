package report

// Every query takes the lifetime reference date as its only parameter,
// even those that do not use it, so Run can bind arguments uniformly.

const customerPurchaseSQL = `
WITH customer_orders AS (
    SELECT
        c.customer_id,
        c.first_name || ' ' || c.last_name AS customer_name,
        c.email,
        c.country,
        c.registration_date,
        COUNT(DISTINCT o.order_id) AS total_orders,
        SUM(o.total_amount) AS total_spent,
        AVG(o.total_amount) AS average_order_value,
        MAX(o.order_date) AS last_order_date
    FROM customers c
    INNER JOIN orders o ON c.customer_id = o.customer_id
    WHERE o.order_status IN ('Delivered', 'Shipped')
    GROUP BY c.customer_id, c.first_name, c.last_name, c.email, c.country, c.registration_date
),
customer_categories AS (
    SELECT
        c.customer_id,
        p.category,
        SUM(oi.quantity) AS category_quantity,
        ROW_NUMBER() OVER (PARTITION BY c.customer_id ORDER BY SUM(oi.quantity) DESC) AS rn
    FROM customers c
    INNER JOIN orders o ON c.customer_id = o.customer_id
    INNER JOIN order_items oi ON o.order_id = oi.order_id
    INNER JOIN products p ON oi.product_id = p.product_id
    WHERE o.order_status IN ('Delivered', 'Shipped')
    GROUP BY c.customer_id, p.category
),
customer_products AS (
    SELECT
        c.customer_id,
        p.product_name,
        COUNT(*) AS purchase_count,
        ROW_NUMBER() OVER (PARTITION BY c.customer_id ORDER BY COUNT(*) DESC) AS rn
    FROM customers c
    INNER JOIN orders o ON c.customer_id = o.customer_id
    INNER JOIN order_items oi ON o.order_id = oi.order_id
    INNER JOIN products p ON oi.product_id = p.product_id
    WHERE o.order_status IN ('Delivered', 'Shipped')
    GROUP BY c.customer_id, p.product_name
),
customer_items AS (
    SELECT
        c.customer_id,
        SUM(oi.quantity) AS total_items_purchased
    FROM customers c
    INNER JOIN orders o ON c.customer_id = o.customer_id
    INNER JOIN order_items oi ON o.order_id = oi.order_id
    WHERE o.order_status IN ('Delivered', 'Shipped')
    GROUP BY c.customer_id
),
customer_ratings AS (
    SELECT
        customer_id,
        ROUND(AVG(rating), 2) AS average_rating_given
    FROM reviews
    GROUP BY customer_id
)
SELECT
    co.customer_id,
    co.customer_name,
    co.email,
    co.country,
    co.total_orders,
    ROUND(co.total_spent, 2) AS total_spent,
    ROUND(co.average_order_value, 2) AS average_order_value,
    cc.category AS most_purchased_category,
    cp.product_name AS favorite_product,
    ci.total_items_purchased,
    COALESCE(cr.average_rating_given, 0) AS average_rating_given,
    co.last_order_date,
    CAST(JULIANDAY(?1) - JULIANDAY(co.registration_date) AS INTEGER) AS customer_lifetime_days
FROM customer_orders co
LEFT JOIN customer_categories cc ON co.customer_id = cc.customer_id AND cc.rn = 1
LEFT JOIN customer_products cp ON co.customer_id = cp.customer_id AND cp.rn = 1
LEFT JOIN customer_items ci ON co.customer_id = ci.customer_id
LEFT JOIN customer_ratings cr ON co.customer_id = cr.customer_id
ORDER BY co.total_spent DESC
LIMIT 20`

const productPerformanceSQL = `
WITH product_sales AS (
    SELECT
        p.product_id,
        p.product_name,
        p.category,
        p.brand,
        p.price AS current_price,
        COUNT(DISTINCT oi.order_id) AS number_of_orders,
        SUM(oi.quantity) AS total_quantity_sold,
        SUM(oi.subtotal) AS total_revenue
    FROM products p
    INNER JOIN order_items oi ON p.product_id = oi.product_id
    INNER JOIN orders o ON oi.order_id = o.order_id
    WHERE o.order_status IN ('Delivered', 'Shipped')
    GROUP BY p.product_id, p.product_name, p.category, p.brand, p.price
),
product_reviews AS (
    SELECT
        product_id,
        COUNT(*) AS total_reviews,
        ROUND(AVG(rating), 2) AS average_rating,
        SUM(CASE WHEN rating = 5 THEN 1 ELSE 0 END) AS five_star_reviews,
        SUM(CASE WHEN rating = 1 THEN 1 ELSE 0 END) AS one_star_reviews
    FROM reviews
    GROUP BY product_id
)
SELECT
    ps.product_id,
    ps.product_name,
    ps.category,
    ps.brand,
    ROUND(ps.current_price, 2) AS current_price,
    ps.number_of_orders,
    ps.total_quantity_sold,
    ROUND(ps.total_revenue, 2) AS total_revenue,
    ROUND(CAST(ps.total_revenue AS REAL) / ps.total_quantity_sold, 2) AS avg_revenue_per_unit,
    COALESCE(pr.total_reviews, 0) AS total_reviews,
    COALESCE(pr.average_rating, 0) AS average_rating,
    COALESCE(pr.five_star_reviews, 0) AS five_star_reviews,
    COALESCE(pr.one_star_reviews, 0) AS one_star_reviews,
    CASE
        WHEN pr.total_reviews > 0
        THEN ROUND((CAST(pr.five_star_reviews AS REAL) / pr.total_reviews * 100), 1)
        ELSE 0
    END AS five_star_percentage
FROM product_sales ps
LEFT JOIN product_reviews pr ON ps.product_id = pr.product_id
WHERE ?1 IS NOT NULL
ORDER BY ps.total_revenue DESC
LIMIT 15`

const categoryPerformanceSQL = `
SELECT
    p.category,
    COUNT(DISTINCT p.product_id) AS total_products,
    COUNT(DISTINCT oi.order_id) AS total_orders,
    SUM(oi.quantity) AS total_units_sold,
    ROUND(SUM(oi.subtotal), 2) AS total_revenue,
    ROUND(AVG(oi.unit_price), 2) AS avg_product_price,
    ROUND(AVG(r.rating), 2) AS avg_category_rating,
    COUNT(DISTINCT r.review_id) AS total_reviews
FROM products p
INNER JOIN order_items oi ON p.product_id = oi.product_id
INNER JOIN orders o ON oi.order_id = o.order_id
LEFT JOIN reviews r ON p.product_id = r.product_id
WHERE o.order_status IN ('Delivered', 'Shipped') AND ?1 IS NOT NULL
GROUP BY p.category
ORDER BY total_revenue DESC`
