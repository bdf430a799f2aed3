package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/models"
)

// LoadPostgres reads the sales dataset from the sales table of the database
// at databaseURL and primes the cache with it. It is the alternative to the
// CSV source for deployments that keep the dataset in Postgres; the schema
// and caching semantics match Load.
func LoadPostgres(ctx context.Context, databaseURL string) ([]models.SaleRecord, error) {
	mu.Lock()
	if cached != nil {
		records := cached
		mu.Unlock()
		return records, nil
	}
	mu.Unlock()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &LoadError{Source: "postgres", Err: err}
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, &LoadError{Source: "postgres", Err: err}
	}

	query := `
		SELECT order_id, order_date, region, category, product,
		       quantity, unit_price, discount, payment_method,
		       total_amount, month
		FROM sales
		ORDER BY order_date
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, &LoadError{Source: "postgres", Err: err}
	}
	defer rows.Close()

	records := make([]models.SaleRecord, 0)
	for rows.Next() {
		var r models.SaleRecord
		if err := rows.Scan(
			&r.OrderID, &r.OrderDate, &r.Region, &r.Category, &r.Product,
			&r.Quantity, &r.UnitPrice, &r.Discount, &r.PaymentMethod,
			&r.TotalAmount, &r.Month,
		); err != nil {
			return nil, &LoadError{Source: "postgres", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: "postgres", Err: err}
	}

	Prime(records)
	return records, nil
}
