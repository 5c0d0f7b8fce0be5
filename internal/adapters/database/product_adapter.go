package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/domain/repositories"
	"github.com/amacity/storefront/internal/infrastructure/clients/postgres"
	apperrors "github.com/amacity/storefront/pkg/errors"
)

// ProductAdapter implements ProductRepository
type ProductAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProductAdapter creates a new product adapter
func NewProductAdapter(client *postgres.Client) repositories.ProductRepository {
	return &ProductAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var productColumns = []interface{}{
	goqu.I("p.id"), goqu.I("p.store_id"), goqu.I("p.name"), goqu.I("p.description"),
	goqu.I("p.price"), goqu.I("p.category"), goqu.I("p.in_stock"), goqu.I("p.tags"),
	goqu.I("p.image_url"), goqu.I("p.search_count"), goqu.I("p.created_at"), goqu.I("p.updated_at"),
}

// joinedDataset selects in-stock products with the owning store's display
// fields attached. The join happens at read time so the product table never
// carries redundant store columns.
func (a *ProductAdapter) joinedDataset() *goqu.SelectDataset {
	columns := append([]interface{}{}, productColumns...)
	columns = append(columns,
		goqu.I("s.name").As("store_name"),
		goqu.I("s.address").As("store_address"),
		goqu.I("s.rating").As("store_rating"),
	)

	return a.db.Select(columns...).
		From(goqu.T("products").As("p")).
		Join(goqu.T("stores").As("s"), goqu.On(goqu.I("p.store_id").Eq(goqu.I("s.id")))).
		Where(goqu.I("p.in_stock").Eq(true))
}

// ListInStock retrieves all in-stock products with store fields, ordered by name
func (a *ProductAdapter) ListInStock(ctx context.Context) ([]*entities.Product, error) {
	query, args, err := a.joinedDataset().
		Order(goqu.I("p.name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	return a.queryJoined(ctx, query, args...)
}

// Search retrieves in-stock products matching the query in name, category or
// tags, with store fields, capped at limit rows
func (a *ProductAdapter) Search(ctx context.Context, query string, limit int) ([]*entities.Product, error) {
	pattern := fmt.Sprintf("%%%s%%", query)

	ds := a.joinedDataset().
		Where(goqu.Or(
			goqu.I("p.name").ILike(pattern),
			goqu.I("p.category").ILike(pattern),
			goqu.L("p.tags @> ?", pq.Array([]string{query})),
		))

	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	sqlStr, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build search query", err)
	}

	return a.queryJoined(ctx, sqlStr, args...)
}

func (a *ProductAdapter) queryJoined(ctx context.Context, query string, args ...interface{}) ([]*entities.Product, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query products", err)
	}
	defer rows.Close()

	products := []*entities.Product{}
	for rows.Next() {
		product := &entities.Product{}
		var description, imageURL sql.NullString

		err := rows.Scan(
			&product.ID,
			&product.StoreID,
			&product.Name,
			&description,
			&product.Price,
			&product.Category,
			&product.InStock,
			pq.Array(&product.Tags),
			&imageURL,
			&product.SearchCount,
			&product.CreatedAt,
			&product.UpdatedAt,
			&product.StoreName,
			&product.StoreAddress,
			&product.StoreRating,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan product", err)
		}

		product.Description = description.String
		product.ImageURL = imageURL.String

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating products", err)
	}

	return products, nil
}

// ListByStore retrieves a store's in-stock products ordered by name. The
// caller already has the store record, so no join here.
func (a *ProductAdapter) ListByStore(ctx context.Context, storeID int64) ([]*entities.Product, error) {
	query, args, err := a.db.Select(
		"id", "store_id", "name", "description", "price", "category",
		"in_stock", "tags", "image_url", "search_count", "created_at", "updated_at",
	).From("products").
		Where(goqu.Ex{"store_id": storeID, "in_stock": true}).
		Order(goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build store products query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list store products", err)
	}
	defer rows.Close()

	products := []*entities.Product{}
	for rows.Next() {
		product := &entities.Product{}
		var description, imageURL sql.NullString

		err := rows.Scan(
			&product.ID,
			&product.StoreID,
			&product.Name,
			&description,
			&product.Price,
			&product.Category,
			&product.InStock,
			pq.Array(&product.Tags),
			&imageURL,
			&product.SearchCount,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan product", err)
		}

		product.Description = description.String
		product.ImageURL = imageURL.String

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating products", err)
	}

	return products, nil
}

// IncrementSearchCount bumps search_count server-side so concurrent clicks
// never lose updates to a read-modify-write race.
func (a *ProductAdapter) IncrementSearchCount(ctx context.Context, id int64) error {
	query := `UPDATE products SET search_count = search_count + 1 WHERE id = $1`

	_, err := a.client.DB().ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.NewInternalError("failed to increment search count", err)
	}

	return nil
}
