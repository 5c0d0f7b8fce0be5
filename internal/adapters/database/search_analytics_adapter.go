package database

import (
	"context"
	"time"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/domain/repositories"
	"github.com/amacity/storefront/internal/infrastructure/clients/postgres"
	apperrors "github.com/amacity/storefront/pkg/errors"
)

type SearchAnalyticsAdapter struct {
	client *postgres.Client
}

func NewSearchAnalyticsAdapter(client *postgres.Client) repositories.SearchAnalyticsRepository {
	return &SearchAnalyticsAdapter{client: client}
}

func (a *SearchAnalyticsAdapter) Insert(ctx context.Context, analytic *entities.SearchAnalytic) error {
	if analytic.SearchTimestamp.IsZero() {
		analytic.SearchTimestamp = time.Now()
	}

	query := `
		INSERT INTO search_analytics
		(search_term, product_id, store_id, user_session, clicked, search_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := a.client.DB().QueryRowContext(ctx, query,
		analytic.SearchTerm,
		analytic.ProductID,
		analytic.StoreID,
		analytic.UserSession,
		analytic.Clicked,
		analytic.SearchTimestamp,
	).Scan(&analytic.ID)

	if err != nil {
		return apperrors.NewInternalError("failed to insert search analytic", err)
	}

	return nil
}

// MarkClicked flips clicked on the single most recent row for the session,
// product and term. When the triple matches several rows only the newest one
// changes; when it matches none this is a no-op, not an error.
func (a *SearchAnalyticsAdapter) MarkClicked(ctx context.Context, session string, productID int64, term string) error {
	query := `
		UPDATE search_analytics SET clicked = true
		WHERE id = (
			SELECT id FROM search_analytics
			WHERE user_session = $1 AND product_id = $2 AND search_term = $3
			ORDER BY search_timestamp DESC
			LIMIT 1
		)
	`

	_, err := a.client.DB().ExecContext(ctx, query, session, productID, term)
	if err != nil {
		return apperrors.NewInternalError("failed to mark search analytic clicked", err)
	}

	return nil
}

func (a *SearchAnalyticsAdapter) ListTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	query := `
		SELECT search_timestamp FROM search_analytics
		WHERE search_timestamp >= $1
		ORDER BY search_timestamp ASC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, since)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list search timestamps", err)
	}
	defer rows.Close()

	var timestamps []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, apperrors.NewInternalError("failed to scan search timestamp", err)
		}
		timestamps = append(timestamps, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating search timestamps", err)
	}

	return timestamps, nil
}

func (a *SearchAnalyticsAdapter) PopularByStore(ctx context.Context, limit int) ([]*entities.PopularProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT store_id, store_name, product_id, product_name, category, price, search_count, click_count
		FROM store_popular_products
		LIMIT $1
	`

	rows, err := a.client.DB().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get popular products", err)
	}
	defer rows.Close()

	var popular []*entities.PopularProduct
	for rows.Next() {
		p := &entities.PopularProduct{}
		err := rows.Scan(
			&p.StoreID,
			&p.StoreName,
			&p.ProductID,
			&p.ProductName,
			&p.Category,
			&p.Price,
			&p.SearchCount,
			&p.ClickCount,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan popular product", err)
		}
		popular = append(popular, p)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating popular products", err)
	}

	return popular, nil
}
