package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/domain/repositories"
	tsclient "github.com/amacity/storefront/internal/infrastructure/clients/typesense"
)

const collectionName = tsclient.ProductsCollection

// TypesenseAdapter implements the product suggestion index using Typesense.
// It only serves the suggest path; the relational store keeps the exact
// substring semantics of the main search.
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements ProductIndexRepository
var _ repositories.ProductIndexRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// Index upserts a product document
func (a *TypesenseAdapter) Index(ctx context.Context, product *entities.Product) error {
	document := map[string]interface{}{
		"id":           strconv.FormatInt(product.ID, 10),
		"store_id":     product.StoreID,
		"name":         product.Name,
		"category":     product.Category,
		"tags":         product.Tags,
		"price":        product.Price,
		"in_stock":     product.InStock,
		"search_count": product.SearchCount,
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index product: %w", err)
	}

	return nil
}

// Delete removes a product from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id int64) error {
	_, err := a.client.Client().Collection(collectionName).Document(strconv.FormatInt(id, 10)).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete product from index: %w", err)
	}
	return nil
}

// Suggest returns in-stock products matching the query by name, category or
// tags, most-searched first.
func (a *TypesenseAdapter) Suggest(ctx context.Context, query string, limit int) ([]*entities.Product, error) {
	searchParams := &api.SearchCollectionParams{
		Q:        pointer.String(query),
		QueryBy:  pointer.String("name,category,tags"),
		FilterBy: pointer.String("in_stock:=true"),
		SortBy:   pointer.String("search_count:desc"),
		PerPage:  pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search product index: %w", err)
	}

	products := []*entities.Product{}
	if result.Hits == nil {
		return products, nil
	}

	for _, hit := range *result.Hits {
		doc := *hit.Document

		product := &entities.Product{}
		if val, ok := doc["id"].(string); ok {
			if id, err := strconv.ParseInt(val, 10, 64); err == nil {
				product.ID = id
			}
		}
		if val, ok := doc["store_id"].(float64); ok {
			product.StoreID = int64(val)
		}
		if val, ok := doc["name"].(string); ok {
			product.Name = val
		}
		if val, ok := doc["category"].(string); ok {
			product.Category = val
		}
		if val, ok := doc["price"].(float64); ok {
			product.Price = val
		}
		if val, ok := doc["in_stock"].(bool); ok {
			product.InStock = val
		}
		if val, ok := doc["search_count"].(float64); ok {
			product.SearchCount = int64(val)
		}
		if raw, ok := doc["tags"].([]interface{}); ok {
			for _, t := range raw {
				if tag, ok := t.(string); ok {
					product.Tags = append(product.Tags, tag)
				}
			}
		}

		products = append(products, product)
	}

	return products, nil
}
