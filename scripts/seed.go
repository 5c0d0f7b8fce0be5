package main

import (
	"context"
	"log"
	"os"

	"github.com/amacity/storefront/internal/infrastructure/clients/postgres"
	"github.com/amacity/storefront/pkg/config"
	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS stores (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL,
	phone         TEXT,
	category      TEXT NOT NULL,
	rating        NUMERIC(2,1) NOT NULL DEFAULT 0,
	is_open       BOOLEAN NOT NULL DEFAULT true,
	delivery_time TEXT NOT NULL DEFAULT '',
	latitude      DOUBLE PRECISION,
	longitude     DOUBLE PRECISION,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id           BIGSERIAL PRIMARY KEY,
	store_id     BIGINT NOT NULL REFERENCES stores(id),
	name         TEXT NOT NULL,
	description  TEXT,
	price        NUMERIC(10,2) NOT NULL CHECK (price >= 0),
	category     TEXT NOT NULL,
	in_stock     BOOLEAN NOT NULL DEFAULT true,
	tags         TEXT[] NOT NULL DEFAULT '{}',
	image_url    TEXT,
	search_count BIGINT NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS search_analytics (
	id               BIGSERIAL PRIMARY KEY,
	search_term      TEXT NOT NULL,
	product_id       BIGINT REFERENCES products(id),
	store_id         BIGINT REFERENCES stores(id),
	user_session     TEXT NOT NULL,
	clicked          BOOLEAN NOT NULL DEFAULT false,
	search_timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE OR REPLACE VIEW store_popular_products AS
SELECT
	s.id   AS store_id,
	s.name AS store_name,
	p.id   AS product_id,
	p.name AS product_name,
	p.category,
	p.price,
	p.search_count,
	COUNT(a.id) FILTER (WHERE a.clicked) AS click_count
FROM products p
JOIN stores s ON s.id = p.store_id
LEFT JOIN search_analytics a ON a.product_id = p.id
GROUP BY s.id, s.name, p.id, p.name, p.category, p.price, p.search_count
ORDER BY p.search_count DESC, click_count DESC;
`

type storeSeed struct {
	name, email, address, phone, category, deliveryTime string
	rating                                              float64
}

type productSeed struct {
	store, name, description, category string
	price                              float64
	tags                               []string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE search_analytics, products, stores RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	stores := []storeSeed{
		{"Ferramenta Mazzotti", "info@ferramentamazzotti.it", "Via Roma 12, Ravenna", "+39 0544 212121", "Ferramenta", "30-45 min", 4.6},
		{"Gelateria Dolce Vita", "ciao@gelateriadolcevita.it", "Piazza del Popolo 3, Ravenna", "", "Gelateria", "15-25 min", 4.8},
		{"Libreria Dante", "libri@libreriadante.it", "Via Cavour 28, Ravenna", "+39 0544 333444", "Libreria", "45-60 min", 4.4},
		{"Ortofrutta Da Carla", "carla@ortofruttacarla.it", "Mercato Coperto 7, Ravenna", "", "Alimentari", "20-35 min", 4.7},
	}

	storeIDs := map[string]int64{}
	for _, s := range stores {
		var id int64
		err := pgClient.DB().QueryRowContext(ctx, `
			INSERT INTO stores (name, email, address, phone, category, rating, delivery_time)
			VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
			RETURNING id
		`, s.name, s.email, s.address, s.phone, s.category, s.rating, s.deliveryTime).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to seed store %s: %v", s.name, err)
		}
		storeIDs[s.name] = id
	}

	products := []productSeed{
		{"Ferramenta Mazzotti", "Martello carpentiere 500g", "Manico in fibra di vetro", "Utensili", 14.90, []string{"martello", "carpenteria", "utensili"}},
		{"Ferramenta Mazzotti", "Cacciavite a stella PH2", "", "Utensili", 5.50, []string{"cacciavite", "utensili"}},
		{"Ferramenta Mazzotti", "Scatola viti legno 4x40", "Confezione da 200 pezzi", "Minuteria", 7.20, []string{"viti", "legno"}},
		{"Gelateria Dolce Vita", "Vaschetta gelato 750g", "Tre gusti a scelta", "Gelato", 12.00, []string{"gelato", "vaschetta"}},
		{"Gelateria Dolce Vita", "Torta gelato nocciola", "Da ordinare con un giorno di anticipo", "Gelato", 22.00, []string{"gelato", "torta", "nocciola"}},
		{"Libreria Dante", "La Divina Commedia - edizione commentata", "", "Libri", 18.50, []string{"dante", "classici", "libri"}},
		{"Libreria Dante", "Quaderno A5 righe", "", "Cartoleria", 3.20, []string{"quaderno", "cartoleria"}},
		{"Ortofrutta Da Carla", "Cassetta frutta di stagione", "Circa 5kg, varia ogni settimana", "Frutta", 15.00, []string{"frutta", "stagione", "cassetta"}},
		{"Ortofrutta Da Carla", "Pomodori San Marzano 1kg", "", "Verdura", 4.80, []string{"pomodori", "verdura"}},
	}

	productIDs := map[string]int64{}
	for _, p := range products {
		var id int64
		err := pgClient.DB().QueryRowContext(ctx, `
			INSERT INTO products (store_id, name, description, price, category, tags)
			VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
			RETURNING id
		`, storeIDs[p.store], p.name, p.description, p.price, p.category, pq.Array(p.tags)).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.name, err)
		}
		productIDs[p.name] = id
	}

	analytics := []struct {
		term    string
		product string
		session string
		clicked bool
		age     string
	}{
		{"martello", "Martello carpentiere 500g", "seed-session-1", true, "2 days"},
		{"martello", "Martello carpentiere 500g", "seed-session-2", false, "1 day"},
		{"gelato", "Vaschetta gelato 750g", "seed-session-1", true, "3 days"},
		{"gelato", "", "seed-session-3", false, "6 hours"},
		{"quaderno", "Quaderno A5 righe", "seed-session-2", false, "5 days"},
	}

	for _, a := range analytics {
		var productID, storeID interface{}
		if id, ok := productIDs[a.product]; ok {
			productID = id
			for _, p := range products {
				if p.name == a.product {
					storeID = storeIDs[p.store]
				}
			}
		}

		_, err := pgClient.DB().ExecContext(ctx, `
			INSERT INTO search_analytics (search_term, product_id, store_id, user_session, clicked, search_timestamp)
			VALUES ($1, $2, $3, $4, $5, now() - $6::interval)
		`, a.term, productID, storeID, a.session, a.clicked, a.age)
		if err != nil {
			log.Fatalf("Failed to seed analytics for %q: %v", a.term, err)
		}
	}

	log.Printf("Seeded %d stores, %d products and %d analytics rows", len(stores), len(products), len(analytics))
}
