// migrate crea el esquema de la base de datos si no existe.
//
// Uso: go run ./cmd/migrate
// Lee la conexión de las mismas variables de entorno que el API (DB_HOST, DB_PORT, etc.).
package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ecommerce-manager/pkg/config"
	"github.com/tu-usuario/ecommerce-manager/pkg/logger"
)

// Esquema completo. Las sentencias son idempotentes (IF NOT EXISTS) para poder
// correr la herramienta en cada despliegue.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		product_id BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		price      NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		stock      BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		user_id       BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'customer' CHECK (role IN ('admin', 'customer'))
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		order_id    BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES users (user_id),
		product_id  BIGINT NOT NULL REFERENCES products (product_id),
		quantity    BIGINT NOT NULL CHECK (quantity > 0),
		order_date  DATE NOT NULL DEFAULT CURRENT_DATE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_product ON orders (product_id)`,

	`CREATE TABLE IF NOT EXISTS sales (
		sale_id    BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products (product_id),
		quantity   BIGINT NOT NULL CHECK (quantity > 0),
		sale_date  DATE NOT NULL DEFAULT CURRENT_DATE
	)`,

	`CREATE TABLE IF NOT EXISTS suppliers (
		supplier_id BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		contact     TEXT NOT NULL DEFAULT ''
	)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer conn.Close(ctx)

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			log.Fatal().Err(err).Str("stmt", stmt).Msg("ejecutar migración")
		}
	}

	log.Info().Int("statements", len(statements)).Msg("esquema creado/verificado")
}
