// seed genera un script SQL con datos de demostración para el servicio de
// alertas: una empresa, dos bodegas, productos con tipos variados, ventas de
// los últimos 30 días, proveedores y umbrales por tipo.
//
// Uso: go run ./cmd/seed [archivo-salida.sql]
// Por defecto escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultOut = "internal/infrastructure/postgres/migrations/002_seed_demo.sql"

type product struct {
	id          string
	sku         string
	name        string
	productType string
}

func main() {
	out := defaultOut
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	var b strings.Builder
	b.WriteString("-- Datos de demostración. Generado por cmd/seed; no editar a mano.\n\n")

	companyID := uuid.New().String()
	fmt.Fprintf(&b, "INSERT INTO companies (id, name) VALUES ('%s', 'Distribuciones Demo SAS');\n\n", companyID)

	warehouses := []string{uuid.New().String(), uuid.New().String()}
	fmt.Fprintf(&b, "INSERT INTO warehouses (id, company_id, name) VALUES\n")
	fmt.Fprintf(&b, "  ('%s', '%s', 'Bodega Norte'),\n", warehouses[0], companyID)
	fmt.Fprintf(&b, "  ('%s', '%s', 'Bodega Sur');\n\n", warehouses[1], companyID)

	products := []product{
		{uuid.New().String(), "TOR-M4", "Tornillo M4", "widget"},
		{uuid.New().String(), "TUE-M4", "Tuerca M4", "widget"},
		{uuid.New().String(), "SEN-T1", "Sensor de temperatura", "gadget"},
		{uuid.New().String(), "CAB-2M", "Cable 2m", "gadget"},
		{uuid.New().String(), "CAJ-PL", "Caja plástica", "packaging"},
	}
	b.WriteString("INSERT INTO products (id, company_id, sku, name, product_type) VALUES\n")
	for i, p := range products {
		sep := ","
		if i == len(products)-1 {
			sep = ";"
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s')%s\n", p.id, companyID, p.sku, p.name, p.productType, sep)
	}
	b.WriteString("\n")

	// Stock deliberadamente bajo en algunos pares para que el endpoint tenga
	// alertas que mostrar.
	rng := rand.New(rand.NewSource(42))
	b.WriteString("INSERT INTO inventory (product_id, warehouse_id, quantity) VALUES\n")
	var invLines []string
	for _, p := range products {
		for _, w := range warehouses {
			qty := rng.Intn(8) // bajo el umbral por defecto (10)
			if rng.Intn(3) == 0 {
				qty = 20 + rng.Intn(40) // algunos pares con stock sano
			}
			invLines = append(invLines, fmt.Sprintf("  ('%s', '%s', %d)", p.id, w, qty))
		}
	}
	b.WriteString(strings.Join(invLines, ",\n") + ";\n\n")

	// Ventas dispersas en los últimos 30 días.
	b.WriteString("INSERT INTO sales (product_id, warehouse_id, quantity, sale_date) VALUES\n")
	var saleLines []string
	now := time.Now().UTC()
	for _, p := range products {
		for _, w := range warehouses {
			for i := 0; i < 6; i++ {
				day := now.AddDate(0, 0, -rng.Intn(30))
				qty := 1 + rng.Intn(5)
				saleLines = append(saleLines, fmt.Sprintf("  ('%s', '%s', %d, '%s')",
					p.id, w, qty, day.Format("2006-01-02 15:04:05+00")))
			}
		}
	}
	b.WriteString(strings.Join(saleLines, ",\n") + ";\n\n")

	supplierID := uuid.New().String()
	fmt.Fprintf(&b, "INSERT INTO suppliers (id, name, contact_email) VALUES ('%s', 'Aceros SAS', 'pedidos@aceros.co');\n", supplierID)
	b.WriteString("INSERT INTO product_suppliers (product_id, supplier_id, is_primary) VALUES\n")
	var psLines []string
	for _, p := range products[:3] {
		psLines = append(psLines, fmt.Sprintf("  ('%s', '%s', TRUE)", p.id, supplierID))
	}
	b.WriteString(strings.Join(psLines, ",\n") + ";\n\n")

	b.WriteString("INSERT INTO stock_thresholds (product_type, threshold_quantity) VALUES\n")
	b.WriteString("  ('gadget', 3),\n")
	b.WriteString("  ('packaging', 15);\n")
	// 'widget' queda sin configurar a propósito: usa el umbral por defecto.

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seed escrito en %s\n", out)
}
