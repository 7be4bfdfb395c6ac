package entity

// Supplier representa un proveedor de productos. Un producto puede tener
// cero o un proveedor principal (is_primary en product_suppliers).
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
}
