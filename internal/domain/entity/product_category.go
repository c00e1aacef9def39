package entity

// ProductCategory representa una categoría de productos con sus propiedades de valoración
// de inventario. Las propiedades dependen de la empresa: el repositorio las resuelve con
// el companyID que recibe como argumento.
type ProductCategory struct {
	ID       string
	ParentID string // vacío si es raíz
	Name     string

	CostMethod         string // standard, fifo, average
	Valuation          string // manual_periodic, real_time
	StockJournalID     string
	ValuationAccountID string
	InputAccountID     string
	OutputAccountID    string
	ExpenseAccountID   string // vacío si no tiene cuenta de gasto
}

// ValuationSettings agrupa los campos que escribe la configuración FIFO + tiempo real.
type ValuationSettings struct {
	CostMethod         string
	Valuation          string
	StockJournalID     string
	ValuationAccountID string
	InputAccountID     string
	OutputAccountID    string
}
