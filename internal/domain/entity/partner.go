package entity

import "time"

// Partner representa un tercero (cliente o proveedor). Los contactos hijos tienen ParentID.
type Partner struct {
	ID        string
	Name      string
	ParentID  string // vacío si es un tercero de primer nivel
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PartnerAccounts son las cuentas por cobrar/pagar de un tercero en una empresa.
// Un ID vacío significa que la propiedad no está definida.
type PartnerAccounts struct {
	ReceivableAccountID string
	PayableAccountID    string
}
