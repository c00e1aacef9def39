package entity

import "time"

// Company representa la empresa (unidad organizativa) sobre la que se aplica la configuración.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
