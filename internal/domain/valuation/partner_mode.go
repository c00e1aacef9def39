package valuation

import (
	"fmt"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// PartnerUpdateMode indica cómo se actualizan las cuentas AR/AP de los terceros existentes.
type PartnerUpdateMode string

const (
	PartnerUpdateNo          PartnerUpdateMode = "no"
	PartnerUpdateMissingOnly PartnerUpdateMode = "missing_only"
	PartnerUpdateAll         PartnerUpdateMode = "all"
)

// ParsePartnerUpdateMode valida el modo recibido en la configuración.
func ParsePartnerUpdateMode(s string) (PartnerUpdateMode, error) {
	switch m := PartnerUpdateMode(s); m {
	case PartnerUpdateNo, PartnerUpdateMissingOnly, PartnerUpdateAll:
		return m, nil
	}
	return "", fmt.Errorf("%w: modo de actualización de terceros %q", domain.ErrInvalidInput, s)
}

// Label texto corto del modo para el reporte.
func (m PartnerUpdateMode) Label() string {
	switch m {
	case PartnerUpdateMissingOnly:
		return "missing only"
	case PartnerUpdateAll:
		return "all"
	}
	return "none"
}

// PartnerChanges calcula las cuentas a escribir en un tercero según el modo.
// current solo se consulta en missing_only. Devuelve nil si no hay nada que escribir.
func PartnerChanges(mode PartnerUpdateMode, current entity.PartnerAccounts, receivableID, payableID string) *entity.PartnerAccounts {
	var out entity.PartnerAccounts
	switch mode {
	case PartnerUpdateAll:
		out.ReceivableAccountID = receivableID
		out.PayableAccountID = payableID
	case PartnerUpdateMissingOnly:
		if current.ReceivableAccountID == "" {
			out.ReceivableAccountID = receivableID
		}
		if current.PayableAccountID == "" {
			out.PayableAccountID = payableID
		}
	}
	if out.ReceivableAccountID == "" && out.PayableAccountID == "" {
		return nil
	}
	return &out
}
