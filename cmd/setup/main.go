// setup ejecuta la configuración contable de valoración de inventario y cuentas AR/AP
// sobre PostgreSQL (o sobre un almacén en memoria cargado desde YAML, para simular).
//
// Uso:
//
//	setup migrate
//	setup apply --company <uuid> [--dry-run] [--format text|json|yaml|pdf] [--output archivo]
//	setup apply --store memory --seed demo.yaml --company demo
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
