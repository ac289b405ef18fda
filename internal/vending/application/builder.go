package application

import (
	"fmt"

	"distributrice/internal/config"
	"distributrice/internal/vending/domain"
)

// Build crée la machine décrite par la configuration en choisissant le constructeur:
// quantités explicites, emplacement, ou machine pleine par défaut.
func Build(cfg config.Machine) (*domain.VendingMachine, error) {
	switch {
	case cfg.Stock != nil && cfg.Location != nil:
		return nil, config.ErrConflictingMachineConfig
	case cfg.Stock != nil:
		s := cfg.Stock
		m, err := domain.NewWithQuantities(
			orMax(s.Coke), orMax(s.SevenUp), orMax(s.AppleJuice), orMax(s.IcedTea),
		)
		if err != nil {
			return nil, fmt.Errorf("initial stock: %w", err)
		}
		return m, nil
	case cfg.Location != nil:
		return domain.NewWithLocation(*cfg.Location), nil
	default:
		return domain.New(), nil
	}
}

// orMax: une quantité non configurée vaut la capacité de la machine
func orMax(v *int) int {
	if v == nil {
		return domain.MaxQuantity
	}
	return *v
}
