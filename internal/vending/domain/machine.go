package domain

import (
	shared "distributrice/internal/shared/domain"
)

// MaxQuantity est la quantité maximale d'un breuvage dans la machine
const MaxQuantity = 5

// VendingMachine modélise une machine distributrice offrant quatre breuvages.
// On peut la recharger, éjecter un breuvage et consulter les quantités restantes.
//
// Aucune synchronisation interne: une instance doit être utilisée par un seul
// appelant à la fois (Dispense vérifie puis décrémente, ce n'est pas atomique).
type VendingMachine struct {
	location    string
	hasLocation bool
	stock       [beverageCount]shared.Quantity
}

// New crée une machine sans emplacement, pleine pour chaque breuvage
func New() *VendingMachine {
	m := &VendingMachine{}
	m.Refill()
	return m
}

// NewWithLocation crée une machine pleine à l'emplacement indiqué.
// L'emplacement n'est pas validé, une chaîne vide est acceptée.
func NewWithLocation(location string) *VendingMachine {
	m := New()
	m.location = location
	m.hasLocation = true
	return m
}

// NewWithQuantities crée une machine sans emplacement avec les quantités
// indiquées. Chaque quantité doit être comprise entre 0 et MaxQuantity;
// la première invalide (dans l'ordre des paramètres) est rapportée.
func NewWithQuantities(coke, sevenUp, appleJuice, icedTea int) (*VendingMachine, error) {
	params := [beverageCount]struct {
		field string
		value int
	}{
		Coke:       {"nbCoke", coke},
		SevenUp:    {"nbSevenUp", sevenUp},
		AppleJuice: {"nbAppleJuice", appleJuice},
		IcedTea:    {"nbIcedTea", icedTea},
	}

	var stock [beverageCount]shared.Quantity
	for i, p := range params {
		q, err := shared.NewQuantity(p.field, p.value, MaxQuantity)
		if err != nil {
			return nil, err
		}
		stock[i] = q
	}
	return &VendingMachine{stock: stock}, nil
}

// Location retourne l'emplacement et s'il a été défini
func (m *VendingMachine) Location() (string, bool) {
	return m.location, m.hasLocation
}

// Quantity retourne le nombre de canettes du breuvage.
// Retourne -1 pour une valeur hors de l'énumération.
func (m *VendingMachine) Quantity(b Beverage) int {
	if !b.Valid() {
		return -1
	}
	return m.stock[b].Value()
}

// IsAvailable vérifie s'il reste au moins une canette du breuvage.
// Toujours faux pour une valeur hors de l'énumération.
func (m *VendingMachine) IsAvailable(b Beverage) bool {
	if !b.Valid() {
		return false
	}
	return !m.stock[b].IsZero()
}

// TotalQuantity retourne la quantité totale de canettes dans la machine
func (m *VendingMachine) TotalQuantity() int {
	total := 0
	for _, q := range m.stock {
		total += q.Value()
	}
	return total
}

// IsEmpty vérifie si la machine est vide
func (m *VendingMachine) IsEmpty() bool {
	for _, q := range m.stock {
		if !q.IsZero() {
			return false
		}
	}
	return true
}

// IsFull vérifie si chaque breuvage est à MaxQuantity
func (m *VendingMachine) IsFull() bool {
	for _, q := range m.stock {
		if q.Value() != MaxQuantity {
			return false
		}
	}
	return true
}

// Stock retourne une copie des quantités par breuvage
func (m *VendingMachine) Stock() map[Beverage]int {
	out := make(map[Beverage]int, beverageCount)
	for _, b := range Beverages() {
		out[b] = m.stock[b].Value()
	}
	return out
}

// Refill recharge la machine en remettant chaque breuvage au maximum
func (m *VendingMachine) Refill() {
	for i := range m.stock {
		m.stock[i] = shared.Full(MaxQuantity)
	}
}

// Dispense éjecte une canette du breuvage indiqué.
// Retourne une *DispenseError (ErrInvalidOperation) s'il n'en reste plus
// ou si b est hors de l'énumération; la machine n'est alors pas modifiée.
func (m *VendingMachine) Dispense(b Beverage) error {
	if !b.Valid() {
		return &DispenseError{Beverage: b}
	}
	q, err := m.stock[b].Decrement()
	if err != nil {
		return &DispenseError{Beverage: b}
	}
	m.stock[b] = q
	return nil
}
