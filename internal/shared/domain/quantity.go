package domain

import (
	"errors"
	"fmt"
)

// ErrOutOfRange signale une valeur hors de l'intervalle autorisé
var ErrOutOfRange = errors.New("value out of range")

// RangeError décrit le paramètre fautif et la valeur refusée
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap permet errors.Is(err, ErrOutOfRange)
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ErrZeroQuantity signale une décrémentation d'une quantité nulle
var ErrZeroQuantity = errors.New("quantity is already zero")

// Quantity représente une quantité non négative validée contre une capacité
// DESIGN PATTERN: Value Object (DDD)
//   - Immutable: chaque opération retourne une nouvelle Quantity
//   - Validation dans le constructeur (NewQuantity)
//   - La valeur zéro est une quantité nulle valide
type Quantity struct {
	value int
}

// NewQuantity crée une Quantity comprise entre 0 et capacity inclus.
// field nomme le paramètre dans l'erreur retournée.
func NewQuantity(field string, value, capacity int) (Quantity, error) {
	if value < 0 || value > capacity {
		return Quantity{}, &RangeError{Field: field, Value: value, Min: 0, Max: capacity}
	}
	return Quantity{value: value}, nil
}

// Full retourne une Quantity égale à la capacité
func Full(capacity int) Quantity {
	return Quantity{value: capacity}
}

// Value retourne la valeur
func (q Quantity) Value() int {
	return q.value
}

// IsZero vérifie si la quantité est nulle
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// Decrement retire une unité; une quantité nulle est refusée avec ErrZeroQuantity
func (q Quantity) Decrement() (Quantity, error) {
	if q.IsZero() {
		return q, ErrZeroQuantity
	}
	return Quantity{value: q.value - 1}, nil
}
