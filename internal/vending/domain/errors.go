package domain

import (
	"errors"
	"fmt"

	shared "distributrice/internal/shared/domain"
)

// ErrOutOfRange est retournée par NewWithQuantities.
// Alias de l'erreur du domaine partagé pour que les appelants n'aient qu'un import.
var ErrOutOfRange = shared.ErrOutOfRange

// ErrInvalidOperation est retournée par Dispense quand le breuvage est épuisé
var ErrInvalidOperation = errors.New("invalid operation")

// RangeError est l'erreur détaillée de NewWithQuantities
type RangeError = shared.RangeError

// DispenseError identifie le breuvage qui n'a pas pu être éjecté
type DispenseError struct {
	Beverage Beverage
}

func (e *DispenseError) Error() string {
	return fmt.Sprintf("%s: %s is not available", ErrInvalidOperation, e.Beverage)
}

func (e *DispenseError) Unwrap() error {
	return ErrInvalidOperation
}
