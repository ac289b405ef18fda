package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Beverage représente une sorte de breuvage offerte par la machine.
// L'ensemble est fermé: seules les quatre constantes ci-dessous sont valides.
type Beverage int

const (
	Coke Beverage = iota
	SevenUp
	AppleJuice
	IcedTea

	beverageCount = int(IcedTea) + 1
)

// ErrUnknownBeverage signale un nom de breuvage inconnu
var ErrUnknownBeverage = errors.New("unknown beverage")

var beverageNames = [beverageCount]string{
	Coke:       "coke",
	SevenUp:    "seven-up",
	AppleJuice: "apple-juice",
	IcedTea:    "iced-tea",
}

// alias acceptés par ParseBeverage en plus des noms canoniques
var beverageAliases = map[string]Beverage{
	"7up":           SevenUp,
	"sevenup":       SevenUp,
	"jus-de-pommes": AppleJuice,
	"the-glace":     IcedTea,
}

// Beverages retourne les quatre sortes dans l'ordre canonique
func Beverages() []Beverage {
	return []Beverage{Coke, SevenUp, AppleJuice, IcedTea}
}

// Valid vérifie que b appartient à l'ensemble fermé
func (b Beverage) Valid() bool {
	return b >= Coke && b <= IcedTea
}

func (b Beverage) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Beverage(%d)", int(b))
	}
	return beverageNames[b]
}

// ParseBeverage retrouve une sorte à partir de son nom (insensible à la casse)
func ParseBeverage(name string) (Beverage, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, b := range Beverages() {
		if beverageNames[b] == key {
			return b, nil
		}
	}
	if b, ok := beverageAliases[key]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBeverage, name)
}
