package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrConflictingMachineConfig: un emplacement et des quantités explicites
// ne peuvent pas être combinés (la machine n'a pas de constructeur pour ça)
var ErrConflictingMachineConfig = errors.New("location and explicit stock are mutually exclusive")

// Variables d'environnement lues par Load
const (
	EnvAppEnv          = "APP_ENV"
	EnvLocation        = "DISTRIBUTRICE_EMPLACEMENT"
	EnvStockCoke       = "DISTRIBUTRICE_STOCK_COKE"
	EnvStockSevenUp    = "DISTRIBUTRICE_STOCK_SEVEN_UP"
	EnvStockAppleJuice = "DISTRIBUTRICE_STOCK_APPLE_JUICE"
	EnvStockIcedTea    = "DISTRIBUTRICE_STOCK_ICED_TEA"
)

// Config regroupe la configuration de l'application
type Config struct {
	Env     string
	Machine Machine
}

// Machine décrit comment construire la machine au démarrage.
// Location et Stock sont exclusifs; si aucun n'est défini la machine est pleine sans emplacement.
type Machine struct {
	Location *string
	Stock    *Stock
}

// Stock contient les quantités initiales explicites.
// nil = variable absente; la valeur par défaut est choisie par l'appelant.
type Stock struct {
	Coke       *int
	SevenUp    *int
	AppleJuice *int
	IcedTea    *int
}

// Load charge la configuration depuis l'environnement.
// Précédence: variable d'environnement > fichier .env (s'il existe) > défaut.
//
// Pour DISTRIBUTRICE_EMPLACEMENT et DISTRIBUTRICE_STOCK_*, une variable définie
// compte même si elle est vide: un emplacement vide est un emplacement, une
// quantité vide est un entier invalide. APP_ENV vide retombe sur "development".
func Load(envFiles ...string) (Config, error) {
	// Un .env absent n'est pas une erreur
	_ = godotenv.Load(envFiles...)

	cfg := Config{
		Env: getEnv(EnvAppEnv, "development"),
	}

	if loc, ok := os.LookupEnv(EnvLocation); ok {
		cfg.Machine.Location = &loc
	}

	stock, err := loadStock()
	if err != nil {
		return Config{}, err
	}
	cfg.Machine.Stock = stock

	if cfg.Machine.Location != nil && cfg.Machine.Stock != nil {
		return Config{}, ErrConflictingMachineConfig
	}
	return cfg, nil
}

// loadStock retourne nil si aucune quantité n'est définie
func loadStock() (*Stock, error) {
	keys := []string{EnvStockCoke, EnvStockSevenUp, EnvStockAppleJuice, EnvStockIcedTea}

	values := make([]*int, len(keys))
	found := false
	for i, key := range keys {
		v, err := lookupInt(key)
		if err != nil {
			return nil, err
		}
		found = found || v != nil
		values[i] = v
	}
	if !found {
		return nil, nil
	}
	return &Stock{
		Coke:       values[0],
		SevenUp:    values[1],
		AppleJuice: values[2],
		IcedTea:    values[3],
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// lookupInt lit un entier; nil si la variable n'est pas définie
func lookupInt(key string) (*int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid integer for %s: %q", key, v)
	}
	return &n, nil
}
