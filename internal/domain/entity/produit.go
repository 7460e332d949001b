package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produit représente un article du catalogue (matériaux, marchandise).
// Mesurable distingue les produits vendus au métré (m², ml, tonne) : une
// ligne porte alors une quantité en unité de mesure et, à titre indicatif,
// un nombre de pièces.
type Produit struct {
	ID          string
	Reference   string // code unique, ex. MRB-CARR-60
	Nom         string
	Categorie   string
	UniteMesure string // u, m2, ml, t...
	Mesurable   bool
	PrixAchat   decimal.Decimal
	PrixVente   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
