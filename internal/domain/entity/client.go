package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client représente un client de la société de négoce.
// CreditInitial est l'avance consentie à l'ouverture du compte ; elle vient
// en déduction de la dette dans le calcul du solde.
type Client struct {
	ID            string
	Nom           string
	ICE           string // Identifiant Commun de l'Entreprise (15 chiffres, Maroc)
	Telephone     string
	Adresse       string
	Ville         string
	CreditInitial decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
