package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modes de paiement.
const (
	PaiementEspece   = "espece"
	PaiementCheque   = "cheque"
	PaiementEffet    = "effet"
	PaiementVirement = "virement"
)

// Types de tiers auxquels un paiement peut être rattaché.
const (
	TiersClient      = "client"
	TiersFournisseur = "fournisseur"
	TiersChauffeur   = "chauffeur"
)

// Paiement représente un règlement reçu d'un client ou versé à un
// fournisseur ou à un chauffeur. Reference est le numéro de chèque ou
// d'effet (obligatoire pour ces deux modes).
type Paiement struct {
	ID        string
	TiersType string // client | fournisseur | chauffeur
	TiersID   string
	Montant   decimal.Decimal
	Mode      string // espece | cheque | effet | virement
	Reference string
	Emetteur  string
	Notes     string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
