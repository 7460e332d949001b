package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaiementRequest corps de création d'un paiement.
// Reference est obligatoire pour les modes cheque et effet.
type CreatePaiementRequest struct {
	TiersType string          `json:"tiers_type"` // client | fournisseur | chauffeur
	TiersID   string          `json:"tiers_id"`
	Montant   decimal.Decimal `json:"montant"`
	Mode      string          `json:"mode"` // espece | cheque | effet | virement
	Reference string          `json:"reference"`
	Emetteur  string          `json:"emetteur"`
	Notes     string          `json:"notes"`
	Date      time.Time       `json:"date"`
}

// UpdatePaiementRequest corps de mise à jour d'un paiement.
type UpdatePaiementRequest struct {
	Montant   decimal.Decimal `json:"montant"`
	Mode      string          `json:"mode"`
	Reference string          `json:"reference"`
	Emetteur  string          `json:"emetteur"`
	Notes     string          `json:"notes"`
	Date      time.Time       `json:"date"`
}

// PaiementResponse représentation d'un paiement.
type PaiementResponse struct {
	ID        string          `json:"id"`
	TiersType string          `json:"tiers_type"`
	TiersID   string          `json:"tiers_id"`
	Montant   decimal.Decimal `json:"montant"`
	Mode      string          `json:"mode"`
	Reference string          `json:"reference,omitempty"`
	Emetteur  string          `json:"emetteur,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Date      time.Time       `json:"date"`
}

// PaiementListResponse page de paiements.
type PaiementListResponse struct {
	Items []*PaiementResponse `json:"items"`
	Meta  PageMeta            `json:"meta"`
}
