package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LigneCommandeRequest ligne d'un bon de commande à créer.
// PrixUnitaire à zéro : le prix d'achat catalogue du produit est appliqué.
type LigneCommandeRequest struct {
	ProduitID    string          `json:"produit_id"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Quantite     decimal.Decimal `json:"quantite"`
	NbPieces     int             `json:"nb_pieces"`
}

// CreateBonCommandeRequest corps de création d'un bon de commande.
// Le numéro et le montant total sont calculés côté serveur.
type CreateBonCommandeRequest struct {
	FournisseurID string                 `json:"fournisseur_id"`
	Date          time.Time              `json:"date"`
	Notes         string                 `json:"notes"`
	Lignes        []LigneCommandeRequest `json:"lignes"`
}

// UpdateStatutRequest changement de statut d'une pièce (BC ou BL).
type UpdateStatutRequest struct {
	Statut string `json:"statut"`
}

// LigneCommandeResponse ligne d'un bon de commande.
type LigneCommandeResponse struct {
	ID           string          `json:"id"`
	ProduitID    string          `json:"produit_id"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Quantite     decimal.Decimal `json:"quantite"`
	NbPieces     int             `json:"nb_pieces,omitempty"`
	MontantLigne decimal.Decimal `json:"montant_ligne"`
}

// BonCommandeResponse représentation d'un bon de commande.
type BonCommandeResponse struct {
	ID            string                  `json:"id"`
	Numero        string                  `json:"numero"`
	FournisseurID string                  `json:"fournisseur_id"`
	Date          time.Time               `json:"date"`
	Statut        string                  `json:"statut"`
	MontantTotal  decimal.Decimal         `json:"montant_total"`
	Notes         string                  `json:"notes,omitempty"`
	Lignes        []LigneCommandeResponse `json:"lignes,omitempty"`
}

// BonCommandeListResponse page de bons de commande.
type BonCommandeListResponse struct {
	Items []*BonCommandeResponse `json:"items"`
	Meta  PageMeta               `json:"meta"`
}
