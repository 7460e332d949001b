package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LigneLivraisonRequest ligne d'un bon de livraison à créer.
// PrixUnitaire à zéro : le prix de vente catalogue du produit est appliqué.
// Le coût unitaire est toujours figé depuis le catalogue à la création.
type LigneLivraisonRequest struct {
	ProduitID    string          `json:"produit_id"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Quantite     decimal.Decimal `json:"quantite"`
	NbPieces     int             `json:"nb_pieces"`
}

// CreateBonLivraisonRequest corps de création d'un bon de livraison.
type CreateBonLivraisonRequest struct {
	ClientID       string                  `json:"client_id"`
	ChauffeurID    string                  `json:"chauffeur_id"`
	Date           time.Time               `json:"date"`
	FraisTransport decimal.Decimal         `json:"frais_transport"`
	Notes          string                  `json:"notes"`
	Lignes         []LigneLivraisonRequest `json:"lignes"`
}

// LigneLivraisonResponse ligne d'un bon de livraison.
type LigneLivraisonResponse struct {
	ID                string          `json:"id"`
	ProduitID         string          `json:"produit_id"`
	PrixUnitaire      decimal.Decimal `json:"prix_unitaire"`
	PrixAchatUnitaire decimal.Decimal `json:"prix_achat_unitaire"`
	Quantite          decimal.Decimal `json:"quantite"`
	NbPieces          int             `json:"nb_pieces,omitempty"`
	MontantLigne      decimal.Decimal `json:"montant_ligne"`
}

// BonLivraisonResponse représentation d'un bon de livraison.
type BonLivraisonResponse struct {
	ID             string                   `json:"id"`
	Numero         string                   `json:"numero"`
	ClientID       string                   `json:"client_id"`
	ChauffeurID    string                   `json:"chauffeur_id,omitempty"`
	Date           time.Time                `json:"date"`
	Statut         string                   `json:"statut"`
	MontantTotal   decimal.Decimal          `json:"montant_total"`
	FraisTransport decimal.Decimal          `json:"frais_transport"`
	Notes          string                   `json:"notes,omitempty"`
	Lignes         []LigneLivraisonResponse `json:"lignes,omitempty"`
}

// BonLivraisonListResponse page de bons de livraison.
type BonLivraisonListResponse struct {
	Items []*BonLivraisonResponse `json:"items"`
	Meta  PageMeta                `json:"meta"`
}
