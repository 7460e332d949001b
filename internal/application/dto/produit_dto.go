package dto

import "github.com/shopspring/decimal"

// CreateProduitRequest corps de création d'un produit.
type CreateProduitRequest struct {
	Reference   string          `json:"reference"`
	Nom         string          `json:"nom"`
	Categorie   string          `json:"categorie"`
	UniteMesure string          `json:"unite_mesure"`
	Mesurable   bool            `json:"mesurable"`
	PrixAchat   decimal.Decimal `json:"prix_achat"`
	PrixVente   decimal.Decimal `json:"prix_vente"`
}

// UpdateProduitRequest corps de mise à jour d'un produit.
type UpdateProduitRequest struct {
	Reference   string          `json:"reference"`
	Nom         string          `json:"nom"`
	Categorie   string          `json:"categorie"`
	UniteMesure string          `json:"unite_mesure"`
	Mesurable   bool            `json:"mesurable"`
	PrixAchat   decimal.Decimal `json:"prix_achat"`
	PrixVente   decimal.Decimal `json:"prix_vente"`
}

// ProduitResponse représentation d'un produit dans les réponses.
type ProduitResponse struct {
	ID          string          `json:"id"`
	Reference   string          `json:"reference"`
	Nom         string          `json:"nom"`
	Categorie   string          `json:"categorie,omitempty"`
	UniteMesure string          `json:"unite_mesure"`
	Mesurable   bool            `json:"mesurable"`
	PrixAchat   decimal.Decimal `json:"prix_achat"`
	PrixVente   decimal.Decimal `json:"prix_vente"`
}

// ProduitListResponse page de produits.
type ProduitListResponse struct {
	Items []*ProduitResponse `json:"items"`
	Meta  PageMeta           `json:"meta"`
}
