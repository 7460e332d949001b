package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'un bon de livraison (vente client).
// La marge n'est calculée que sur les BL livrés ; un BL annulé est exclu de
// tous les cumuls financiers.
const (
	BLStatutEnCours = "en_cours"
	BLStatutLivree  = "livree"
	BLStatutAnnulee = "annulee"
)

// BonLivraison représente l'en-tête d'un bon de livraison client.
// Numero suit le format BL-YYYY-NNNN, séquence par année.
// FraisTransport est la rémunération du chauffeur pour cette course (course
// facturée au tarif du chauffeur externe si zéro).
type BonLivraison struct {
	ID             string
	Numero         string
	ClientID       string
	ChauffeurID    string // optionnel
	Date           time.Time
	Statut         string
	MontantTotal   decimal.Decimal
	FraisTransport decimal.Decimal
	Notes          string
	Lignes         []LigneLivraison
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LigneLivraison représente une ligne d'un bon de livraison.
// PrixAchatUnitaire fige le coût du produit au moment de la création : une
// modification ultérieure du prix d'achat catalogue ne réécrit pas la marge
// des BL passés.
type LigneLivraison struct {
	ID                string
	BonLivraisonID    string
	ProduitID         string
	PrixUnitaire      decimal.Decimal // prix de vente de la ligne
	PrixAchatUnitaire decimal.Decimal // coût figé à la création
	Quantite          decimal.Decimal
	NbPieces          int
	MontantLigne      decimal.Decimal // PrixUnitaire × Quantite
}
