package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'un bon de commande (achat fournisseur).
// Un BC annulé est exclu de tous les cumuls financiers.
const (
	BCStatutEnCours = "en_cours"
	BCStatutRecue   = "recue"
	BCStatutAnnulee = "annulee"
)

// BonCommande représente l'en-tête d'un bon de commande fournisseur.
// Numero suit le format BC-YYYY-NNNN, séquence par année.
type BonCommande struct {
	ID            string
	Numero        string
	FournisseurID string
	Date          time.Time
	Statut        string
	MontantTotal  decimal.Decimal
	Notes         string
	Lignes        []LigneCommande
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LigneCommande représente une ligne d'un bon de commande.
// Pour un produit mesurable, Quantite est en unité de mesure (m², t...) et
// NbPieces donne le nombre de pièces correspondant, à titre indicatif.
type LigneCommande struct {
	ID            string
	BonCommandeID string
	ProduitID     string
	PrixUnitaire  decimal.Decimal
	Quantite      decimal.Decimal
	NbPieces      int
	MontantLigne  decimal.Decimal // PrixUnitaire × Quantite
}
