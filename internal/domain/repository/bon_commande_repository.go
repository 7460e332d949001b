package repository

import "github.com/atlasnegoce/negoce-api/internal/domain/entity"

// BonCommandeRepository définit le port de persistance des bons de commande.
// Create n'insère que l'en-tête ; les lignes passent par CreateLigne dans la
// même transaction (TxRunner).
type BonCommandeRepository interface {
	Create(bc *entity.BonCommande) error
	CreateLigne(ligne *entity.LigneCommande) error
	GetByID(id string) (*entity.BonCommande, error)
	GetLignes(bcID string) ([]entity.LigneCommande, error)
	List() ([]*entity.BonCommande, error)
	ListByFournisseur(fournisseurID string) ([]*entity.BonCommande, error)
	UpdateStatut(id, statut string) error
	Delete(id string) error
	// NextNumero renvoie le prochain numéro BC-YYYY-NNNN pour l'année donnée.
	NextNumero(annee int) (string, error)
}
