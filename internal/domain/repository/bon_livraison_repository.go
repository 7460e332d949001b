package repository

import "github.com/atlasnegoce/negoce-api/internal/domain/entity"

// BonLivraisonRepository définit le port de persistance des bons de livraison.
type BonLivraisonRepository interface {
	Create(bl *entity.BonLivraison) error
	CreateLigne(ligne *entity.LigneLivraison) error
	GetByID(id string) (*entity.BonLivraison, error)
	GetLignes(blID string) ([]entity.LigneLivraison, error)
	List() ([]*entity.BonLivraison, error)
	ListByClient(clientID string) ([]*entity.BonLivraison, error)
	ListByChauffeur(chauffeurID string) ([]*entity.BonLivraison, error)
	// ListLignesLivreesByClient renvoie les lignes des BL livrés du client,
	// seules lignes qui entrent dans le calcul de marge.
	ListLignesLivreesByClient(clientID string) ([]entity.LigneLivraison, error)
	UpdateStatut(id, statut string) error
	Delete(id string) error
	// NextNumero renvoie le prochain numéro BL-YYYY-NNNN pour l'année donnée.
	NextNumero(annee int) (string, error)
}
