package repository

import "github.com/atlasnegoce/negoce-api/internal/domain/entity"

// PaiementRepository définit le port de persistance des paiements.
type PaiementRepository interface {
	Create(paiement *entity.Paiement) error
	GetByID(id string) (*entity.Paiement, error)
	List() ([]*entity.Paiement, error)
	ListByTiers(tiersType, tiersID string) ([]*entity.Paiement, error)
	Update(paiement *entity.Paiement) error
	Delete(id string) error
}
