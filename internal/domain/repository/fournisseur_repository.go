package repository

import "github.com/atlasnegoce/negoce-api/internal/domain/entity"

// FournisseurRepository définit le port de persistance des fournisseurs.
type FournisseurRepository interface {
	Create(fournisseur *entity.Fournisseur) error
	GetByID(id string) (*entity.Fournisseur, error)
	GetByICE(ice string) (*entity.Fournisseur, error)
	List() ([]*entity.Fournisseur, error)
	Update(fournisseur *entity.Fournisseur) error
	Delete(id string) error
}
