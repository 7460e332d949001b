package repository

import "github.com/atlasnegoce/negoce-api/internal/domain/entity"

// ProduitRepository définit le port de persistance du catalogue produits.
type ProduitRepository interface {
	Create(produit *entity.Produit) error
	GetByID(id string) (*entity.Produit, error)
	GetByReference(reference string) (*entity.Produit, error)
	List() ([]*entity.Produit, error)
	Update(produit *entity.Produit) error
	Delete(id string) error
}
