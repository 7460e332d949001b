package repository

import "github.com/atlasnegoce/negoce-api/internal/domain/entity"

// ChauffeurRepository définit le port de persistance des chauffeurs.
type ChauffeurRepository interface {
	Create(chauffeur *entity.Chauffeur) error
	GetByID(id string) (*entity.Chauffeur, error)
	List() ([]*entity.Chauffeur, error)
	Update(chauffeur *entity.Chauffeur) error
	Delete(id string) error
}
