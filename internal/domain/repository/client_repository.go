package repository

import "github.com/atlasnegoce/negoce-api/internal/domain/entity"

// ClientRepository définit le port de persistance des clients.
// List renvoie l'ensemble des clients triés par nom : le filtrage et la
// pagination se font en mémoire (composant listing), à l'image des écrans
// du tableau de bord.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByICE(ice string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
