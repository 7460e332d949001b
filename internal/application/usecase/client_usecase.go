package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/listing"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
	"github.com/atlasnegoce/negoce-api/internal/domain/validation"
)

// ClientUseCase cas d'usage CRUD des clients.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crée un nouveau client. L'ICE, s'il est renseigné, doit être unique.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validation.ICE(in.ICE) || !validation.Telephone(in.Telephone) {
		return nil, domain.ErrInvalidInput
	}
	if in.ICE != "" {
		existing, _ := uc.repo.GetByICE(in.ICE)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	client := &entity.Client{
		ID:            uuid.New().String(),
		Nom:           in.Nom,
		ICE:           in.ICE,
		Telephone:     in.Telephone,
		Adresse:       in.Adresse,
		Ville:         in.Ville,
		CreditInitial: in.CreditInitial,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// GetByID renvoie un client par identifiant.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// Update met à jour un client existant.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validation.ICE(in.ICE) || !validation.Telephone(in.Telephone) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Nom = in.Nom
	client.ICE = in.ICE
	client.Telephone = in.Telephone
	client.Adresse = in.Adresse
	client.Ville = in.Ville
	client.CreditInitial = in.CreditInitial
	client.Notes = in.Notes
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// Delete supprime un client.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List renvoie une page de clients, avec recherche plein-texte sur le nom,
// l'ICE, le téléphone et la ville.
func (uc *ClientUseCase) List(params dto.ListeParams) (*dto.ClientListResponse, error) {
	params.Normaliser()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	pager := listing.NewPager(params.PageSize,
		listing.WithTextFields(
			func(c *entity.Client) string { return c.Nom },
			func(c *entity.Client) string { return c.ICE },
			func(c *entity.Client) string { return c.Telephone },
			func(c *entity.Client) string { return c.Ville },
		),
	)
	pager.SetItems(list)
	pager.SetQuery(params.Query)
	pager.SetPage(params.Page)

	page := pager.Page()
	items := make([]*dto.ClientResponse, 0, len(page))
	for _, c := range page {
		items = append(items, clientToResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Meta: dto.PageMeta{
			Page:      pager.PageIndex(),
			PageSize:  pager.PageSize(),
			PageCount: pager.PageCount(),
			Total:     len(pager.Filtered()),
		},
	}, nil
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:            c.ID,
		Nom:           c.Nom,
		ICE:           c.ICE,
		Telephone:     c.Telephone,
		Adresse:       c.Adresse,
		Ville:         c.Ville,
		CreditInitial: c.CreditInitial,
		Notes:         c.Notes,
	}
}
