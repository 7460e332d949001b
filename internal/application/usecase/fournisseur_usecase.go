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

// FournisseurUseCase cas d'usage CRUD des fournisseurs.
type FournisseurUseCase struct {
	repo repository.FournisseurRepository
}

// NewFournisseurUseCase construit le cas d'usage.
func NewFournisseurUseCase(repo repository.FournisseurRepository) *FournisseurUseCase {
	return &FournisseurUseCase{repo: repo}
}

// Create crée un nouveau fournisseur.
func (uc *FournisseurUseCase) Create(in dto.CreateFournisseurRequest) (*dto.FournisseurResponse, error) {
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
	f := &entity.Fournisseur{
		ID:        uuid.New().String(),
		Nom:       in.Nom,
		ICE:       in.ICE,
		Telephone: in.Telephone,
		Ville:     in.Ville,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return fournisseurToResponse(f), nil
}

// GetByID renvoie un fournisseur par identifiant.
func (uc *FournisseurUseCase) GetByID(id string) (*dto.FournisseurResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return fournisseurToResponse(f), nil
}

// Update met à jour un fournisseur existant.
func (uc *FournisseurUseCase) Update(id string, in dto.UpdateFournisseurRequest) (*dto.FournisseurResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validation.ICE(in.ICE) || !validation.Telephone(in.Telephone) {
		return nil, domain.ErrInvalidInput
	}
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	f.Nom = in.Nom
	f.ICE = in.ICE
	f.Telephone = in.Telephone
	f.Ville = in.Ville
	f.Notes = in.Notes
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return fournisseurToResponse(f), nil
}

// Delete supprime un fournisseur.
func (uc *FournisseurUseCase) Delete(id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List renvoie une page de fournisseurs avec recherche plein-texte.
func (uc *FournisseurUseCase) List(params dto.ListeParams) (*dto.FournisseurListResponse, error) {
	params.Normaliser()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	pager := listing.NewPager(params.PageSize,
		listing.WithTextFields(
			func(f *entity.Fournisseur) string { return f.Nom },
			func(f *entity.Fournisseur) string { return f.ICE },
			func(f *entity.Fournisseur) string { return f.Ville },
		),
	)
	pager.SetItems(list)
	pager.SetQuery(params.Query)
	pager.SetPage(params.Page)

	page := pager.Page()
	items := make([]*dto.FournisseurResponse, 0, len(page))
	for _, f := range page {
		items = append(items, fournisseurToResponse(f))
	}
	return &dto.FournisseurListResponse{
		Items: items,
		Meta: dto.PageMeta{
			Page:      pager.PageIndex(),
			PageSize:  pager.PageSize(),
			PageCount: pager.PageCount(),
			Total:     len(pager.Filtered()),
		},
	}, nil
}

func fournisseurToResponse(f *entity.Fournisseur) *dto.FournisseurResponse {
	return &dto.FournisseurResponse{
		ID:        f.ID,
		Nom:       f.Nom,
		ICE:       f.ICE,
		Telephone: f.Telephone,
		Ville:     f.Ville,
		Notes:     f.Notes,
	}
}
