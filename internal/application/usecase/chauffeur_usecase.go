package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/listing"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
	"github.com/atlasnegoce/negoce-api/internal/domain/validation"
)

// ChauffeurUseCase cas d'usage CRUD des chauffeurs.
type ChauffeurUseCase struct {
	repo repository.ChauffeurRepository
}

// NewChauffeurUseCase construit le cas d'usage.
func NewChauffeurUseCase(repo repository.ChauffeurRepository) *ChauffeurUseCase {
	return &ChauffeurUseCase{repo: repo}
}

func chauffeurValide(nom, typ, telephone, matricule string, tarif decimal.Decimal) bool {
	if nom == "" {
		return false
	}
	if typ != entity.ChauffeurInterne && typ != entity.ChauffeurExterne {
		return false
	}
	if !validation.Telephone(telephone) || !validation.Matricule(matricule) {
		return false
	}
	return !tarif.IsNegative()
}

// Create crée un nouveau chauffeur.
func (uc *ChauffeurUseCase) Create(in dto.CreateChauffeurRequest) (*dto.ChauffeurResponse, error) {
	if !chauffeurValide(in.Nom, in.Type, in.Telephone, in.Matricule, in.TarifCourse) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ch := &entity.Chauffeur{
		ID:          uuid.New().String(),
		Nom:         in.Nom,
		Telephone:   in.Telephone,
		Type:        in.Type,
		Matricule:   in.Matricule,
		TarifCourse: in.TarifCourse,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ch); err != nil {
		return nil, err
	}
	return chauffeurToResponse(ch), nil
}

// GetByID renvoie un chauffeur par identifiant.
func (uc *ChauffeurUseCase) GetByID(id string) (*dto.ChauffeurResponse, error) {
	ch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, domain.ErrNotFound
	}
	return chauffeurToResponse(ch), nil
}

// Update met à jour un chauffeur existant.
func (uc *ChauffeurUseCase) Update(id string, in dto.UpdateChauffeurRequest) (*dto.ChauffeurResponse, error) {
	if !chauffeurValide(in.Nom, in.Type, in.Telephone, in.Matricule, in.TarifCourse) {
		return nil, domain.ErrInvalidInput
	}
	ch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, domain.ErrNotFound
	}
	ch.Nom = in.Nom
	ch.Telephone = in.Telephone
	ch.Type = in.Type
	ch.Matricule = in.Matricule
	ch.TarifCourse = in.TarifCourse
	ch.Notes = in.Notes
	ch.UpdatedAt = time.Now()
	if err := uc.repo.Update(ch); err != nil {
		return nil, err
	}
	return chauffeurToResponse(ch), nil
}

// Delete supprime un chauffeur.
func (uc *ChauffeurUseCase) Delete(id string) error {
	ch, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ch == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List renvoie une page de chauffeurs avec recherche plein-texte.
func (uc *ChauffeurUseCase) List(params dto.ListeParams) (*dto.ChauffeurListResponse, error) {
	params.Normaliser()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	pager := listing.NewPager(params.PageSize,
		listing.WithTextFields(
			func(c *entity.Chauffeur) string { return c.Nom },
			func(c *entity.Chauffeur) string { return c.Matricule },
			func(c *entity.Chauffeur) string { return c.Telephone },
		),
	)
	pager.SetItems(list)
	pager.SetQuery(params.Query)
	pager.SetPage(params.Page)

	page := pager.Page()
	items := make([]*dto.ChauffeurResponse, 0, len(page))
	for _, c := range page {
		items = append(items, chauffeurToResponse(c))
	}
	return &dto.ChauffeurListResponse{
		Items: items,
		Meta: dto.PageMeta{
			Page:      pager.PageIndex(),
			PageSize:  pager.PageSize(),
			PageCount: pager.PageCount(),
			Total:     len(pager.Filtered()),
		},
	}, nil
}

func chauffeurToResponse(c *entity.Chauffeur) *dto.ChauffeurResponse {
	return &dto.ChauffeurResponse{
		ID:          c.ID,
		Nom:         c.Nom,
		Telephone:   c.Telephone,
		Type:        c.Type,
		Matricule:   c.Matricule,
		TarifCourse: c.TarifCourse,
		Notes:       c.Notes,
	}
}
