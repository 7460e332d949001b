package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/listing"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

// ProduitUseCase cas d'usage CRUD du catalogue produits.
type ProduitUseCase struct {
	repo repository.ProduitRepository
}

// NewProduitUseCase construit le cas d'usage.
func NewProduitUseCase(repo repository.ProduitRepository) *ProduitUseCase {
	return &ProduitUseCase{repo: repo}
}

// Create crée un produit. La référence est unique dans le catalogue.
func (uc *ProduitUseCase) Create(in dto.CreateProduitRequest) (*dto.ProduitResponse, error) {
	if in.Reference == "" || in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrixAchat.IsNegative() || in.PrixVente.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByReference(in.Reference)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Produit{
		ID:          uuid.New().String(),
		Reference:   in.Reference,
		Nom:         in.Nom,
		Categorie:   in.Categorie,
		UniteMesure: in.UniteMesure,
		Mesurable:   in.Mesurable,
		PrixAchat:   in.PrixAchat,
		PrixVente:   in.PrixVente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return produitToResponse(p), nil
}

// GetByID renvoie un produit par identifiant.
func (uc *ProduitUseCase) GetByID(id string) (*dto.ProduitResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return produitToResponse(p), nil
}

// Update met à jour un produit. Les BL existants conservent le coût figé à
// leur création ; seul le catalogue change.
func (uc *ProduitUseCase) Update(id string, in dto.UpdateProduitRequest) (*dto.ProduitResponse, error) {
	if in.Reference == "" || in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrixAchat.IsNegative() || in.PrixVente.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Reference = in.Reference
	p.Nom = in.Nom
	p.Categorie = in.Categorie
	p.UniteMesure = in.UniteMesure
	p.Mesurable = in.Mesurable
	p.PrixAchat = in.PrixAchat
	p.PrixVente = in.PrixVente
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return produitToResponse(p), nil
}

// Delete supprime un produit.
func (uc *ProduitUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List renvoie une page de produits avec recherche plein-texte sur la
// référence, le nom et la catégorie.
func (uc *ProduitUseCase) List(params dto.ListeParams) (*dto.ProduitListResponse, error) {
	params.Normaliser()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	pager := listing.NewPager(params.PageSize,
		listing.WithTextFields(
			func(p *entity.Produit) string { return p.Reference },
			func(p *entity.Produit) string { return p.Nom },
			func(p *entity.Produit) string { return p.Categorie },
		),
	)
	pager.SetItems(list)
	pager.SetQuery(params.Query)
	pager.SetPage(params.Page)

	page := pager.Page()
	items := make([]*dto.ProduitResponse, 0, len(page))
	for _, p := range page {
		items = append(items, produitToResponse(p))
	}
	return &dto.ProduitListResponse{
		Items: items,
		Meta: dto.PageMeta{
			Page:      pager.PageIndex(),
			PageSize:  pager.PageSize(),
			PageCount: pager.PageCount(),
			Total:     len(pager.Filtered()),
		},
	}, nil
}

func produitToResponse(p *entity.Produit) *dto.ProduitResponse {
	return &dto.ProduitResponse{
		ID:          p.ID,
		Reference:   p.Reference,
		Nom:         p.Nom,
		Categorie:   p.Categorie,
		UniteMesure: p.UniteMesure,
		Mesurable:   p.Mesurable,
		PrixAchat:   p.PrixAchat,
		PrixVente:   p.PrixVente,
	}
}
