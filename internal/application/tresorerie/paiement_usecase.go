// Package tresorerie regroupe les cas d'usage financiers : paiements des
// tiers et calcul des soldes (dette, avance, marge).
package tresorerie

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/listing"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

// PaiementUseCase cas d'usage CRUD des paiements.
type PaiementUseCase struct {
	paiementRepo    repository.PaiementRepository
	clientRepo      repository.ClientRepository
	fournisseurRepo repository.FournisseurRepository
	chauffeurRepo   repository.ChauffeurRepository
}

// NewPaiementUseCase construit le cas d'usage.
func NewPaiementUseCase(
	paiementRepo repository.PaiementRepository,
	clientRepo repository.ClientRepository,
	fournisseurRepo repository.FournisseurRepository,
	chauffeurRepo repository.ChauffeurRepository,
) *PaiementUseCase {
	return &PaiementUseCase{
		paiementRepo:    paiementRepo,
		clientRepo:      clientRepo,
		fournisseurRepo: fournisseurRepo,
		chauffeurRepo:   chauffeurRepo,
	}
}

func modeValide(mode string) bool {
	switch mode {
	case entity.PaiementEspece, entity.PaiementCheque, entity.PaiementEffet, entity.PaiementVirement:
		return true
	}
	return false
}

// referenceRequise : chèque et effet portent obligatoirement un numéro.
func referenceRequise(mode string) bool {
	return mode == entity.PaiementCheque || mode == entity.PaiementEffet
}

func (uc *PaiementUseCase) tiersExiste(tiersType, tiersID string) (bool, error) {
	switch tiersType {
	case entity.TiersClient:
		c, err := uc.clientRepo.GetByID(tiersID)
		return c != nil, err
	case entity.TiersFournisseur:
		f, err := uc.fournisseurRepo.GetByID(tiersID)
		return f != nil, err
	case entity.TiersChauffeur:
		ch, err := uc.chauffeurRepo.GetByID(tiersID)
		return ch != nil, err
	}
	return false, domain.ErrInvalidInput
}

// Create enregistre un paiement rattaché à un tiers.
func (uc *PaiementUseCase) Create(in dto.CreatePaiementRequest) (*dto.PaiementResponse, error) {
	if in.TiersID == "" || !in.Montant.GreaterThan(decimal.Zero) || !modeValide(in.Mode) {
		return nil, domain.ErrInvalidInput
	}
	if referenceRequise(in.Mode) && in.Reference == "" {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.tiersExiste(in.TiersType, in.TiersID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	p := &entity.Paiement{
		ID:        uuid.New().String(),
		TiersType: in.TiersType,
		TiersID:   in.TiersID,
		Montant:   in.Montant,
		Mode:      in.Mode,
		Reference: in.Reference,
		Emetteur:  in.Emetteur,
		Notes:     in.Notes,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.paiementRepo.Create(p); err != nil {
		return nil, err
	}
	return paiementToResponse(p), nil
}

// GetByID renvoie un paiement par identifiant.
func (uc *PaiementUseCase) GetByID(id string) (*dto.PaiementResponse, error) {
	p, err := uc.paiementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return paiementToResponse(p), nil
}

// Update met à jour un paiement (le tiers de rattachement ne change pas).
func (uc *PaiementUseCase) Update(id string, in dto.UpdatePaiementRequest) (*dto.PaiementResponse, error) {
	if !in.Montant.GreaterThan(decimal.Zero) || !modeValide(in.Mode) {
		return nil, domain.ErrInvalidInput
	}
	if referenceRequise(in.Mode) && in.Reference == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.paiementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Montant = in.Montant
	p.Mode = in.Mode
	p.Reference = in.Reference
	p.Emetteur = in.Emetteur
	p.Notes = in.Notes
	if !in.Date.IsZero() {
		p.Date = in.Date
	}
	p.UpdatedAt = time.Now()
	if err := uc.paiementRepo.Update(p); err != nil {
		return nil, err
	}
	return paiementToResponse(p), nil
}

// Delete supprime un paiement.
func (uc *PaiementUseCase) Delete(id string) error {
	p, err := uc.paiementRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.paiementRepo.Delete(id)
}

// List renvoie une page de paiements : plage de dates, recherche sur la
// référence, l'émetteur et les notes, filtre par tiers optionnel. Le filtre
// tiers va par paire : un type sans identifiant (ou l'inverse) est refusé.
func (uc *PaiementUseCase) List(params dto.ListeParams, tiersType, tiersID string) (*dto.PaiementListResponse, error) {
	params.Normaliser()

	var list []*entity.Paiement
	var err error
	switch {
	case tiersType != "" && tiersID != "":
		list, err = uc.paiementRepo.ListByTiers(tiersType, tiersID)
	case tiersType != "" || tiersID != "":
		return nil, domain.ErrInvalidInput
	default:
		list, err = uc.paiementRepo.List()
	}
	if err != nil {
		return nil, err
	}

	pager := listing.NewPager(params.PageSize,
		listing.WithDate(func(p *entity.Paiement) time.Time { return p.Date }),
		listing.WithTextFields(
			func(p *entity.Paiement) string { return p.Reference },
			func(p *entity.Paiement) string { return p.Emetteur },
			func(p *entity.Paiement) string { return p.Notes },
		),
	)
	pager.SetItems(list)
	pager.SetDateRange(params.DateDebut, params.DateFin)
	pager.SetQuery(params.Query)
	pager.SetPage(params.Page)

	page := pager.Page()
	items := make([]*dto.PaiementResponse, 0, len(page))
	for _, p := range page {
		items = append(items, paiementToResponse(p))
	}
	return &dto.PaiementListResponse{
		Items: items,
		Meta: dto.PageMeta{
			Page:      pager.PageIndex(),
			PageSize:  pager.PageSize(),
			PageCount: pager.PageCount(),
			Total:     len(pager.Filtered()),
		},
	}, nil
}

func paiementToResponse(p *entity.Paiement) *dto.PaiementResponse {
	return &dto.PaiementResponse{
		ID:        p.ID,
		TiersType: p.TiersType,
		TiersID:   p.TiersID,
		Montant:   p.Montant,
		Mode:      p.Mode,
		Reference: p.Reference,
		Emetteur:  p.Emetteur,
		Notes:     p.Notes,
		Date:      p.Date,
	}
}
