package commande

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/listing"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

// BonCommandeUseCase cas d'usage des bons de commande fournisseur.
// La création écrit en-tête et lignes dans une même transaction ; le montant
// total et le numéro sont calculés côté serveur.
type BonCommandeUseCase struct {
	txRunner        TxRunner
	bcRepo          repository.BonCommandeRepository
	fournisseurRepo repository.FournisseurRepository
	produitRepo     repository.ProduitRepository
}

// NewBonCommandeUseCase construit le cas d'usage.
func NewBonCommandeUseCase(
	txRunner TxRunner,
	bcRepo repository.BonCommandeRepository,
	fournisseurRepo repository.FournisseurRepository,
	produitRepo repository.ProduitRepository,
) *BonCommandeUseCase {
	return &BonCommandeUseCase{
		txRunner:        txRunner,
		bcRepo:          bcRepo,
		fournisseurRepo: fournisseurRepo,
		produitRepo:     produitRepo,
	}
}

// Create crée un bon de commande avec ses lignes.
func (uc *BonCommandeUseCase) Create(ctx context.Context, in dto.CreateBonCommandeRequest) (*dto.BonCommandeResponse, error) {
	if in.FournisseurID == "" || len(in.Lignes) == 0 {
		return nil, domain.ErrInvalidInput
	}

	fournisseur, err := uc.fournisseurRepo.GetByID(in.FournisseurID)
	if err != nil || fournisseur == nil {
		return nil, domain.ErrNotFound
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	// Validation des lignes et prix par défaut (hors transaction, lecture seule)
	lignes := make([]entity.LigneCommande, 0, len(in.Lignes))
	total := decimal.Zero
	for _, l := range in.Lignes {
		if l.ProduitID == "" || !l.Quantite.GreaterThan(decimal.Zero) || l.PrixUnitaire.IsNegative() || l.NbPieces < 0 {
			return nil, domain.ErrInvalidInput
		}
		produit, err := uc.produitRepo.GetByID(l.ProduitID)
		if err != nil || produit == nil {
			return nil, domain.ErrNotFound
		}
		prix := l.PrixUnitaire
		if prix.IsZero() {
			prix = produit.PrixAchat
		}
		montant := prix.Mul(l.Quantite)
		lignes = append(lignes, entity.LigneCommande{
			ID:           uuid.New().String(),
			ProduitID:    l.ProduitID,
			PrixUnitaire: prix,
			Quantite:     l.Quantite,
			NbPieces:     l.NbPieces,
			MontantLigne: montant,
		})
		total = total.Add(montant)
	}

	now := time.Now()
	bc := &entity.BonCommande{
		ID:            uuid.New().String(),
		FournisseurID: in.FournisseurID,
		Date:          date,
		Statut:        entity.BCStatutEnCours,
		MontantTotal:  total,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunCommande(ctx, func(bcRepo repository.BonCommandeRepository) error {
		numero, err := bcRepo.NextNumero(date.Year())
		if err != nil {
			return err
		}
		bc.Numero = numero
		if err := bcRepo.Create(bc); err != nil {
			return err
		}
		for i := range lignes {
			lignes[i].BonCommandeID = bc.ID
			if err := bcRepo.CreateLigne(&lignes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	bc.Lignes = lignes
	return bcToResponse(bc, true), nil
}

// GetByID renvoie un bon de commande avec ses lignes.
func (uc *BonCommandeUseCase) GetByID(id string) (*dto.BonCommandeResponse, error) {
	bc, err := uc.bcRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bc == nil {
		return nil, domain.ErrNotFound
	}
	lignes, err := uc.bcRepo.GetLignes(id)
	if err != nil {
		return nil, err
	}
	bc.Lignes = lignes
	return bcToResponse(bc, true), nil
}

// UpdateStatut change le statut d'un bon de commande. Un BC annulé est
// figé : il sort des cumuls et ne peut plus changer d'état.
func (uc *BonCommandeUseCase) UpdateStatut(id, statut string) (*dto.BonCommandeResponse, error) {
	if statut != entity.BCStatutEnCours && statut != entity.BCStatutRecue && statut != entity.BCStatutAnnulee {
		return nil, domain.ErrInvalidInput
	}
	bc, err := uc.bcRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bc == nil {
		return nil, domain.ErrNotFound
	}
	if bc.Statut == entity.BCStatutAnnulee {
		return nil, domain.ErrConflict
	}
	if err := uc.bcRepo.UpdateStatut(id, statut); err != nil {
		return nil, err
	}
	bc.Statut = statut
	return bcToResponse(bc, false), nil
}

// Delete supprime un bon de commande et ses lignes dans une même
// transaction : les lignes ne doivent jamais disparaître sans l'en-tête.
func (uc *BonCommandeUseCase) Delete(ctx context.Context, id string) error {
	bc, err := uc.bcRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bc == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCommande(ctx, func(bcRepo repository.BonCommandeRepository) error {
		return bcRepo.Delete(id)
	})
}

// List renvoie une page de bons de commande : plage de dates, recherche sur
// le numéro et les notes, filtre fournisseur optionnel.
func (uc *BonCommandeUseCase) List(params dto.ListeParams, fournisseurID string) (*dto.BonCommandeListResponse, error) {
	params.Normaliser()

	var list []*entity.BonCommande
	var err error
	if fournisseurID != "" {
		list, err = uc.bcRepo.ListByFournisseur(fournisseurID)
	} else {
		list, err = uc.bcRepo.List()
	}
	if err != nil {
		return nil, err
	}

	pager := listing.NewPager(params.PageSize,
		listing.WithDate(func(bc *entity.BonCommande) time.Time { return bc.Date }),
		listing.WithTextFields(
			func(bc *entity.BonCommande) string { return bc.Numero },
			func(bc *entity.BonCommande) string { return bc.Notes },
		),
	)
	pager.SetItems(list)
	pager.SetDateRange(params.DateDebut, params.DateFin)
	pager.SetQuery(params.Query)
	pager.SetPage(params.Page)

	page := pager.Page()
	items := make([]*dto.BonCommandeResponse, 0, len(page))
	for _, bc := range page {
		items = append(items, bcToResponse(bc, false))
	}
	return &dto.BonCommandeListResponse{
		Items: items,
		Meta: dto.PageMeta{
			Page:      pager.PageIndex(),
			PageSize:  pager.PageSize(),
			PageCount: pager.PageCount(),
			Total:     len(pager.Filtered()),
		},
	}, nil
}

func bcToResponse(bc *entity.BonCommande, avecLignes bool) *dto.BonCommandeResponse {
	resp := &dto.BonCommandeResponse{
		ID:            bc.ID,
		Numero:        bc.Numero,
		FournisseurID: bc.FournisseurID,
		Date:          bc.Date,
		Statut:        bc.Statut,
		MontantTotal:  bc.MontantTotal,
		Notes:         bc.Notes,
	}
	if avecLignes {
		resp.Lignes = make([]dto.LigneCommandeResponse, 0, len(bc.Lignes))
		for _, l := range bc.Lignes {
			resp.Lignes = append(resp.Lignes, dto.LigneCommandeResponse{
				ID:           l.ID,
				ProduitID:    l.ProduitID,
				PrixUnitaire: l.PrixUnitaire,
				Quantite:     l.Quantite,
				NbPieces:     l.NbPieces,
				MontantLigne: l.MontantLigne,
			})
		}
	}
	return resp
}
