package livraison

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

// BonLivraisonUseCase cas d'usage des bons de livraison client.
// À la création, le coût unitaire de chaque ligne est figé depuis le
// catalogue : la marge des BL passés ne bouge pas quand le prix d'achat
// du produit change.
type BonLivraisonUseCase struct {
	txRunner      TxRunner
	blRepo        repository.BonLivraisonRepository
	clientRepo    repository.ClientRepository
	chauffeurRepo repository.ChauffeurRepository
	produitRepo   repository.ProduitRepository
}

// NewBonLivraisonUseCase construit le cas d'usage.
func NewBonLivraisonUseCase(
	txRunner TxRunner,
	blRepo repository.BonLivraisonRepository,
	clientRepo repository.ClientRepository,
	chauffeurRepo repository.ChauffeurRepository,
	produitRepo repository.ProduitRepository,
) *BonLivraisonUseCase {
	return &BonLivraisonUseCase{
		txRunner:      txRunner,
		blRepo:        blRepo,
		clientRepo:    clientRepo,
		chauffeurRepo: chauffeurRepo,
		produitRepo:   produitRepo,
	}
}

// Create crée un bon de livraison avec ses lignes.
func (uc *BonLivraisonUseCase) Create(ctx context.Context, in dto.CreateBonLivraisonRequest) (*dto.BonLivraisonResponse, error) {
	if in.ClientID == "" || len(in.Lignes) == 0 || in.FraisTransport.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}

	frais := in.FraisTransport
	if in.ChauffeurID != "" {
		chauffeur, err := uc.chauffeurRepo.GetByID(in.ChauffeurID)
		if err != nil || chauffeur == nil {
			return nil, domain.ErrNotFound
		}
		// Chauffeur externe sans frais renseignés : tarif de course par défaut
		if frais.IsZero() && chauffeur.Type == entity.ChauffeurExterne {
			frais = chauffeur.TarifCourse
		}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	// Validation des lignes : prix de vente par défaut, coût figé au catalogue
	lignes := make([]entity.LigneLivraison, 0, len(in.Lignes))
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
			prix = produit.PrixVente
		}
		montant := prix.Mul(l.Quantite)
		lignes = append(lignes, entity.LigneLivraison{
			ID:                uuid.New().String(),
			ProduitID:         l.ProduitID,
			PrixUnitaire:      prix,
			PrixAchatUnitaire: produit.PrixAchat,
			Quantite:          l.Quantite,
			NbPieces:          l.NbPieces,
			MontantLigne:      montant,
		})
		total = total.Add(montant)
	}

	now := time.Now()
	bl := &entity.BonLivraison{
		ID:             uuid.New().String(),
		ClientID:       in.ClientID,
		ChauffeurID:    in.ChauffeurID,
		Date:           date,
		Statut:         entity.BLStatutEnCours,
		MontantTotal:   total,
		FraisTransport: frais,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.RunLivraison(ctx, func(blRepo repository.BonLivraisonRepository) error {
		numero, err := blRepo.NextNumero(date.Year())
		if err != nil {
			return err
		}
		bl.Numero = numero
		if err := blRepo.Create(bl); err != nil {
			return err
		}
		for i := range lignes {
			lignes[i].BonLivraisonID = bl.ID
			if err := blRepo.CreateLigne(&lignes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	bl.Lignes = lignes
	return blToResponse(bl, true), nil
}

// GetByID renvoie un bon de livraison avec ses lignes.
func (uc *BonLivraisonUseCase) GetByID(id string) (*dto.BonLivraisonResponse, error) {
	bl, err := uc.blRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bl == nil {
		return nil, domain.ErrNotFound
	}
	lignes, err := uc.blRepo.GetLignes(id)
	if err != nil {
		return nil, err
	}
	bl.Lignes = lignes
	return blToResponse(bl, true), nil
}

// UpdateStatut change le statut d'un bon de livraison. Un BL annulé est
// figé ; seul un BL livré entre dans le calcul de marge.
func (uc *BonLivraisonUseCase) UpdateStatut(id, statut string) (*dto.BonLivraisonResponse, error) {
	if statut != entity.BLStatutEnCours && statut != entity.BLStatutLivree && statut != entity.BLStatutAnnulee {
		return nil, domain.ErrInvalidInput
	}
	bl, err := uc.blRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bl == nil {
		return nil, domain.ErrNotFound
	}
	if bl.Statut == entity.BLStatutAnnulee {
		return nil, domain.ErrConflict
	}
	if err := uc.blRepo.UpdateStatut(id, statut); err != nil {
		return nil, err
	}
	bl.Statut = statut
	return blToResponse(bl, false), nil
}

// Delete supprime un bon de livraison et ses lignes dans une même
// transaction : les lignes ne doivent jamais disparaître sans l'en-tête.
func (uc *BonLivraisonUseCase) Delete(ctx context.Context, id string) error {
	bl, err := uc.blRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bl == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunLivraison(ctx, func(blRepo repository.BonLivraisonRepository) error {
		return blRepo.Delete(id)
	})
}

// List renvoie une page de bons de livraison : plage de dates, recherche sur
// le numéro et les notes, filtre client optionnel.
func (uc *BonLivraisonUseCase) List(params dto.ListeParams, clientID string) (*dto.BonLivraisonListResponse, error) {
	params.Normaliser()

	var list []*entity.BonLivraison
	var err error
	if clientID != "" {
		list, err = uc.blRepo.ListByClient(clientID)
	} else {
		list, err = uc.blRepo.List()
	}
	if err != nil {
		return nil, err
	}

	pager := listing.NewPager(params.PageSize,
		listing.WithDate(func(bl *entity.BonLivraison) time.Time { return bl.Date }),
		listing.WithTextFields(
			func(bl *entity.BonLivraison) string { return bl.Numero },
			func(bl *entity.BonLivraison) string { return bl.Notes },
		),
	)
	pager.SetItems(list)
	pager.SetDateRange(params.DateDebut, params.DateFin)
	pager.SetQuery(params.Query)
	pager.SetPage(params.Page)

	page := pager.Page()
	items := make([]*dto.BonLivraisonResponse, 0, len(page))
	for _, bl := range page {
		items = append(items, blToResponse(bl, false))
	}
	return &dto.BonLivraisonListResponse{
		Items: items,
		Meta: dto.PageMeta{
			Page:      pager.PageIndex(),
			PageSize:  pager.PageSize(),
			PageCount: pager.PageCount(),
			Total:     len(pager.Filtered()),
		},
	}, nil
}

func blToResponse(bl *entity.BonLivraison, avecLignes bool) *dto.BonLivraisonResponse {
	resp := &dto.BonLivraisonResponse{
		ID:             bl.ID,
		Numero:         bl.Numero,
		ClientID:       bl.ClientID,
		ChauffeurID:    bl.ChauffeurID,
		Date:           bl.Date,
		Statut:         bl.Statut,
		MontantTotal:   bl.MontantTotal,
		FraisTransport: bl.FraisTransport,
		Notes:          bl.Notes,
	}
	if avecLignes {
		resp.Lignes = make([]dto.LigneLivraisonResponse, 0, len(bl.Lignes))
		for _, l := range bl.Lignes {
			resp.Lignes = append(resp.Lignes, dto.LigneLivraisonResponse{
				ID:                l.ID,
				ProduitID:         l.ProduitID,
				PrixUnitaire:      l.PrixUnitaire,
				PrixAchatUnitaire: l.PrixAchatUnitaire,
				Quantite:          l.Quantite,
				NbPieces:          l.NbPieces,
				MontantLigne:      l.MontantLigne,
			})
		}
	}
	return resp
}
