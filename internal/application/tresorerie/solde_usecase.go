package tresorerie

import (
	"github.com/shopspring/decimal"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/finance"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

// SoldeUseCase calcule les cumuls financiers d'un tiers à partir des pièces
// non annulées et des paiements, via l'agrégateur du domaine (finance).
type SoldeUseCase struct {
	clientRepo      repository.ClientRepository
	fournisseurRepo repository.FournisseurRepository
	chauffeurRepo   repository.ChauffeurRepository
	blRepo          repository.BonLivraisonRepository
	bcRepo          repository.BonCommandeRepository
	paiementRepo    repository.PaiementRepository
}

// NewSoldeUseCase construit le cas d'usage.
func NewSoldeUseCase(
	clientRepo repository.ClientRepository,
	fournisseurRepo repository.FournisseurRepository,
	chauffeurRepo repository.ChauffeurRepository,
	blRepo repository.BonLivraisonRepository,
	bcRepo repository.BonCommandeRepository,
	paiementRepo repository.PaiementRepository,
) *SoldeUseCase {
	return &SoldeUseCase{
		clientRepo:      clientRepo,
		fournisseurRepo: fournisseurRepo,
		chauffeurRepo:   chauffeurRepo,
		blRepo:          blRepo,
		bcRepo:          bcRepo,
		paiementRepo:    paiementRepo,
	}
}

// SoldeClient renvoie le solde d'un client : CA des BL non annulés, cumul
// des paiements, dette ou avance (crédit initial déduit de la dette) et
// marge des BL livrés.
func (uc *SoldeUseCase) SoldeClient(id string) (*dto.SoldeResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	bls, err := uc.blRepo.ListByClient(id)
	if err != nil {
		return nil, err
	}
	activite := make([]decimal.Decimal, 0, len(bls))
	for _, bl := range bls {
		if bl.Statut == entity.BLStatutAnnulee {
			continue
		}
		activite = append(activite, bl.MontantTotal)
	}

	paiements, err := uc.montantsPaiements(entity.TiersClient, id)
	if err != nil {
		return nil, err
	}

	lignes, err := uc.blRepo.ListLignesLivreesByClient(id)
	if err != nil {
		return nil, err
	}
	lignesMarge := make([]finance.LigneMarge, 0, len(lignes))
	for _, l := range lignes {
		lignesMarge = append(lignesMarge, finance.LigneMarge{
			PrixUnitaire:      l.PrixUnitaire,
			PrixAchatUnitaire: l.PrixAchatUnitaire,
			Quantite:          l.Quantite,
		})
	}
	marge := finance.Marge(lignesMarge)

	s := finance.CalculerClient(activite, paiements, client.CreditInitial)
	return soldeToResponse(entity.TiersClient, id, s, &marge), nil
}

// SoldeFournisseur renvoie le solde d'un fournisseur : total des BC non
// annulés contre paiements versés.
func (uc *SoldeUseCase) SoldeFournisseur(id string) (*dto.SoldeResponse, error) {
	fournisseur, err := uc.fournisseurRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fournisseur == nil {
		return nil, domain.ErrNotFound
	}

	bcs, err := uc.bcRepo.ListByFournisseur(id)
	if err != nil {
		return nil, err
	}
	activite := make([]decimal.Decimal, 0, len(bcs))
	for _, bc := range bcs {
		if bc.Statut == entity.BCStatutAnnulee {
			continue
		}
		activite = append(activite, bc.MontantTotal)
	}

	paiements, err := uc.montantsPaiements(entity.TiersFournisseur, id)
	if err != nil {
		return nil, err
	}

	s := finance.Calculer(activite, paiements)
	return soldeToResponse(entity.TiersFournisseur, id, s, nil), nil
}

// SoldeChauffeur renvoie le solde d'un chauffeur. Un externe accumule les
// frais de transport de ses BL livrés ; un interne est salarié : son
// activité reste à zéro et seuls ses paiements sont cumulés.
func (uc *SoldeUseCase) SoldeChauffeur(id string) (*dto.SoldeResponse, error) {
	chauffeur, err := uc.chauffeurRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chauffeur == nil {
		return nil, domain.ErrNotFound
	}

	var activite []decimal.Decimal
	if chauffeur.Type == entity.ChauffeurExterne {
		bls, err := uc.blRepo.ListByChauffeur(id)
		if err != nil {
			return nil, err
		}
		for _, bl := range bls {
			if bl.Statut != entity.BLStatutLivree {
				continue
			}
			frais := bl.FraisTransport
			if frais.IsZero() {
				frais = chauffeur.TarifCourse
			}
			activite = append(activite, frais)
		}
	}

	paiements, err := uc.montantsPaiements(entity.TiersChauffeur, id)
	if err != nil {
		return nil, err
	}

	s := finance.Calculer(activite, paiements)
	return soldeToResponse(entity.TiersChauffeur, id, s, nil), nil
}

func (uc *SoldeUseCase) montantsPaiements(tiersType, tiersID string) ([]decimal.Decimal, error) {
	paiements, err := uc.paiementRepo.ListByTiers(tiersType, tiersID)
	if err != nil {
		return nil, err
	}
	montants := make([]decimal.Decimal, 0, len(paiements))
	for _, p := range paiements {
		montants = append(montants, p.Montant)
	}
	return montants, nil
}

func soldeToResponse(tiersType, tiersID string, s finance.Solde, marge *decimal.Decimal) *dto.SoldeResponse {
	resp := &dto.SoldeResponse{
		TiersType:      tiersType,
		TiersID:        tiersID,
		TotalActivite:  s.TotalActivite.Round(2),
		TotalPaiements: s.TotalPaiements.Round(2),
		Dette:          s.Dette.Round(2),
		Avance:         s.Avance.Round(2),
	}
	if marge != nil {
		m := marge.Round(2)
		resp.Marge = &m
	}
	return resp
}
