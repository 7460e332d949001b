package tresorerie_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/tresorerie"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
)

func buildPaiementUseCase(repo *fakePaiementRepo) *tresorerie.PaiementUseCase {
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Nom: "Marbrerie Essaïd"},
	}}
	fournisseurs := &fakeFournisseurRepo{fournisseurs: map[string]*entity.Fournisseur{
		"f1": {ID: "f1", Nom: "Carrières du Rif"},
	}}
	chauffeurs := &fakeChauffeurRepo{chauffeurs: map[string]*entity.Chauffeur{
		"ch1": {ID: "ch1", Nom: "Brahim", Type: entity.ChauffeurExterne},
	}}
	return tresorerie.NewPaiementUseCase(repo, clients, fournisseurs, chauffeurs)
}

func TestPaiementCreate_EspeceSansReference(t *testing.T) {
	repo := &fakePaiementRepo{}
	uc := buildPaiementUseCase(repo)

	resp, err := uc.Create(dto.CreatePaiementRequest{
		TiersType: entity.TiersClient,
		TiersID:   "c1",
		Montant:   dec("1500"),
		Mode:      entity.PaiementEspece,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.Date.IsZero(), "date du jour par défaut")
	assert.Len(t, repo.paiements, 1)
}

// Un chèque ou un effet sans numéro de référence est refusé.
func TestPaiementCreate_ChequeSansReference(t *testing.T) {
	uc := buildPaiementUseCase(&fakePaiementRepo{})

	for _, mode := range []string{entity.PaiementCheque, entity.PaiementEffet} {
		_, err := uc.Create(dto.CreatePaiementRequest{
			TiersType: entity.TiersClient,
			TiersID:   "c1",
			Montant:   dec("1500"),
			Mode:      mode,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "mode %s sans référence", mode)
	}
}

func TestPaiementCreate_ChequeAvecReference(t *testing.T) {
	uc := buildPaiementUseCase(&fakePaiementRepo{})

	resp, err := uc.Create(dto.CreatePaiementRequest{
		TiersType: entity.TiersFournisseur,
		TiersID:   "f1",
		Montant:   dec("12000"),
		Mode:      entity.PaiementCheque,
		Reference: "CHQ-44521",
		Emetteur:  "BMCE",
	})
	require.NoError(t, err)
	assert.Equal(t, "CHQ-44521", resp.Reference)
}

func TestPaiementCreate_MontantNul(t *testing.T) {
	uc := buildPaiementUseCase(&fakePaiementRepo{})

	_, err := uc.Create(dto.CreatePaiementRequest{
		TiersType: entity.TiersClient,
		TiersID:   "c1",
		Montant:   decimal.Zero,
		Mode:      entity.PaiementEspece,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaiementCreate_TiersInconnu(t *testing.T) {
	uc := buildPaiementUseCase(&fakePaiementRepo{})

	_, err := uc.Create(dto.CreatePaiementRequest{
		TiersType: entity.TiersChauffeur,
		TiersID:   "inconnu",
		Montant:   dec("500"),
		Mode:      entity.PaiementEspece,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPaiementCreate_TiersTypeInvalide(t *testing.T) {
	uc := buildPaiementUseCase(&fakePaiementRepo{})

	_, err := uc.Create(dto.CreatePaiementRequest{
		TiersType: "banque",
		TiersID:   "c1",
		Montant:   dec("500"),
		Mode:      entity.PaiementEspece,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La mise à jour ne touche jamais au tiers de rattachement.
func TestPaiementUpdate_TiersImmuable(t *testing.T) {
	repo := &fakePaiementRepo{paiements: []*entity.Paiement{
		{
			ID:        "p1",
			TiersType: entity.TiersClient,
			TiersID:   "c1",
			Montant:   dec("1000"),
			Mode:      entity.PaiementEspece,
			Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}}
	uc := buildPaiementUseCase(repo)

	resp, err := uc.Update("p1", dto.UpdatePaiementRequest{
		Montant:   dec("1200"),
		Mode:      entity.PaiementVirement,
		Reference: "VIR-889",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TiersClient, resp.TiersType)
	assert.Equal(t, "c1", resp.TiersID)
	assert.True(t, resp.Montant.Equal(dec("1200")))
	assert.Equal(t, entity.PaiementVirement, resp.Mode)
}

// Le filtre tiers va par paire : un type sans identifiant (ou l'inverse) ne
// doit pas retomber silencieusement sur la liste complète.
func TestPaiementList_FiltreTiersIncomplet(t *testing.T) {
	repo := &fakePaiementRepo{paiements: []*entity.Paiement{
		{ID: "p1", TiersType: entity.TiersClient, TiersID: "c1", Montant: dec("100"), Mode: entity.PaiementEspece},
	}}
	uc := buildPaiementUseCase(repo)

	_, err := uc.List(dto.ListeParams{}, entity.TiersClient, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tiers_type sans tiers_id")

	_, err = uc.List(dto.ListeParams{}, "", "c1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tiers_id sans tiers_type")
}

func TestPaiementList_FiltreParTiersEtDates(t *testing.T) {
	repo := &fakePaiementRepo{paiements: []*entity.Paiement{
		{ID: "p1", TiersType: entity.TiersClient, TiersID: "c1", Montant: dec("100"),
			Mode: entity.PaiementEspece, Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "p2", TiersType: entity.TiersClient, TiersID: "c1", Montant: dec("200"),
			Mode: entity.PaiementEspece, Date: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "p3", TiersType: entity.TiersFournisseur, TiersID: "f1", Montant: dec("300"),
			Mode: entity.PaiementEspece, Date: time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC)},
	}}
	uc := buildPaiementUseCase(repo)

	debut := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)
	out, err := uc.List(dto.ListeParams{
		DateDebut: &debut,
		DateFin:   &fin,
	}, entity.TiersClient, "c1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "seul p2 est dans la plage pour ce tiers")
	assert.Equal(t, "p2", out.Items[0].ID)
	assert.Equal(t, 1, out.Meta.Total)
}
