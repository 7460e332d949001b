package livraison_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/livraison"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire
// ──────────────────────────────────────────────────────────────────────────────

type fakeBLRepo struct {
	bls    map[string]*entity.BonLivraison
	lignes []entity.LigneLivraison
	seq    int
}

func newFakeBLRepo() *fakeBLRepo {
	return &fakeBLRepo{bls: make(map[string]*entity.BonLivraison)}
}

func (r *fakeBLRepo) Create(bl *entity.BonLivraison) error {
	r.bls[bl.ID] = bl
	return nil
}
func (r *fakeBLRepo) CreateLigne(l *entity.LigneLivraison) error {
	r.lignes = append(r.lignes, *l)
	return nil
}
func (r *fakeBLRepo) GetByID(id string) (*entity.BonLivraison, error) { return r.bls[id], nil }
func (r *fakeBLRepo) GetLignes(blID string) ([]entity.LigneLivraison, error) {
	var out []entity.LigneLivraison
	for _, l := range r.lignes {
		if l.BonLivraisonID == blID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *fakeBLRepo) List() ([]*entity.BonLivraison, error) {
	var out []*entity.BonLivraison
	for _, bl := range r.bls {
		out = append(out, bl)
	}
	return out, nil
}
func (r *fakeBLRepo) ListByClient(string) ([]*entity.BonLivraison, error)    { return nil, nil }
func (r *fakeBLRepo) ListByChauffeur(string) ([]*entity.BonLivraison, error) { return nil, nil }
func (r *fakeBLRepo) ListLignesLivreesByClient(string) ([]entity.LigneLivraison, error) {
	return nil, nil
}
func (r *fakeBLRepo) UpdateStatut(id, statut string) error {
	if bl, ok := r.bls[id]; ok {
		bl.Statut = statut
	}
	return nil
}
func (r *fakeBLRepo) Delete(id string) error {
	delete(r.bls, id)
	return nil
}
func (r *fakeBLRepo) NextNumero(annee int) (string, error) {
	r.seq++
	return fmt.Sprintf("BL-%04d-%04d", annee, r.seq), nil
}

// fakeTxRunner exécute le callback directement sur le repo, sans transaction.
// echec non nil simule un rollback : le callback n'est pas exécuté.
type fakeTxRunner struct {
	repo  *fakeBLRepo
	echec error
}

func (r *fakeTxRunner) RunLivraison(_ context.Context, fn func(repository.BonLivraisonRepository) error) error {
	if r.echec != nil {
		return r.echec
	}
	return fn(r.repo)
}

type fakeClientRepo struct{ clients map[string]*entity.Client }

func (r *fakeClientRepo) Create(*entity.Client) error { return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) GetByICE(string) (*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) List() ([]*entity.Client, error)         { return nil, nil }
func (r *fakeClientRepo) Update(*entity.Client) error             { return nil }
func (r *fakeClientRepo) Delete(string) error                     { return nil }

type fakeChauffeurRepo struct{ chauffeurs map[string]*entity.Chauffeur }

func (r *fakeChauffeurRepo) Create(*entity.Chauffeur) error { return nil }
func (r *fakeChauffeurRepo) GetByID(id string) (*entity.Chauffeur, error) {
	return r.chauffeurs[id], nil
}
func (r *fakeChauffeurRepo) List() ([]*entity.Chauffeur, error) { return nil, nil }
func (r *fakeChauffeurRepo) Update(*entity.Chauffeur) error     { return nil }
func (r *fakeChauffeurRepo) Delete(string) error                { return nil }

type fakeProduitRepo struct{ produits map[string]*entity.Produit }

func (r *fakeProduitRepo) Create(*entity.Produit) error { return nil }
func (r *fakeProduitRepo) GetByID(id string) (*entity.Produit, error) {
	return r.produits[id], nil
}
func (r *fakeProduitRepo) GetByReference(string) (*entity.Produit, error) { return nil, nil }
func (r *fakeProduitRepo) List() ([]*entity.Produit, error)               { return nil, nil }
func (r *fakeProduitRepo) Update(*entity.Produit) error                   { return nil }
func (r *fakeProduitRepo) Delete(string) error                            { return nil }

func buildUseCase(blRepo *fakeBLRepo) *livraison.BonLivraisonUseCase {
	return buildUseCaseAvecRunner(blRepo, &fakeTxRunner{repo: blRepo})
}

func buildUseCaseAvecRunner(blRepo *fakeBLRepo, runner *fakeTxRunner) *livraison.BonLivraisonUseCase {
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Nom: "Marbrerie Essaïd"},
	}}
	chauffeurs := &fakeChauffeurRepo{chauffeurs: map[string]*entity.Chauffeur{
		"ch1": {ID: "ch1", Nom: "Brahim", Type: entity.ChauffeurExterne, TarifCourse: dec("350")},
	}}
	produits := &fakeProduitRepo{produits: map[string]*entity.Produit{
		"p1": {ID: "p1", Nom: "Carrelage 60x60", PrixAchat: dec("45"), PrixVente: dec("72")},
	}}
	return livraison.NewBonLivraisonUseCase(runner, blRepo, clients, chauffeurs, produits)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// À la création : numéro généré, prix de vente catalogue appliqué par défaut,
// coût unitaire figé depuis le catalogue, frais de transport au tarif de
// course du chauffeur externe.
func TestCreate_ValeursParDefautEtCoutFige(t *testing.T) {
	blRepo := newFakeBLRepo()
	uc := buildUseCase(blRepo)

	resp, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{
		ClientID:    "c1",
		ChauffeurID: "ch1",
		Lignes: []dto.LigneLivraisonRequest{
			{ProduitID: "p1", Quantite: dec("40")}, // prix non renseigné
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^BL-\d{4}-0001$`, resp.Numero)
	assert.Equal(t, entity.BLStatutEnCours, resp.Statut)
	assert.True(t, resp.MontantTotal.Equal(dec("2880")), "72 × 40 au prix de vente catalogue")
	assert.True(t, resp.FraisTransport.Equal(dec("350")), "tarif de course du chauffeur externe par défaut")

	require.Len(t, resp.Lignes, 1)
	assert.True(t, resp.Lignes[0].PrixUnitaire.Equal(dec("72")))
	assert.True(t, resp.Lignes[0].PrixAchatUnitaire.Equal(dec("45")), "coût figé depuis le catalogue")
}

func TestCreate_NumerotationSequentielle(t *testing.T) {
	blRepo := newFakeBLRepo()
	uc := buildUseCase(blRepo)

	lignes := []dto.LigneLivraisonRequest{{ProduitID: "p1", Quantite: dec("1")}}
	premier, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{ClientID: "c1", Lignes: lignes})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{ClientID: "c1", Lignes: lignes})
	require.NoError(t, err)

	assert.NotEqual(t, premier.Numero, second.Numero)
	assert.Regexp(t, `-0002$`, second.Numero)
}

func TestCreate_ClientInconnu(t *testing.T) {
	uc := buildUseCase(newFakeBLRepo())

	_, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{
		ClientID: "inconnu",
		Lignes:   []dto.LigneLivraisonRequest{{ProduitID: "p1", Quantite: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SansLignes(t *testing.T) {
	uc := buildUseCase(newFakeBLRepo())

	_, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{ClientID: "c1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_QuantiteNulle(t *testing.T) {
	uc := buildUseCase(newFakeBLRepo())

	_, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{
		ClientID: "c1",
		Lignes:   []dto.LigneLivraisonRequest{{ProduitID: "p1", Quantite: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un BL annulé est figé : tout changement de statut ultérieur est un conflit.
func TestUpdateStatut_AnnuleeEstDefinitif(t *testing.T) {
	blRepo := newFakeBLRepo()
	uc := buildUseCase(blRepo)

	resp, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{
		ClientID: "c1",
		Lignes:   []dto.LigneLivraisonRequest{{ProduitID: "p1", Quantite: dec("2")}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatut(resp.ID, entity.BLStatutAnnulee)
	require.NoError(t, err)

	_, err = uc.UpdateStatut(resp.ID, entity.BLStatutLivree)
	assert.ErrorIs(t, err, domain.ErrConflict, "un BL annulé ne doit plus changer de statut")
}

// La suppression passe par la transaction : si elle n'aboutit pas, l'en-tête
// et les lignes restent en place ensemble.
func TestDelete_SuppressionEnTransaction(t *testing.T) {
	blRepo := newFakeBLRepo()
	runner := &fakeTxRunner{repo: blRepo}
	uc := buildUseCaseAvecRunner(blRepo, runner)

	resp, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{
		ClientID: "c1",
		Lignes:   []dto.LigneLivraisonRequest{{ProduitID: "p1", Quantite: dec("3")}},
	})
	require.NoError(t, err)

	runner.echec = errors.New("connexion perdue")
	err = uc.Delete(context.Background(), resp.ID)
	assert.Error(t, err)
	reste, _ := blRepo.GetByID(resp.ID)
	assert.NotNil(t, reste, "transaction échouée : le bon doit rester intact")
	lignes, _ := blRepo.GetLignes(resp.ID)
	assert.Len(t, lignes, 1, "transaction échouée : les lignes doivent rester intactes")

	runner.echec = nil
	require.NoError(t, uc.Delete(context.Background(), resp.ID))
	reste, _ = blRepo.GetByID(resp.ID)
	assert.Nil(t, reste)
}

func TestDelete_Introuvable(t *testing.T) {
	uc := buildUseCase(newFakeBLRepo())

	err := uc.Delete(context.Background(), "inconnu")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatut_StatutInconnu(t *testing.T) {
	blRepo := newFakeBLRepo()
	uc := buildUseCase(blRepo)

	resp, err := uc.Create(context.Background(), dto.CreateBonLivraisonRequest{
		ClientID: "c1",
		Lignes:   []dto.LigneLivraisonRequest{{ProduitID: "p1", Quantite: dec("2")}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatut(resp.ID, "expediee")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
