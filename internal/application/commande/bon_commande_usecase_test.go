package commande_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasnegoce/negoce-api/internal/application/commande"
	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire
// ──────────────────────────────────────────────────────────────────────────────

type fakeBCRepo struct {
	bcs    map[string]*entity.BonCommande
	lignes []entity.LigneCommande
	seq    int
}

func newFakeBCRepo() *fakeBCRepo {
	return &fakeBCRepo{bcs: make(map[string]*entity.BonCommande)}
}

func (r *fakeBCRepo) Create(bc *entity.BonCommande) error {
	r.bcs[bc.ID] = bc
	return nil
}
func (r *fakeBCRepo) CreateLigne(l *entity.LigneCommande) error {
	r.lignes = append(r.lignes, *l)
	return nil
}
func (r *fakeBCRepo) GetByID(id string) (*entity.BonCommande, error) { return r.bcs[id], nil }
func (r *fakeBCRepo) GetLignes(bcID string) ([]entity.LigneCommande, error) {
	var out []entity.LigneCommande
	for _, l := range r.lignes {
		if l.BonCommandeID == bcID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *fakeBCRepo) List() ([]*entity.BonCommande, error) {
	var out []*entity.BonCommande
	for _, bc := range r.bcs {
		out = append(out, bc)
	}
	return out, nil
}
func (r *fakeBCRepo) ListByFournisseur(string) ([]*entity.BonCommande, error) { return nil, nil }
func (r *fakeBCRepo) UpdateStatut(id, statut string) error {
	if bc, ok := r.bcs[id]; ok {
		bc.Statut = statut
	}
	return nil
}
func (r *fakeBCRepo) Delete(id string) error {
	delete(r.bcs, id)
	return nil
}
func (r *fakeBCRepo) NextNumero(annee int) (string, error) {
	r.seq++
	return fmt.Sprintf("BC-%04d-%04d", annee, r.seq), nil
}

// fakeTxRunner exécute le callback directement sur le repo, sans transaction.
// echec non nil simule un rollback : le callback n'est pas exécuté.
type fakeTxRunner struct {
	repo  *fakeBCRepo
	echec error
}

func (r *fakeTxRunner) RunCommande(_ context.Context, fn func(repository.BonCommandeRepository) error) error {
	if r.echec != nil {
		return r.echec
	}
	return fn(r.repo)
}

type fakeFournisseurRepo struct{ fournisseurs map[string]*entity.Fournisseur }

func (r *fakeFournisseurRepo) Create(*entity.Fournisseur) error { return nil }
func (r *fakeFournisseurRepo) GetByID(id string) (*entity.Fournisseur, error) {
	return r.fournisseurs[id], nil
}
func (r *fakeFournisseurRepo) GetByICE(string) (*entity.Fournisseur, error) { return nil, nil }
func (r *fakeFournisseurRepo) List() ([]*entity.Fournisseur, error)         { return nil, nil }
func (r *fakeFournisseurRepo) Update(*entity.Fournisseur) error             { return nil }
func (r *fakeFournisseurRepo) Delete(string) error                          { return nil }

type fakeProduitRepo struct{ produits map[string]*entity.Produit }

func (r *fakeProduitRepo) Create(*entity.Produit) error { return nil }
func (r *fakeProduitRepo) GetByID(id string) (*entity.Produit, error) {
	return r.produits[id], nil
}
func (r *fakeProduitRepo) GetByReference(string) (*entity.Produit, error) { return nil, nil }
func (r *fakeProduitRepo) List() ([]*entity.Produit, error)               { return nil, nil }
func (r *fakeProduitRepo) Update(*entity.Produit) error                   { return nil }
func (r *fakeProduitRepo) Delete(string) error                            { return nil }

func buildUseCase(bcRepo *fakeBCRepo) *commande.BonCommandeUseCase {
	return buildUseCaseAvecRunner(bcRepo, &fakeTxRunner{repo: bcRepo})
}

func buildUseCaseAvecRunner(bcRepo *fakeBCRepo, runner *fakeTxRunner) *commande.BonCommandeUseCase {
	fournisseurs := &fakeFournisseurRepo{fournisseurs: map[string]*entity.Fournisseur{
		"f1": {ID: "f1", Nom: "Carrières du Rif"},
	}}
	produits := &fakeProduitRepo{produits: map[string]*entity.Produit{
		"p1": {ID: "p1", Nom: "Carrelage 60x60", PrixAchat: dec("45"), PrixVente: dec("72")},
	}}
	return commande.NewBonCommandeUseCase(runner, bcRepo, fournisseurs, produits)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// À la création : numéro généré, prix d'achat catalogue appliqué par défaut,
// montant total cumulé sur les lignes.
func TestCreate_PrixCatalogueParDefaut(t *testing.T) {
	bcRepo := newFakeBCRepo()
	uc := buildUseCase(bcRepo)

	resp, err := uc.Create(context.Background(), dto.CreateBonCommandeRequest{
		FournisseurID: "f1",
		Lignes: []dto.LigneCommandeRequest{
			// Première ligne sans prix, seconde au prix négocié.
			{ProduitID: "p1", Quantite: dec("100")},
			{ProduitID: "p1", Quantite: dec("10"), PrixUnitaire: dec("40")},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^BC-\d{4}-0001$`, resp.Numero)
	assert.Equal(t, entity.BCStatutEnCours, resp.Statut)
	assert.True(t, resp.MontantTotal.Equal(dec("4900")), "45 × 100 + 40 × 10")
	require.Len(t, resp.Lignes, 2)
	assert.True(t, resp.Lignes[0].PrixUnitaire.Equal(dec("45")), "prix d'achat catalogue par défaut")
	assert.True(t, resp.Lignes[1].PrixUnitaire.Equal(dec("40")))
}

func TestCreate_FournisseurInconnu(t *testing.T) {
	uc := buildUseCase(newFakeBCRepo())

	_, err := uc.Create(context.Background(), dto.CreateBonCommandeRequest{
		FournisseurID: "inconnu",
		Lignes:        []dto.LigneCommandeRequest{{ProduitID: "p1", Quantite: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SansLignes(t *testing.T) {
	uc := buildUseCase(newFakeBCRepo())

	_, err := uc.Create(context.Background(), dto.CreateBonCommandeRequest{FournisseurID: "f1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un BC annulé est figé : tout changement de statut ultérieur est un conflit.
func TestUpdateStatut_AnnuleeEstDefinitif(t *testing.T) {
	bcRepo := newFakeBCRepo()
	uc := buildUseCase(bcRepo)

	resp, err := uc.Create(context.Background(), dto.CreateBonCommandeRequest{
		FournisseurID: "f1",
		Lignes:        []dto.LigneCommandeRequest{{ProduitID: "p1", Quantite: dec("5")}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatut(resp.ID, entity.BCStatutAnnulee)
	require.NoError(t, err)

	_, err = uc.UpdateStatut(resp.ID, entity.BCStatutRecue)
	assert.ErrorIs(t, err, domain.ErrConflict, "un BC annulé ne doit plus changer de statut")
}

// La suppression passe par la transaction : si elle n'aboutit pas, l'en-tête
// et les lignes restent en place ensemble.
func TestDelete_SuppressionEnTransaction(t *testing.T) {
	bcRepo := newFakeBCRepo()
	runner := &fakeTxRunner{repo: bcRepo}
	uc := buildUseCaseAvecRunner(bcRepo, runner)

	resp, err := uc.Create(context.Background(), dto.CreateBonCommandeRequest{
		FournisseurID: "f1",
		Lignes:        []dto.LigneCommandeRequest{{ProduitID: "p1", Quantite: dec("3")}},
	})
	require.NoError(t, err)

	runner.echec = errors.New("connexion perdue")
	err = uc.Delete(context.Background(), resp.ID)
	assert.Error(t, err)
	reste, _ := bcRepo.GetByID(resp.ID)
	assert.NotNil(t, reste, "transaction échouée : le bon doit rester intact")
	lignes, _ := bcRepo.GetLignes(resp.ID)
	assert.Len(t, lignes, 1, "transaction échouée : les lignes doivent rester intactes")

	runner.echec = nil
	require.NoError(t, uc.Delete(context.Background(), resp.ID))
	reste, _ = bcRepo.GetByID(resp.ID)
	assert.Nil(t, reste)
}

func TestUpdateStatut_StatutInconnu(t *testing.T) {
	bcRepo := newFakeBCRepo()
	uc := buildUseCase(bcRepo)

	resp, err := uc.Create(context.Background(), dto.CreateBonCommandeRequest{
		FournisseurID: "f1",
		Lignes:        []dto.LigneCommandeRequest{{ProduitID: "p1", Quantite: dec("5")}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatut(resp.ID, "validee")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
