package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasnegoce/negoce-api/internal/domain/finance"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculer : dette / avance
// ──────────────────────────────────────────────────────────────────────────────

// Entrées vides : tous les cumuls doivent être à zéro.
func TestCalculer_EntreesVides(t *testing.T) {
	s := finance.Calculer(nil, nil)

	assert.True(t, s.TotalActivite.IsZero(), "activité vide doit donner un total nul")
	assert.True(t, s.TotalPaiements.IsZero(), "paiements vides doivent donner un total nul")
	assert.True(t, s.Dette.IsZero(), "pas d'activité : pas de dette")
	assert.True(t, s.Avance.IsZero(), "pas de paiement : pas d'avance")
}

// Activité > paiements : le tiers est débiteur, l'avance est nulle.
func TestCalculer_ClientDebiteur(t *testing.T) {
	activite := []decimal.Decimal{dec("12000.00"), dec("8000.00")}
	paiements := []decimal.Decimal{dec("15000.00")}

	s := finance.Calculer(activite, paiements)

	assert.True(t, s.Dette.Equal(dec("5000.00")), "dette = activité − paiements")
	assert.True(t, s.Avance.IsZero(), "un débiteur n'a pas d'avance")
}

// Paiements > activité : le tiers a une avance, la dette est nulle.
func TestCalculer_TiersEnAvance(t *testing.T) {
	activite := []decimal.Decimal{dec("7000.00")}
	paiements := []decimal.Decimal{dec("4000.00"), dec("6000.00")}

	s := finance.Calculer(activite, paiements)

	assert.True(t, s.Avance.Equal(dec("3000.00")), "avance = paiements − activité")
	assert.True(t, s.Dette.IsZero(), "un tiers en avance n'a pas de dette")
}

// Propriété : pour tout A, P ≥ 0, une seule des deux valeurs dette/avance est
// non nulle, et Dette − Avance = A − P.
func TestCalculer_ProprieteDetteAvance(t *testing.T) {
	cas := []struct {
		nom       string
		activite  []decimal.Decimal
		paiements []decimal.Decimal
	}{
		{"équilibre exact", []decimal.Decimal{dec("100")}, []decimal.Decimal{dec("100")}},
		{"dette", []decimal.Decimal{dec("2500.50"), dec("99.50")}, []decimal.Decimal{dec("1000")}},
		{"avance", []decimal.Decimal{dec("10")}, []decimal.Decimal{dec("300.75")}},
		{"montants décimaux", []decimal.Decimal{dec("33.33"), dec("66.67")}, []decimal.Decimal{dec("0.01")}},
		{"aucune activité", nil, []decimal.Decimal{dec("500")}},
		{"aucun paiement", []decimal.Decimal{dec("500")}, nil},
	}

	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			s := finance.Calculer(c.activite, c.paiements)

			require.True(t, s.Dette.GreaterThanOrEqual(decimal.Zero), "la dette ne peut pas être négative")
			require.True(t, s.Avance.GreaterThanOrEqual(decimal.Zero), "l'avance ne peut pas être négative")
			assert.True(t, s.Dette.IsZero() || s.Avance.IsZero(),
				"dette et avance sont mutuellement exclusives")

			diff := s.TotalActivite.Sub(s.TotalPaiements)
			assert.True(t, s.Dette.Sub(s.Avance).Equal(diff),
				"Dette − Avance doit valoir Activité − Paiements")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CalculerClient : crédit initial
// ──────────────────────────────────────────────────────────────────────────────

// Le crédit initial vient en déduction de la dette.
func TestCalculerClient_CreditInitialDeduitDeLaDette(t *testing.T) {
	activite := []decimal.Decimal{dec("20000")}
	paiements := []decimal.Decimal{dec("5000")}

	s := finance.CalculerClient(activite, paiements, dec("3000"))

	assert.True(t, s.Dette.Equal(dec("12000")), "dette = CA − paiements − crédit initial")
	assert.True(t, s.TotalPaiements.Equal(dec("5000")),
		"TotalPaiements reste le cumul des règlements réels, crédit exclu")
}

// Un crédit initial supérieur au restant dû bascule le client en avance.
func TestCalculerClient_CreditSuperieurAuRestantDu(t *testing.T) {
	activite := []decimal.Decimal{dec("4000")}
	paiements := []decimal.Decimal{dec("1000")}

	s := finance.CalculerClient(activite, paiements, dec("5000"))

	assert.True(t, s.Dette.IsZero(), "le crédit couvre la dette")
	assert.True(t, s.Avance.Equal(dec("2000")), "le surplus de crédit devient une avance")
}

// Crédit initial nul : comportement identique à Calculer.
func TestCalculerClient_SansCredit(t *testing.T) {
	activite := []decimal.Decimal{dec("900")}
	paiements := []decimal.Decimal{dec("300")}

	base := finance.Calculer(activite, paiements)
	client := finance.CalculerClient(activite, paiements, decimal.Zero)

	assert.True(t, base.Dette.Equal(client.Dette))
	assert.True(t, base.Avance.Equal(client.Avance))
}

// ──────────────────────────────────────────────────────────────────────────────
// Marge
// ──────────────────────────────────────────────────────────────────────────────

func TestMarge_SommeDesLignes(t *testing.T) {
	lignes := []finance.LigneMarge{
		// marbre au m² : (450 − 300) × 12.5 = 1875
		{PrixUnitaire: dec("450"), PrixAchatUnitaire: dec("300"), Quantite: dec("12.5")},
		// pièce unitaire : (80 − 65) × 40 = 600
		{PrixUnitaire: dec("80"), PrixAchatUnitaire: dec("65"), Quantite: dec("40")},
	}

	marge := finance.Marge(lignes)

	assert.True(t, marge.Equal(dec("2475")), "la marge doit sommer (vente − coût) × quantité par ligne")
}

func TestMarge_SansLignes(t *testing.T) {
	assert.True(t, finance.Marge(nil).IsZero(), "aucune ligne : marge nulle")
}

// Une ligne vendue sous le coût produit une marge négative : elle doit bien
// venir en déduction du total, pas être tronquée à zéro.
func TestMarge_LigneAPerte(t *testing.T) {
	lignes := []finance.LigneMarge{
		{PrixUnitaire: dec("100"), PrixAchatUnitaire: dec("120"), Quantite: dec("2")},
		{PrixUnitaire: dec("100"), PrixAchatUnitaire: dec("90"), Quantite: dec("1")},
	}

	marge := finance.Marge(lignes)

	assert.True(t, marge.Equal(dec("-30")), "une vente à perte réduit la marge totale")
}
