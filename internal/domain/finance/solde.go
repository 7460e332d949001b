// Package finance contient les services de domaine purs pour les cumuls
// financiers : soldes (dette / avance) et marges. Aucune E/S, aucun effet de
// bord ; les appelants fournissent des montants déjà filtrés (les pièces
// annulées ne doivent jamais arriver ici).
package finance

import "github.com/shopspring/decimal"

// Solde résultat d'un cumul pour un tiers (client, fournisseur ou chauffeur).
// Invariant : Dette et Avance sont ≥ 0 et mutuellement exclusives — l'une des
// deux est toujours nulle, et Dette − Avance = TotalActivite − TotalPaiements.
type Solde struct {
	TotalActivite  decimal.Decimal
	TotalPaiements decimal.Decimal
	Dette          decimal.Decimal
	Avance         decimal.Decimal
}

// Calculer cumule les montants d'activité (BL ou BC non annulés) et les
// paiements d'un tiers. Entrées vides : tout à zéro.
func Calculer(activite, paiements []decimal.Decimal) Solde {
	totalA := sum(activite)
	totalP := sum(paiements)
	return solde(totalA, totalP)
}

// CalculerClient applique la variante client : le crédit initial consenti à
// l'ouverture du compte vient s'ajouter côté paiements, donc
// Dette = max(0, CA − paiements − créditInitial).
func CalculerClient(activite, paiements []decimal.Decimal, creditInitial decimal.Decimal) Solde {
	totalA := sum(activite)
	totalP := sum(paiements)
	s := solde(totalA, totalP.Add(creditInitial))
	// TotalPaiements reste le cumul des règlements réels, sans le crédit.
	s.TotalPaiements = totalP
	return s
}

func solde(totalA, totalP decimal.Decimal) Solde {
	return Solde{
		TotalActivite:  totalA,
		TotalPaiements: totalP,
		Dette:          decimal.Max(decimal.Zero, totalA.Sub(totalP)),
		Avance:         decimal.Max(decimal.Zero, totalP.Sub(totalA)),
	}
}

func sum(montants []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range montants {
		total = total.Add(m)
	}
	return total
}

// LigneMarge montants d'une ligne de BL livré nécessaires au calcul de marge.
type LigneMarge struct {
	PrixUnitaire      decimal.Decimal
	PrixAchatUnitaire decimal.Decimal
	Quantite          decimal.Decimal
}

// Marge somme (prix de vente − coût figé) × quantité sur les lignes
// fournies. L'appelant ne doit passer que des lignes de BL au statut livré.
func Marge(lignes []LigneMarge) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lignes {
		total = total.Add(l.PrixUnitaire.Sub(l.PrixAchatUnitaire).Mul(l.Quantite))
	}
	return total
}
