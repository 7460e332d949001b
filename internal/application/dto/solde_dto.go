package dto

import "github.com/shopspring/decimal"

// SoldeResponse cumuls financiers d'un tiers. Dette et Avance sont
// mutuellement exclusives ; l'une des deux est toujours nulle.
// Marge n'est renseignée que pour les clients (BL livrés uniquement).
type SoldeResponse struct {
	TiersType      string           `json:"tiers_type"`
	TiersID        string           `json:"tiers_id"`
	TotalActivite  decimal.Decimal  `json:"total_activite"`
	TotalPaiements decimal.Decimal  `json:"total_paiements"`
	Dette          decimal.Decimal  `json:"dette"`
	Avance         decimal.Decimal  `json:"avance"`
	Marge          *decimal.Decimal `json:"marge,omitempty"`
}
