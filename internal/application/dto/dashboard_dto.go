package dto

import "github.com/shopspring/decimal"

// TopClientDTO ligne du widget « meilleurs clients » du tableau de bord.
type TopClientDTO struct {
	ClientID string          `json:"client_id"`
	Nom      string          `json:"nom"`
	CA       decimal.Decimal `json:"ca"`
	NbBL     int             `json:"nb_bl"`
}

// DashboardResumeDTO synthèse financière du jour et du mois en cours.
type DashboardResumeDTO struct {
	CAJour            decimal.Decimal `json:"ca_jour"`
	CAMois            decimal.Decimal `json:"ca_mois"`
	MargeMois         decimal.Decimal `json:"marge_mois"`
	AchatsMois        decimal.Decimal `json:"achats_mois"`
	EncaissementsMois decimal.Decimal `json:"encaissements_mois"`
	TopClients        []TopClientDTO  `json:"top_clients"`
	Periode           string          `json:"periode"` // ex. « Août 2026 »
}
