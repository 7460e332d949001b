package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopClientResult ligne du classement clients par chiffre d'affaires.
type TopClientResult struct {
	ClientID string
	Nom      string
	CA       decimal.Decimal
	NbBL     int
}

// AnalyticsRepository consultations de synthèse en lecture seule pour le
// tableau de bord. Les agrégations lourdes restent en SQL ; les BL/BC
// annulés sont exclus par les requêtes elles-mêmes.
type AnalyticsRepository interface {
	// GetVentesPeriode renvoie (chiffre d'affaires, marge) des BL livrés de
	// la période.
	GetVentesPeriode(ctx context.Context, debut, fin time.Time) (ca, marge decimal.Decimal, err error)
	// GetAchatsPeriode renvoie le total des BC reçus de la période.
	GetAchatsPeriode(ctx context.Context, debut, fin time.Time) (decimal.Decimal, error)
	// GetEncaissementsPeriode renvoie le total des paiements clients de la période.
	GetEncaissementsPeriode(ctx context.Context, debut, fin time.Time) (decimal.Decimal, error)
	// GetTopClients renvoie les meilleurs clients par CA livré sur la période.
	GetTopClients(ctx context.Context, debut, fin time.Time, limit int) ([]TopClientResult, error)
}
