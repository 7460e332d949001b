// Package analytics contient le cas d'usage du tableau de bord financier.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

const dashboardTopClients = 5 // nombre de clients dans le widget du tableau de bord

// DashboardUseCase produit le résumé financier du jour et du mois en cours.
//
// Source de données : AnalyticsRepository (consultations en lecture seule).
// Aucun accès direct aux tables ; tout passe par le repo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetResume construit le DashboardResumeDTO.
//
// Cinq requêtes en parallèle :
//  1. GetVentesPeriode(jour)     → CAJour
//  2. GetVentesPeriode(mois)     → CAMois + MargeMois
//  3. GetAchatsPeriode(mois)     → AchatsMois
//  4. GetEncaissementsPeriode(mois) → EncaissementsMois
//  5. GetTopClients(mois, top 5) → TopClients
func (uc *DashboardUseCase) GetResume(ctx context.Context) (*dto.DashboardResumeDTO, error) {
	now := time.Now()

	// ── Plages de dates ───────────────────────────────────────────────────────
	// Aujourd'hui : 00:00:00.000 – 23:59:59.999
	jourDebut := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	jourFin := jourDebut.Add(24*time.Hour - time.Nanosecond)

	// Mois en cours : le 1er à 00:00 – aujourd'hui à 23:59:59
	moisDebut := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	moisFin := jourFin

	// ── Goroutines pour paralléliser les requêtes DB ──────────────────────────
	type ventesResult struct {
		ca    decimal.Decimal
		marge decimal.Decimal
		err   error
	}
	type montantResult struct {
		montant decimal.Decimal
		err     error
	}
	type topClientsResult struct {
		clients []repository.TopClientResult
		err     error
	}

	jourCh := make(chan ventesResult, 1)
	moisCh := make(chan ventesResult, 1)
	achatsCh := make(chan montantResult, 1)
	encaissementsCh := make(chan montantResult, 1)
	clientsCh := make(chan topClientsResult, 1)

	go func() {
		ca, marge, err := uc.analyticsRepo.GetVentesPeriode(ctx, jourDebut, jourFin)
		jourCh <- ventesResult{ca, marge, err}
	}()
	go func() {
		ca, marge, err := uc.analyticsRepo.GetVentesPeriode(ctx, moisDebut, moisFin)
		moisCh <- ventesResult{ca, marge, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.GetAchatsPeriode(ctx, moisDebut, moisFin)
		achatsCh <- montantResult{total, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.GetEncaissementsPeriode(ctx, moisDebut, moisFin)
		encaissementsCh <- montantResult{total, err}
	}()
	go func() {
		clients, err := uc.analyticsRepo.GetTopClients(ctx, moisDebut, moisFin, dashboardTopClients)
		clientsCh <- topClientsResult{clients, err}
	}()

	jour := <-jourCh
	mois := <-moisCh
	achats := <-achatsCh
	encaissements := <-encaissementsCh
	clients := <-clientsCh

	if jour.err != nil {
		return nil, fmt.Errorf("dashboard: ventes du jour: %w", jour.err)
	}
	if mois.err != nil {
		return nil, fmt.Errorf("dashboard: ventes du mois: %w", mois.err)
	}
	if achats.err != nil {
		return nil, fmt.Errorf("dashboard: achats du mois: %w", achats.err)
	}
	if encaissements.err != nil {
		return nil, fmt.Errorf("dashboard: encaissements du mois: %w", encaissements.err)
	}
	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: top clients: %w", clients.err)
	}

	top := make([]dto.TopClientDTO, 0, len(clients.clients))
	for _, c := range clients.clients {
		top = append(top, dto.TopClientDTO{
			ClientID: c.ClientID,
			Nom:      c.Nom,
			CA:       c.CA.Round(2),
			NbBL:     c.NbBL,
		})
	}

	// ── Construction du DTO ───────────────────────────────────────────────────
	return &dto.DashboardResumeDTO{
		CAJour:            jour.ca.Round(2),
		CAMois:            mois.ca.Round(2),
		MargeMois:         mois.marge.Round(2),
		AchatsMois:        achats.montant.Round(2),
		EncaissementsMois: encaissements.montant.Round(2),
		TopClients:        top,
		Periode:           moisLabel(now),
	}, nil
}

// moisLabel renvoie une étiquette lisible du mois, ex : « Août 2026 ».
func moisLabel(t time.Time) string {
	mois := [...]string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	}
	return fmt.Sprintf("%s %d", mois[t.Month()-1], t.Year())
}
