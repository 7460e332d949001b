package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultations de synthèse en lecture seule pour le tableau
// de bord. Les agrégations restent en SQL ; les pièces annulées sont exclues
// par les requêtes elles-mêmes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construit l'adaptateur d'analytique.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetVentesPeriode renvoie le chiffre d'affaires et la marge des BL livrés
// de la période. La marge s'appuie sur le coût figé ligne à ligne
// (prix_achat_unitaire), pas sur le prix d'achat catalogue courant.
// COALESCE renvoie zéro sur une période sans ventes.
func (r *AnalyticsRepo) GetVentesPeriode(
	ctx context.Context,
	debut, fin time.Time,
) (ca, marge decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(l.montant_ligne),                                          0) AS ca,
	    COALESCE(SUM((l.prix_unitaire - l.prix_achat_unitaire) * l.quantite),   0) AS marge
	FROM bons_livraison bl
	JOIN lignes_livraison l ON l.bon_livraison_id = bl.id
	WHERE bl.date BETWEEN $1 AND $2
	  AND bl.statut = 'livree'`

	err = r.pool.QueryRow(ctx, query, debut, fin).Scan(&ca, &marge)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetVentesPeriode: %w", err)
	}
	return ca, marge, nil
}

// GetAchatsPeriode renvoie le total des bons de commande reçus de la période.
func (r *AnalyticsRepo) GetAchatsPeriode(ctx context.Context, debut, fin time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(montant_total), 0)
	FROM bons_commande
	WHERE date BETWEEN $1 AND $2
	  AND statut = 'recue'`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, debut, fin).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetAchatsPeriode: %w", err)
	}
	return total, nil
}

// GetEncaissementsPeriode renvoie le total des paiements clients de la période.
func (r *AnalyticsRepo) GetEncaissementsPeriode(ctx context.Context, debut, fin time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(montant), 0)
	FROM paiements
	WHERE date BETWEEN $1 AND $2
	  AND tiers_type = 'client'`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, debut, fin).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetEncaissementsPeriode: %w", err)
	}
	return total, nil
}

// GetTopClients renvoie les `limit` clients au plus fort CA livré sur la période.
func (r *AnalyticsRepo) GetTopClients(
	ctx context.Context,
	debut, fin time.Time,
	limit int,
) ([]repository.TopClientResult, error) {
	const query = `
	SELECT
	    c.id                          AS client_id,
	    c.nom,
	    SUM(bl.montant_total)         AS ca,
	    COUNT(bl.id)::INT             AS nb_bl
	FROM bons_livraison bl
	JOIN clients c ON c.id = bl.client_id
	WHERE bl.date BETWEEN $1 AND $2
	  AND bl.statut = 'livree'
	GROUP BY c.id, c.nom
	ORDER BY ca DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, debut, fin, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopClients: %w", err)
	}
	defer rows.Close()

	var results []repository.TopClientResult
	for rows.Next() {
		var row repository.TopClientResult
		if err := rows.Scan(&row.ClientID, &row.Nom, &row.CA, &row.NbBL); err != nil {
			return nil, fmt.Errorf("analytics.GetTopClients scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopClients rows: %w", err)
	}
	if results == nil {
		results = []repository.TopClientResult{}
	}
	return results, nil
}
