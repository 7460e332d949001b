package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

var _ repository.PaiementRepository = (*PaiementRepo)(nil)

// PaiementRepo implémentation de PaiementRepository (pool ou tx).
type PaiementRepo struct {
	q Querier
}

// NewPaiementRepository construit l'adaptateur.
func NewPaiementRepository(q Querier) *PaiementRepo {
	return &PaiementRepo{q: q}
}

// Create persiste un paiement.
func (r *PaiementRepo) Create(p *entity.Paiement) error {
	query := `
		INSERT INTO paiements (id, tiers_type, tiers_id, montant, mode, reference, emetteur, notes, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TiersType, p.TiersID, p.Montant, p.Mode, p.Reference, p.Emetteur, p.Notes, p.Date, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paiement: %w", err)
	}
	return nil
}

// GetByID renvoie un paiement par ID.
func (r *PaiementRepo) GetByID(id string) (*entity.Paiement, error) {
	query := `
		SELECT id, tiers_type, tiers_id, montant, mode, reference, emetteur, notes, date, created_at, updated_at
		FROM paiements WHERE id = $1`
	var p entity.Paiement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.TiersType, &p.TiersID, &p.Montant, &p.Mode, &p.Reference, &p.Emetteur, &p.Notes, &p.Date, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paiement: %w", err)
	}
	return &p, nil
}

// List renvoie tous les paiements, plus récents d'abord.
func (r *PaiementRepo) List() ([]*entity.Paiement, error) {
	return r.list(`
		SELECT id, tiers_type, tiers_id, montant, mode, reference, emetteur, notes, date, created_at, updated_at
		FROM paiements ORDER BY date DESC, created_at DESC`)
}

// ListByTiers renvoie les paiements rattachés à un tiers.
func (r *PaiementRepo) ListByTiers(tiersType, tiersID string) ([]*entity.Paiement, error) {
	return r.list(`
		SELECT id, tiers_type, tiers_id, montant, mode, reference, emetteur, notes, date, created_at, updated_at
		FROM paiements WHERE tiers_type = $1 AND tiers_id = $2 ORDER BY date DESC, created_at DESC`, tiersType, tiersID)
}

func (r *PaiementRepo) list(query string, args ...any) ([]*entity.Paiement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list paiements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Paiement
	for rows.Next() {
		var p entity.Paiement
		if err := rows.Scan(&p.ID, &p.TiersType, &p.TiersID, &p.Montant, &p.Mode, &p.Reference, &p.Emetteur, &p.Notes, &p.Date, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan paiement: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update met à jour un paiement (le tiers de rattachement ne change pas).
func (r *PaiementRepo) Update(p *entity.Paiement) error {
	query := `
		UPDATE paiements SET montant = $2, mode = $3, reference = $4, emetteur = $5, notes = $6, date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Montant, p.Mode, p.Reference, p.Emetteur, p.Notes, p.Date, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paiement: %w", err)
	}
	return nil
}

// Delete supprime un paiement par ID.
func (r *PaiementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM paiements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete paiement: %w", err)
	}
	return nil
}
