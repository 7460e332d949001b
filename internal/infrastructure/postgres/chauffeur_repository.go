package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atlasnegoce/negoce-api/internal/domain"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

var _ repository.ChauffeurRepository = (*ChauffeurRepo)(nil)

// ChauffeurRepo implémentation de ChauffeurRepository (pool ou tx).
type ChauffeurRepo struct {
	q Querier
}

// NewChauffeurRepository construit l'adaptateur.
func NewChauffeurRepository(q Querier) *ChauffeurRepo {
	return &ChauffeurRepo{q: q}
}

// Create persiste un nouveau chauffeur.
func (r *ChauffeurRepo) Create(ch *entity.Chauffeur) error {
	query := `
		INSERT INTO chauffeurs (id, nom, telephone, type, matricule, tarif_course, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ch.ID, ch.Nom, ch.Telephone, ch.Type, ch.Matricule, ch.TarifCourse, ch.Notes, ch.CreatedAt, ch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chauffeur: %w", err)
	}
	return nil
}

// GetByID renvoie un chauffeur par ID.
func (r *ChauffeurRepo) GetByID(id string) (*entity.Chauffeur, error) {
	query := `
		SELECT id, nom, telephone, type, matricule, tarif_course, notes, created_at, updated_at
		FROM chauffeurs WHERE id = $1`
	var ch entity.Chauffeur
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ch.ID, &ch.Nom, &ch.Telephone, &ch.Type, &ch.Matricule, &ch.TarifCourse, &ch.Notes, &ch.CreatedAt, &ch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chauffeur: %w", err)
	}
	return &ch, nil
}

// List renvoie tous les chauffeurs triés par nom.
func (r *ChauffeurRepo) List() ([]*entity.Chauffeur, error) {
	query := `
		SELECT id, nom, telephone, type, matricule, tarif_course, notes, created_at, updated_at
		FROM chauffeurs ORDER BY nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list chauffeurs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chauffeur
	for rows.Next() {
		var ch entity.Chauffeur
		if err := rows.Scan(&ch.ID, &ch.Nom, &ch.Telephone, &ch.Type, &ch.Matricule, &ch.TarifCourse, &ch.Notes, &ch.CreatedAt, &ch.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chauffeur: %w", err)
		}
		list = append(list, &ch)
	}
	return list, rows.Err()
}

// Update met à jour un chauffeur.
func (r *ChauffeurRepo) Update(ch *entity.Chauffeur) error {
	query := `
		UPDATE chauffeurs SET nom = $2, telephone = $3, type = $4, matricule = $5, tarif_course = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ch.ID, ch.Nom, ch.Telephone, ch.Type, ch.Matricule, ch.TarifCourse, ch.Notes, ch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update chauffeur: %w", err)
	}
	return nil
}

// Delete supprime un chauffeur par ID.
func (r *ChauffeurRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM chauffeurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chauffeur: %w", err)
	}
	return nil
}
