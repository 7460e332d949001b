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

var _ repository.FournisseurRepository = (*FournisseurRepo)(nil)

// FournisseurRepo implémentation de FournisseurRepository (pool ou tx).
type FournisseurRepo struct {
	q Querier
}

// NewFournisseurRepository construit l'adaptateur.
func NewFournisseurRepository(q Querier) *FournisseurRepo {
	return &FournisseurRepo{q: q}
}

// Create persiste un nouveau fournisseur.
func (r *FournisseurRepo) Create(f *entity.Fournisseur) error {
	query := `
		INSERT INTO fournisseurs (id, nom, ice, telephone, ville, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nom, nullIfEmpty(f.ICE), f.Telephone, f.Ville, f.Notes, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fournisseur: %w", err)
	}
	return nil
}

// GetByID renvoie un fournisseur par ID.
func (r *FournisseurRepo) GetByID(id string) (*entity.Fournisseur, error) {
	query := `
		SELECT id, nom, COALESCE(ice, ''), telephone, ville, notes, created_at, updated_at
		FROM fournisseurs WHERE id = $1`
	var f entity.Fournisseur
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Nom, &f.ICE, &f.Telephone, &f.Ville, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fournisseur: %w", err)
	}
	return &f, nil
}

// GetByICE renvoie un fournisseur par identifiant ICE.
func (r *FournisseurRepo) GetByICE(ice string) (*entity.Fournisseur, error) {
	query := `
		SELECT id, nom, COALESCE(ice, ''), telephone, ville, notes, created_at, updated_at
		FROM fournisseurs WHERE ice = $1`
	var f entity.Fournisseur
	err := r.q.QueryRow(context.Background(), query, ice).Scan(
		&f.ID, &f.Nom, &f.ICE, &f.Telephone, &f.Ville, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fournisseur by ice: %w", err)
	}
	return &f, nil
}

// List renvoie tous les fournisseurs triés par nom.
func (r *FournisseurRepo) List() ([]*entity.Fournisseur, error) {
	query := `
		SELECT id, nom, COALESCE(ice, ''), telephone, ville, notes, created_at, updated_at
		FROM fournisseurs ORDER BY nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list fournisseurs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fournisseur
	for rows.Next() {
		var f entity.Fournisseur
		if err := rows.Scan(&f.ID, &f.Nom, &f.ICE, &f.Telephone, &f.Ville, &f.Notes, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fournisseur: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update met à jour un fournisseur.
func (r *FournisseurRepo) Update(f *entity.Fournisseur) error {
	query := `
		UPDATE fournisseurs SET nom = $2, ice = $3, telephone = $4, ville = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nom, nullIfEmpty(f.ICE), f.Telephone, f.Ville, f.Notes, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update fournisseur: %w", err)
	}
	return nil
}

// Delete supprime un fournisseur par ID.
func (r *FournisseurRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fournisseurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fournisseur: %w", err)
	}
	return nil
}
