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

var _ repository.ProduitRepository = (*ProduitRepo)(nil)

// ProduitRepo implémentation de ProduitRepository (pool ou tx).
type ProduitRepo struct {
	q Querier
}

// NewProduitRepository construit l'adaptateur.
func NewProduitRepository(q Querier) *ProduitRepo {
	return &ProduitRepo{q: q}
}

// Create persiste un nouveau produit.
func (r *ProduitRepo) Create(p *entity.Produit) error {
	query := `
		INSERT INTO produits (id, reference, nom, categorie, unite_mesure, mesurable, prix_achat, prix_vente, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Reference, p.Nom, p.Categorie, p.UniteMesure, p.Mesurable, p.PrixAchat, p.PrixVente, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produit: %w", err)
	}
	return nil
}

// GetByID renvoie un produit par ID.
func (r *ProduitRepo) GetByID(id string) (*entity.Produit, error) {
	query := `
		SELECT id, reference, nom, categorie, unite_mesure, mesurable, prix_achat, prix_vente, created_at, updated_at
		FROM produits WHERE id = $1`
	var p entity.Produit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Reference, &p.Nom, &p.Categorie, &p.UniteMesure, &p.Mesurable, &p.PrixAchat, &p.PrixVente, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit: %w", err)
	}
	return &p, nil
}

// GetByReference renvoie un produit par code référence.
func (r *ProduitRepo) GetByReference(reference string) (*entity.Produit, error) {
	query := `
		SELECT id, reference, nom, categorie, unite_mesure, mesurable, prix_achat, prix_vente, created_at, updated_at
		FROM produits WHERE reference = $1`
	var p entity.Produit
	err := r.q.QueryRow(context.Background(), query, reference).Scan(
		&p.ID, &p.Reference, &p.Nom, &p.Categorie, &p.UniteMesure, &p.Mesurable, &p.PrixAchat, &p.PrixVente, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit by reference: %w", err)
	}
	return &p, nil
}

// List renvoie tous les produits triés par nom.
func (r *ProduitRepo) List() ([]*entity.Produit, error) {
	query := `
		SELECT id, reference, nom, categorie, unite_mesure, mesurable, prix_achat, prix_vente, created_at, updated_at
		FROM produits ORDER BY nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produit
	for rows.Next() {
		var p entity.Produit
		if err := rows.Scan(&p.ID, &p.Reference, &p.Nom, &p.Categorie, &p.UniteMesure, &p.Mesurable, &p.PrixAchat, &p.PrixVente, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update met à jour un produit. Le prix d'achat catalogue peut changer sans
// effet sur les lignes de BL passées (coût figé à la création de la ligne).
func (r *ProduitRepo) Update(p *entity.Produit) error {
	query := `
		UPDATE produits SET reference = $2, nom = $3, categorie = $4, unite_mesure = $5, mesurable = $6, prix_achat = $7, prix_vente = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Reference, p.Nom, p.Categorie, p.UniteMesure, p.Mesurable, p.PrixAchat, p.PrixVente, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update produit: %w", err)
	}
	return nil
}

// Delete supprime un produit par ID.
func (r *ProduitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produit: %w", err)
	}
	return nil
}
