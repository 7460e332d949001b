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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implémentation de ClientRepository (utilisable avec pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nouveau client.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, nom, ice, telephone, adresse, ville, credit_initial, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Nom, nullIfEmpty(client.ICE), client.Telephone, client.Adresse, client.Ville,
		client.CreditInitial, client.Notes, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID renvoie un client par ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, nom, COALESCE(ice, ''), telephone, adresse, ville, credit_initial, notes, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nom, &c.ICE, &c.Telephone, &c.Adresse, &c.Ville, &c.CreditInitial, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetByICE renvoie un client par identifiant ICE.
func (r *ClientRepo) GetByICE(ice string) (*entity.Client, error) {
	query := `
		SELECT id, nom, COALESCE(ice, ''), telephone, adresse, ville, credit_initial, notes, created_at, updated_at
		FROM clients WHERE ice = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, ice).Scan(
		&c.ID, &c.Nom, &c.ICE, &c.Telephone, &c.Adresse, &c.Ville, &c.CreditInitial, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by ice: %w", err)
	}
	return &c, nil
}

// List renvoie tous les clients triés par nom.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `
		SELECT id, nom, COALESCE(ice, ''), telephone, adresse, ville, credit_initial, notes, created_at, updated_at
		FROM clients ORDER BY nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Nom, &c.ICE, &c.Telephone, &c.Adresse, &c.Ville, &c.CreditInitial, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update met à jour un client.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET nom = $2, ice = $3, telephone = $4, adresse = $5, ville = $6, credit_initial = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Nom, nullIfEmpty(client.ICE), client.Telephone, client.Adresse, client.Ville,
		client.CreditInitial, client.Notes, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete supprime un client par ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
