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

var _ repository.BonCommandeRepository = (*BonCommandeRepo)(nil)

// BonCommandeRepo implémentation de BonCommandeRepository (pool ou tx).
// Create/CreateLigne/NextNumero s'emploient dans une transaction (TxRunner)
// pour garantir l'atomicité en-tête + lignes + numérotation.
type BonCommandeRepo struct {
	q Querier
}

// NewBonCommandeRepository construit l'adaptateur.
func NewBonCommandeRepository(q Querier) *BonCommandeRepo {
	return &BonCommandeRepo{q: q}
}

// Create persiste l'en-tête d'un bon de commande.
func (r *BonCommandeRepo) Create(bc *entity.BonCommande) error {
	query := `
		INSERT INTO bons_commande (id, numero, fournisseur_id, date, statut, montant_total, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		bc.ID, bc.Numero, bc.FournisseurID, bc.Date, bc.Statut, bc.MontantTotal, bc.Notes, bc.CreatedAt, bc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bon de commande: %w", err)
	}
	return nil
}

// CreateLigne persiste une ligne de bon de commande.
func (r *BonCommandeRepo) CreateLigne(l *entity.LigneCommande) error {
	query := `
		INSERT INTO lignes_commande (id, bon_commande_id, produit_id, prix_unitaire, quantite, nb_pieces, montant_ligne)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.BonCommandeID, l.ProduitID, l.PrixUnitaire, l.Quantite, l.NbPieces, l.MontantLigne,
	)
	if err != nil {
		return fmt.Errorf("insert ligne de commande: %w", err)
	}
	return nil
}

// GetByID renvoie l'en-tête d'un bon de commande.
func (r *BonCommandeRepo) GetByID(id string) (*entity.BonCommande, error) {
	query := `
		SELECT id, numero, fournisseur_id, date, statut, montant_total, notes, created_at, updated_at
		FROM bons_commande WHERE id = $1`
	var bc entity.BonCommande
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&bc.ID, &bc.Numero, &bc.FournisseurID, &bc.Date, &bc.Statut, &bc.MontantTotal, &bc.Notes, &bc.CreatedAt, &bc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bon de commande: %w", err)
	}
	return &bc, nil
}

// GetLignes renvoie les lignes d'un bon de commande.
func (r *BonCommandeRepo) GetLignes(bcID string) ([]entity.LigneCommande, error) {
	query := `
		SELECT id, bon_commande_id, produit_id, prix_unitaire, quantite, nb_pieces, montant_ligne
		FROM lignes_commande WHERE bon_commande_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, bcID)
	if err != nil {
		return nil, fmt.Errorf("list lignes de commande: %w", err)
	}
	defer rows.Close()
	var lignes []entity.LigneCommande
	for rows.Next() {
		var l entity.LigneCommande
		if err := rows.Scan(&l.ID, &l.BonCommandeID, &l.ProduitID, &l.PrixUnitaire, &l.Quantite, &l.NbPieces, &l.MontantLigne); err != nil {
			return nil, fmt.Errorf("scan ligne de commande: %w", err)
		}
		lignes = append(lignes, l)
	}
	return lignes, rows.Err()
}

// List renvoie tous les bons de commande, plus récents d'abord.
func (r *BonCommandeRepo) List() ([]*entity.BonCommande, error) {
	return r.list(`
		SELECT id, numero, fournisseur_id, date, statut, montant_total, notes, created_at, updated_at
		FROM bons_commande ORDER BY date DESC, numero DESC`)
}

// ListByFournisseur renvoie les bons de commande d'un fournisseur.
func (r *BonCommandeRepo) ListByFournisseur(fournisseurID string) ([]*entity.BonCommande, error) {
	return r.list(`
		SELECT id, numero, fournisseur_id, date, statut, montant_total, notes, created_at, updated_at
		FROM bons_commande WHERE fournisseur_id = $1 ORDER BY date DESC, numero DESC`, fournisseurID)
}

func (r *BonCommandeRepo) list(query string, args ...any) ([]*entity.BonCommande, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bons de commande: %w", err)
	}
	defer rows.Close()
	var list []*entity.BonCommande
	for rows.Next() {
		var bc entity.BonCommande
		if err := rows.Scan(&bc.ID, &bc.Numero, &bc.FournisseurID, &bc.Date, &bc.Statut, &bc.MontantTotal, &bc.Notes, &bc.CreatedAt, &bc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bon de commande: %w", err)
		}
		list = append(list, &bc)
	}
	return list, rows.Err()
}

// UpdateStatut change le statut d'un bon de commande.
func (r *BonCommandeRepo) UpdateStatut(id, statut string) error {
	query := `UPDATE bons_commande SET statut = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, statut)
	if err != nil {
		return fmt.Errorf("update statut bon de commande: %w", err)
	}
	return nil
}

// Delete supprime un bon de commande et ses lignes.
func (r *BonCommandeRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM lignes_commande WHERE bon_commande_id = $1`, id); err != nil {
		return fmt.Errorf("delete lignes de commande: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM bons_commande WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete bon de commande: %w", err)
	}
	return nil
}

// NextNumero renvoie le prochain numéro BC-YYYY-NNNN pour l'année donnée.
// À appeler dans la transaction qui insère l'en-tête : la contrainte unique
// sur numero couvre la course entre deux créations simultanées.
func (r *BonCommandeRepo) NextNumero(annee int) (string, error) {
	// split_part plutôt qu'un suffixe de longueur fixe : la séquence reste
	// suivie au-delà de 9999 pièces sur une année.
	const query = `
		SELECT COALESCE(MAX(CAST(split_part(numero, '-', 3) AS INTEGER)), 0) + 1
		FROM bons_commande
		WHERE numero LIKE $1`
	var seq int
	prefix := fmt.Sprintf("BC-%04d-%%", annee)
	if err := r.q.QueryRow(context.Background(), query, prefix).Scan(&seq); err != nil {
		return "", fmt.Errorf("next numero bon de commande: %w", err)
	}
	return fmt.Sprintf("BC-%04d-%04d", annee, seq), nil
}
