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

var _ repository.BonLivraisonRepository = (*BonLivraisonRepo)(nil)

// BonLivraisonRepo implémentation de BonLivraisonRepository (pool ou tx).
type BonLivraisonRepo struct {
	q Querier
}

// NewBonLivraisonRepository construit l'adaptateur.
func NewBonLivraisonRepository(q Querier) *BonLivraisonRepo {
	return &BonLivraisonRepo{q: q}
}

// Create persiste l'en-tête d'un bon de livraison.
func (r *BonLivraisonRepo) Create(bl *entity.BonLivraison) error {
	query := `
		INSERT INTO bons_livraison (id, numero, client_id, chauffeur_id, date, statut, montant_total, frais_transport, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		bl.ID, bl.Numero, bl.ClientID, nullIfEmpty(bl.ChauffeurID), bl.Date, bl.Statut,
		bl.MontantTotal, bl.FraisTransport, bl.Notes, bl.CreatedAt, bl.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bon de livraison: %w", err)
	}
	return nil
}

// CreateLigne persiste une ligne de bon de livraison (coût unitaire figé).
func (r *BonLivraisonRepo) CreateLigne(l *entity.LigneLivraison) error {
	query := `
		INSERT INTO lignes_livraison (id, bon_livraison_id, produit_id, prix_unitaire, prix_achat_unitaire, quantite, nb_pieces, montant_ligne)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.BonLivraisonID, l.ProduitID, l.PrixUnitaire, l.PrixAchatUnitaire, l.Quantite, l.NbPieces, l.MontantLigne,
	)
	if err != nil {
		return fmt.Errorf("insert ligne de livraison: %w", err)
	}
	return nil
}

// GetByID renvoie l'en-tête d'un bon de livraison.
func (r *BonLivraisonRepo) GetByID(id string) (*entity.BonLivraison, error) {
	query := `
		SELECT id, numero, client_id, COALESCE(chauffeur_id, ''), date, statut, montant_total, frais_transport, notes, created_at, updated_at
		FROM bons_livraison WHERE id = $1`
	var bl entity.BonLivraison
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&bl.ID, &bl.Numero, &bl.ClientID, &bl.ChauffeurID, &bl.Date, &bl.Statut,
		&bl.MontantTotal, &bl.FraisTransport, &bl.Notes, &bl.CreatedAt, &bl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bon de livraison: %w", err)
	}
	return &bl, nil
}

// GetLignes renvoie les lignes d'un bon de livraison.
func (r *BonLivraisonRepo) GetLignes(blID string) ([]entity.LigneLivraison, error) {
	query := `
		SELECT id, bon_livraison_id, produit_id, prix_unitaire, prix_achat_unitaire, quantite, nb_pieces, montant_ligne
		FROM lignes_livraison WHERE bon_livraison_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, blID)
	if err != nil {
		return nil, fmt.Errorf("list lignes de livraison: %w", err)
	}
	defer rows.Close()
	return scanLignesLivraison(rows)
}

// List renvoie tous les bons de livraison, plus récents d'abord.
func (r *BonLivraisonRepo) List() ([]*entity.BonLivraison, error) {
	return r.list(`
		SELECT id, numero, client_id, COALESCE(chauffeur_id, ''), date, statut, montant_total, frais_transport, notes, created_at, updated_at
		FROM bons_livraison ORDER BY date DESC, numero DESC`)
}

// ListByClient renvoie les bons de livraison d'un client.
func (r *BonLivraisonRepo) ListByClient(clientID string) ([]*entity.BonLivraison, error) {
	return r.list(`
		SELECT id, numero, client_id, COALESCE(chauffeur_id, ''), date, statut, montant_total, frais_transport, notes, created_at, updated_at
		FROM bons_livraison WHERE client_id = $1 ORDER BY date DESC, numero DESC`, clientID)
}

// ListByChauffeur renvoie les bons de livraison affectés à un chauffeur.
func (r *BonLivraisonRepo) ListByChauffeur(chauffeurID string) ([]*entity.BonLivraison, error) {
	return r.list(`
		SELECT id, numero, client_id, COALESCE(chauffeur_id, ''), date, statut, montant_total, frais_transport, notes, created_at, updated_at
		FROM bons_livraison WHERE chauffeur_id = $1 ORDER BY date DESC, numero DESC`, chauffeurID)
}

func (r *BonLivraisonRepo) list(query string, args ...any) ([]*entity.BonLivraison, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bons de livraison: %w", err)
	}
	defer rows.Close()
	var list []*entity.BonLivraison
	for rows.Next() {
		var bl entity.BonLivraison
		if err := rows.Scan(&bl.ID, &bl.Numero, &bl.ClientID, &bl.ChauffeurID, &bl.Date, &bl.Statut,
			&bl.MontantTotal, &bl.FraisTransport, &bl.Notes, &bl.CreatedAt, &bl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bon de livraison: %w", err)
		}
		list = append(list, &bl)
	}
	return list, rows.Err()
}

// ListLignesLivreesByClient renvoie les lignes des BL livrés d'un client,
// seules lignes qui entrent dans le calcul de marge.
func (r *BonLivraisonRepo) ListLignesLivreesByClient(clientID string) ([]entity.LigneLivraison, error) {
	query := `
		SELECT l.id, l.bon_livraison_id, l.produit_id, l.prix_unitaire, l.prix_achat_unitaire, l.quantite, l.nb_pieces, l.montant_ligne
		FROM lignes_livraison l
		JOIN bons_livraison bl ON bl.id = l.bon_livraison_id
		WHERE bl.client_id = $1 AND bl.statut = 'livree'
		ORDER BY l.id`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list lignes livrées: %w", err)
	}
	defer rows.Close()
	return scanLignesLivraison(rows)
}

func scanLignesLivraison(rows pgx.Rows) ([]entity.LigneLivraison, error) {
	var lignes []entity.LigneLivraison
	for rows.Next() {
		var l entity.LigneLivraison
		if err := rows.Scan(&l.ID, &l.BonLivraisonID, &l.ProduitID, &l.PrixUnitaire, &l.PrixAchatUnitaire, &l.Quantite, &l.NbPieces, &l.MontantLigne); err != nil {
			return nil, fmt.Errorf("scan ligne de livraison: %w", err)
		}
		lignes = append(lignes, l)
	}
	return lignes, rows.Err()
}

// UpdateStatut change le statut d'un bon de livraison.
func (r *BonLivraisonRepo) UpdateStatut(id, statut string) error {
	query := `UPDATE bons_livraison SET statut = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, statut)
	if err != nil {
		return fmt.Errorf("update statut bon de livraison: %w", err)
	}
	return nil
}

// Delete supprime un bon de livraison et ses lignes.
func (r *BonLivraisonRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM lignes_livraison WHERE bon_livraison_id = $1`, id); err != nil {
		return fmt.Errorf("delete lignes de livraison: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM bons_livraison WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete bon de livraison: %w", err)
	}
	return nil
}

// NextNumero renvoie le prochain numéro BL-YYYY-NNNN pour l'année donnée.
// À appeler dans la transaction qui insère l'en-tête.
func (r *BonLivraisonRepo) NextNumero(annee int) (string, error) {
	// split_part plutôt qu'un suffixe de longueur fixe : la séquence reste
	// suivie au-delà de 9999 pièces sur une année.
	const query = `
		SELECT COALESCE(MAX(CAST(split_part(numero, '-', 3) AS INTEGER)), 0) + 1
		FROM bons_livraison
		WHERE numero LIKE $1`
	var seq int
	prefix := fmt.Sprintf("BL-%04d-%%", annee)
	if err := r.q.QueryRow(context.Background(), query, prefix).Scan(&seq); err != nil {
		return "", fmt.Errorf("next numero bon de livraison: %w", err)
	}
	return fmt.Sprintf("BL-%04d-%04d", annee, seq), nil
}
