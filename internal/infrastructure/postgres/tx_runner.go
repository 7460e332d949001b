package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasnegoce/negoce-api/internal/application/commande"
	"github.com/atlasnegoce/negoce-api/internal/application/livraison"
	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

// Ensure TxRunner implements commande.TxRunner and livraison.TxRunner.
var _ commande.TxRunner = (*TxRunner)(nil)
var _ livraison.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCommande ouvre une transaction, exécute fn avec un repo de bons de
// commande lié à la tx et fait Commit ou Rollback. La numérotation et
// l'insertion en-tête + lignes sont ainsi atomiques.
func (r *TxRunner) RunCommande(ctx context.Context, fn func(bcRepo repository.BonCommandeRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBonCommandeRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLivraison même mécanique pour les bons de livraison.
func (r *TxRunner) RunLivraison(ctx context.Context, fn func(blRepo repository.BonLivraisonRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBonLivraisonRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
