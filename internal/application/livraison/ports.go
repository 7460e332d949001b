package livraison

import (
	"context"

	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

// TxRunner exécute un callback avec un repo de bons de livraison lié à une
// transaction : en-tête, lignes et numérotation sont validés d'un bloc.
type TxRunner interface {
	RunLivraison(ctx context.Context, fn func(blRepo repository.BonLivraisonRepository) error) error
}
