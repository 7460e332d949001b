package commande

import (
	"context"

	"github.com/atlasnegoce/negoce-api/internal/domain/repository"
)

// TxRunner exécute un callback avec un repo de bons de commande lié à une
// transaction : en-tête, lignes et numérotation sont validés d'un bloc.
type TxRunner interface {
	RunCommande(ctx context.Context, fn func(bcRepo repository.BonCommandeRepository) error) error
}
