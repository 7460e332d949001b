package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier renvoie une séquence fixe pour NextNumero.
type fakeQuerier struct {
	seq int
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return fakeRow{seq: q.seq}
}

type fakeRow struct{ seq int }

func (r fakeRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.seq
	return nil
}

// La numérotation garde le fil au-delà de 9999 pièces sur une année : la
// séquence est extraite du troisième segment, pas d'un suffixe de longueur
// fixe, et le formatage ne tronque pas.
func TestNextNumero_AuDelaDeQuatreChiffres(t *testing.T) {
	bl := NewBonLivraisonRepository(&fakeQuerier{seq: 10000})
	numero, err := bl.NextNumero(2026)
	require.NoError(t, err)
	assert.Equal(t, "BL-2026-10000", numero)

	bc := NewBonCommandeRepository(&fakeQuerier{seq: 123})
	numero, err = bc.NextNumero(2026)
	require.NoError(t, err)
	assert.Equal(t, "BC-2026-0123", numero)
}
