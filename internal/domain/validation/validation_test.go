package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlasnegoce/negoce-api/internal/domain/validation"
)

func TestICE(t *testing.T) {
	assert.True(t, validation.ICE("001528996000054"), "un ICE de 15 chiffres est valide")
	assert.True(t, validation.ICE(""), "champ optionnel : vide accepté")
	assert.False(t, validation.ICE("12345"), "trop court")
	assert.False(t, validation.ICE("00152899600005X"), "lettres interdites")
	assert.False(t, validation.ICE("0015289960000541"), "16 chiffres : trop long")
}

func TestTelephone(t *testing.T) {
	assert.True(t, validation.Telephone("0661234567"), "mobile 06 valide")
	assert.True(t, validation.Telephone("0522456789"), "fixe 05 valide")
	assert.True(t, validation.Telephone("0700112233"), "mobile 07 valide")
	assert.True(t, validation.Telephone(""), "champ optionnel : vide accepté")
	assert.False(t, validation.Telephone("0812345678"), "préfixe 08 invalide")
	assert.False(t, validation.Telephone("06612345"), "trop court")
	assert.False(t, validation.Telephone("+212661234567"), "format international non accepté")
}

func TestMatricule(t *testing.T) {
	assert.True(t, validation.Matricule("12345-A-6"), "plaque standard valide")
	assert.True(t, validation.Matricule("7-b-40"), "série courte et lettre minuscule acceptées")
	assert.False(t, validation.Matricule("12345A6"), "tirets obligatoires")
	assert.False(t, validation.Matricule("1234567-A-6"), "numéro trop long")
}

func TestNumeroPiece(t *testing.T) {
	assert.True(t, validation.NumeroPiece("BL-2026-0042"))
	assert.True(t, validation.NumeroPiece("BC-2025-1307"))
	assert.False(t, validation.NumeroPiece("FA-2026-0001"), "seuls BL et BC sont des pièces")
	assert.False(t, validation.NumeroPiece("BL-26-0042"), "année sur 4 chiffres")
	assert.False(t, validation.NumeroPiece("BL-2026-42"), "séquence sur 4 chiffres")
}
