// Package validation regroupe les expressions régulières de contrôle des
// saisies (identifiants marocains, téléphone, immatriculation, numéros de
// pièces).
package validation

import "regexp"

var (
	// reICE : Identifiant Commun de l'Entreprise, 15 chiffres.
	reICE = regexp.MustCompile(`^\d{15}$`)

	// reTelephone : numéro marocain à 10 chiffres, fixe ou mobile (05/06/07).
	reTelephone = regexp.MustCompile(`^0[5-7]\d{8}$`)

	// reMatricule : plaque marocaine, ex. 12345-A-6.
	reMatricule = regexp.MustCompile(`^\d{1,6}-[A-Za-z]-\d{1,2}$`)

	// reNumeroPiece : numéro de BL ou de BC, ex. BL-2026-0042.
	reNumeroPiece = regexp.MustCompile(`^(BL|BC)-\d{4}-\d{4}$`)
)

// ICE valide un identifiant ICE. La chaîne vide est acceptée (champ optionnel).
func ICE(s string) bool {
	return s == "" || reICE.MatchString(s)
}

// Telephone valide un numéro de téléphone marocain. Chaîne vide acceptée.
func Telephone(s string) bool {
	return s == "" || reTelephone.MatchString(s)
}

// Matricule valide une immatriculation de véhicule. Chaîne vide acceptée.
func Matricule(s string) bool {
	return s == "" || reMatricule.MatchString(s)
}

// NumeroPiece valide un numéro de bon de livraison ou de commande.
func NumeroPiece(s string) bool {
	return reNumeroPiece.MatchString(s)
}
