package entity

import "time"

// Fournisseur représente un fournisseur (carrière, grossiste, transporteur).
type Fournisseur struct {
	ID        string
	Nom       string
	ICE       string
	Telephone string
	Ville     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
