package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Types de chauffeur. Un chauffeur interne est salarié ; un externe est payé
// à la course (TarifCourse, ou FraisTransport du BL s'il est renseigné).
const (
	ChauffeurInterne = "interne"
	ChauffeurExterne = "externe"
)

// Chauffeur représente un conducteur affecté aux livraisons.
type Chauffeur struct {
	ID          string
	Nom         string
	Telephone   string
	Type        string // interne | externe
	Matricule   string // immatriculation du véhicule habituel, ex. 12345-A-6
	TarifCourse decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
