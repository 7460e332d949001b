package dto

import "github.com/shopspring/decimal"

// CreateChauffeurRequest corps de création d'un chauffeur.
type CreateChauffeurRequest struct {
	Nom         string          `json:"nom"`
	Telephone   string          `json:"telephone"`
	Type        string          `json:"type"` // interne | externe
	Matricule   string          `json:"matricule"`
	TarifCourse decimal.Decimal `json:"tarif_course"`
	Notes       string          `json:"notes"`
}

// UpdateChauffeurRequest corps de mise à jour d'un chauffeur.
type UpdateChauffeurRequest struct {
	Nom         string          `json:"nom"`
	Telephone   string          `json:"telephone"`
	Type        string          `json:"type"`
	Matricule   string          `json:"matricule"`
	TarifCourse decimal.Decimal `json:"tarif_course"`
	Notes       string          `json:"notes"`
}

// ChauffeurResponse représentation d'un chauffeur dans les réponses.
type ChauffeurResponse struct {
	ID          string          `json:"id"`
	Nom         string          `json:"nom"`
	Telephone   string          `json:"telephone,omitempty"`
	Type        string          `json:"type"`
	Matricule   string          `json:"matricule,omitempty"`
	TarifCourse decimal.Decimal `json:"tarif_course"`
	Notes       string          `json:"notes,omitempty"`
}

// ChauffeurListResponse page de chauffeurs.
type ChauffeurListResponse struct {
	Items []*ChauffeurResponse `json:"items"`
	Meta  PageMeta             `json:"meta"`
}
