package dto

import "time"

// ErrorResponse corps d'erreur HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListeParams paramètres communs des écrans de liste : recherche
// plein-texte, plage de dates (bornes incluses, optionnelles) et pagination.
type ListeParams struct {
	Query     string
	DateDebut *time.Time
	DateFin   *time.Time
	Page      int
	PageSize  int
}

// Normaliser applique les valeurs par défaut de pagination.
func (p *ListeParams) Normaliser() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// PageMeta métadonnées de pagination renvoyées avec chaque liste.
type PageMeta struct {
	Page      int `json:"page"`
	PageSize  int `json:"page_size"`
	PageCount int `json:"page_count"`
	Total     int `json:"total"`
}
