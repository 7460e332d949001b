package dto

// CreateFournisseurRequest corps de création d'un fournisseur.
type CreateFournisseurRequest struct {
	Nom       string `json:"nom"`
	ICE       string `json:"ice"`
	Telephone string `json:"telephone"`
	Ville     string `json:"ville"`
	Notes     string `json:"notes"`
}

// UpdateFournisseurRequest corps de mise à jour d'un fournisseur.
type UpdateFournisseurRequest struct {
	Nom       string `json:"nom"`
	ICE       string `json:"ice"`
	Telephone string `json:"telephone"`
	Ville     string `json:"ville"`
	Notes     string `json:"notes"`
}

// FournisseurResponse représentation d'un fournisseur dans les réponses.
type FournisseurResponse struct {
	ID        string `json:"id"`
	Nom       string `json:"nom"`
	ICE       string `json:"ice,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Ville     string `json:"ville,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// FournisseurListResponse page de fournisseurs.
type FournisseurListResponse struct {
	Items []*FournisseurResponse `json:"items"`
	Meta  PageMeta               `json:"meta"`
}
