package dto

import "github.com/shopspring/decimal"

// CreateClientRequest corps de création d'un client.
type CreateClientRequest struct {
	Nom           string          `json:"nom"`
	ICE           string          `json:"ice"`
	Telephone     string          `json:"telephone"`
	Adresse       string          `json:"adresse"`
	Ville         string          `json:"ville"`
	CreditInitial decimal.Decimal `json:"credit_initial"`
	Notes         string          `json:"notes"`
}

// UpdateClientRequest corps de mise à jour d'un client.
type UpdateClientRequest struct {
	Nom           string          `json:"nom"`
	ICE           string          `json:"ice"`
	Telephone     string          `json:"telephone"`
	Adresse       string          `json:"adresse"`
	Ville         string          `json:"ville"`
	CreditInitial decimal.Decimal `json:"credit_initial"`
	Notes         string          `json:"notes"`
}

// ClientResponse représentation d'un client dans les réponses.
type ClientResponse struct {
	ID            string          `json:"id"`
	Nom           string          `json:"nom"`
	ICE           string          `json:"ice,omitempty"`
	Telephone     string          `json:"telephone,omitempty"`
	Adresse       string          `json:"adresse,omitempty"`
	Ville         string          `json:"ville,omitempty"`
	CreditInitial decimal.Decimal `json:"credit_initial"`
	Notes         string          `json:"notes,omitempty"`
}

// ClientListResponse page de clients.
type ClientListResponse struct {
	Items []*ClientResponse `json:"items"`
	Meta  PageMeta          `json:"meta"`
}
