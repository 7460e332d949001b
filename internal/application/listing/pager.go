// Package listing fournit le composant générique de filtrage et de
// pagination en mémoire utilisé par tous les écrans de liste : plage de
// dates (bornes incluses, chacune optionnelle), recherche plein-texte
// insensible à la casse et aux accents, découpage en pages.
package listing

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configure un Pager à la construction.
type Option[T any] func(*Pager[T])

// WithDate déclare l'extracteur de date utilisé par le filtre de plage.
func WithDate[T any](fn func(T) time.Time) Option[T] {
	return func(p *Pager[T]) { p.dateOf = fn }
}

// WithTextFields déclare les champs couverts par la recherche plein-texte.
func WithTextFields[T any](fns ...func(T) string) Option[T] {
	return func(p *Pager[T]) { p.textOf = fns }
}

// Pager filtre une liste en mémoire et la découpe en pages.
// Toute modification de la liste ou des prédicats ramène l'index de page à 1.
type Pager[T any] struct {
	dateOf   func(T) time.Time
	textOf   []func(T) string
	pageSize int

	items    []T
	from, to *time.Time
	query    string

	page     int
	filtered []T
	stale    bool
}

// NewPager construit un Pager. pageSize ≤ 0 retombe sur 20.
func NewPager[T any](pageSize int, opts ...Option[T]) *Pager[T] {
	if pageSize <= 0 {
		pageSize = 20
	}
	p := &Pager[T]{pageSize: pageSize, page: 1, stale: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetItems remplace la liste de fond et ramène la page à 1.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.reset()
}

// SetQuery fixe la recherche plein-texte et ramène la page à 1.
// Une chaîne vide désactive le filtre.
func (p *Pager[T]) SetQuery(q string) {
	p.query = strings.TrimSpace(q)
	p.reset()
}

// SetDateRange fixe la plage de dates (bornes incluses) et ramène la page
// à 1. Chaque borne peut être nil ; deux bornes nil désactivent le filtre.
func (p *Pager[T]) SetDateRange(from, to *time.Time) {
	p.from, p.to = from, to
	p.reset()
}

// SetPage fixe l'index de page demandé (base 1 ; valeurs < 1 ramenées à 1).
func (p *Pager[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	p.page = n
}

// PageIndex renvoie l'index de page courant (base 1).
func (p *Pager[T]) PageIndex() int { return p.page }

// PageSize renvoie la taille de page.
func (p *Pager[T]) PageSize() int { return p.pageSize }

// Filtered renvoie la liste après application des prédicats, sans découpage.
func (p *Pager[T]) Filtered() []T {
	p.refresh()
	return p.filtered
}

// PageCount renvoie le nombre de pages de la liste filtrée (0 si vide).
func (p *Pager[T]) PageCount() int {
	p.refresh()
	return (len(p.filtered) + p.pageSize - 1) / p.pageSize
}

// Page renvoie la tranche correspondant à la page courante. Jamais plus de
// pageSize éléments ; la dernière page peut être partielle ; un index hors
// limites donne une tranche vide.
func (p *Pager[T]) Page() []T {
	p.refresh()
	start := (p.page - 1) * p.pageSize
	if start >= len(p.filtered) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	return p.filtered[start:end]
}

func (p *Pager[T]) reset() {
	p.page = 1
	p.stale = true
}

func (p *Pager[T]) refresh() {
	if !p.stale {
		return
	}
	p.filtered = p.items[:0:0]
	needle := Fold(p.query)
	for _, it := range p.items {
		if p.matchDate(it) && p.matchText(it, needle) {
			p.filtered = append(p.filtered, it)
		}
	}
	p.stale = false
}

func (p *Pager[T]) matchDate(it T) bool {
	if p.dateOf == nil || (p.from == nil && p.to == nil) {
		return true
	}
	d := p.dateOf(it)
	if p.from != nil && d.Before(*p.from) {
		return false
	}
	if p.to != nil && d.After(*p.to) {
		return false
	}
	return true
}

func (p *Pager[T]) matchText(it T, needle string) bool {
	if needle == "" || len(p.textOf) == 0 {
		return true
	}
	for _, fn := range p.textOf {
		if strings.Contains(Fold(fn(it)), needle) {
			return true
		}
	}
	return false
}

// Fold normalise une chaîne pour la recherche : minuscules et suppression
// des accents (décomposition NFD puis retrait des marques combinantes).
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
