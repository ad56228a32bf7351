package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SelectionKind string

const (
	SelectionSingle   SelectionKind = "single"
	SelectionMultiple SelectionKind = "multiple"
)

func (k SelectionKind) Valid() bool {
	return k == SelectionSingle || k == SelectionMultiple
}

type CustomizationChoice struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CustomizationGroup struct {
	Name    string                `json:"groupName"`
	Kind    SelectionKind         `json:"type"`
	Choices []CustomizationChoice `json:"choices"`
}

// Choice looks up a choice by name in declared order.
func (g CustomizationGroup) Choice(name string) (CustomizationChoice, bool) {
	for _, c := range g.Choices {
		if c.Name == name {
			return c, true
		}
	}

	return CustomizationChoice{}, false
}

func (g CustomizationGroup) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: group name is empty", ErrInvalidProduct)
	}
	if !g.Kind.Valid() {
		return fmt.Errorf("%w: group[%s] has unknown type[%s]", ErrInvalidProduct, g.Name, g.Kind)
	}
	if len(g.Choices) == 0 {
		return fmt.Errorf("%w: group[%s] has no choices", ErrInvalidProduct, g.Name)
	}

	seen := make(map[string]struct{}, len(g.Choices))
	for _, c := range g.Choices {
		if c.Name == "" {
			return fmt.Errorf("%w: group[%s] has a choice with empty name", ErrInvalidProduct, g.Name)
		}
		if c.Price.IsNegative() {
			return fmt.Errorf("%w: choice[%s/%s] has negative price", ErrInvalidProduct, g.Name, c.Name)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%w: group[%s] has duplicate choice[%s]", ErrInvalidProduct, g.Name, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	return nil
}

type Product struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	SubCategory string
	Image       string

	Price     Money
	OnSale    bool
	SalePrice Money

	CustomizationGroups []CustomizationGroup

	CreatedAt time.Time
}

// Group returns the customization group with the given name.
func (p Product) Group(name string) (CustomizationGroup, bool) {
	for _, g := range p.CustomizationGroups {
		if g.Name == name {
			return g, true
		}
	}

	return CustomizationGroup{}, false
}

// HasValidSale reports whether the sale price may be charged:
// on sale, same currency and 0 < SalePrice < Price.
func (p Product) HasValidSale() bool {
	if !p.OnSale {
		return false
	}
	if p.SalePrice.Currency != p.Price.Currency {
		return false
	}

	return p.SalePrice.Amount.IsPositive() && p.SalePrice.Amount.LessThan(p.Price.Amount)
}

// Validate is applied on catalog writes. Reads never reject a product;
// pricing degrades instead.
func (p Product) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalidProduct)
	}
	if !p.Price.Amount.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	}
	if p.OnSale && !p.HasValidSale() {
		return fmt.Errorf("%w: invalid sale price for product on sale", ErrInvalidProduct)
	}

	names := make(map[string]struct{}, len(p.CustomizationGroups))
	for _, g := range p.CustomizationGroups {
		if err := g.Validate(); err != nil {
			return err
		}
		if _, ok := names[g.Name]; ok {
			return fmt.Errorf("%w: duplicate group[%s]", ErrInvalidProduct, g.Name)
		}
		names[g.Name] = struct{}{}
	}

	return nil
}
