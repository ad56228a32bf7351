package domain

import (
	"fmt"
	"slices"
)

// GroupSelection is the active state of one customization group.
// It is either SingleChoice or MultipleChoices.
type GroupSelection interface {
	Kind() SelectionKind
	Names() []string

	isGroupSelection()
}

// SingleChoice holds at most one active choice. Empty Choice means none.
type SingleChoice struct {
	Choice string
}

func (SingleChoice) Kind() SelectionKind { return SelectionSingle }

func (s SingleChoice) Names() []string {
	if s.Choice == "" {
		return nil
	}
	return []string{s.Choice}
}

func (SingleChoice) isGroupSelection() {}

// MultipleChoices holds an independent set of active choices.
type MultipleChoices struct {
	Choices []string
}

func (MultipleChoices) Kind() SelectionKind { return SelectionMultiple }

func (m MultipleChoices) Names() []string {
	return slices.Clone(m.Choices)
}

func (MultipleChoices) isGroupSelection() {}

// Selection maps a group name to its active choices. The zero value is an
// empty selection. Selections are values: Choose and Toggle return a copy.
type Selection struct {
	groups map[string]GroupSelection
}

// NewSelection validates raw group→choice names against the product's
// current definition.
func NewSelection(p Product, raw map[string][]string) (Selection, error) {
	groups := make(map[string]GroupSelection, len(raw))

	for groupName, names := range raw {
		g, ok := p.Group(groupName)
		if !ok {
			return Selection{}, fmt.Errorf("%w: unknown group[%s]", ErrInvalidSelection, groupName)
		}

		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			if _, ok := g.Choice(name); !ok {
				return Selection{}, fmt.Errorf("%w: unknown choice[%s] in group[%s]", ErrInvalidSelection, name, groupName)
			}
			if _, dup := seen[name]; dup {
				return Selection{}, fmt.Errorf("%w: duplicate choice[%s] in group[%s]", ErrInvalidSelection, name, groupName)
			}
			seen[name] = struct{}{}
		}

		switch g.Kind {
		case SelectionSingle:
			if len(names) > 1 {
				return Selection{}, fmt.Errorf("%w: group[%s] accepts a single choice", ErrInvalidSelection, groupName)
			}
			var choice string
			if len(names) == 1 {
				choice = names[0]
			}
			groups[groupName] = SingleChoice{Choice: choice}
		case SelectionMultiple:
			groups[groupName] = MultipleChoices{Choices: slices.Clone(names)}
		default:
			return Selection{}, fmt.Errorf("%w: group[%s] has unknown type[%s]", ErrInvalidSelection, groupName, g.Kind)
		}
	}

	return Selection{groups: groups}, nil
}

// DefaultSelection pre-selects the first choice of every single group and
// leaves multiple groups empty, so a product is always addable with a
// deterministic price.
func DefaultSelection(p Product) Selection {
	groups := make(map[string]GroupSelection, len(p.CustomizationGroups))

	for _, g := range p.CustomizationGroups {
		switch g.Kind {
		case SelectionSingle:
			var choice string
			if len(g.Choices) > 0 {
				choice = g.Choices[0].Name
			}
			groups[g.Name] = SingleChoice{Choice: choice}
		case SelectionMultiple:
			groups[g.Name] = MultipleChoices{}
		}
	}

	return Selection{groups: groups}
}

func (s Selection) Get(group string) (GroupSelection, bool) {
	gs, ok := s.groups[group]
	return gs, ok
}

// Len returns the number of groups with an entry, including empty ones.
func (s Selection) Len() int {
	return len(s.groups)
}

// Choose makes choice the only active choice of a single group.
func (s Selection) Choose(p Product, group, choice string) (Selection, error) {
	g, err := lookupChoice(p, group, choice)
	if err != nil {
		return Selection{}, err
	}
	if g.Kind != SelectionSingle {
		return Selection{}, fmt.Errorf("%w: group[%s] is not single", ErrInvalidSelection, group)
	}

	out := s.clone()
	out.groups[group] = SingleChoice{Choice: choice}

	return out, nil
}

// Toggle flips choice in a multiple group.
func (s Selection) Toggle(p Product, group, choice string) (Selection, error) {
	g, err := lookupChoice(p, group, choice)
	if err != nil {
		return Selection{}, err
	}
	if g.Kind != SelectionMultiple {
		return Selection{}, fmt.Errorf("%w: group[%s] is not multiple", ErrInvalidSelection, group)
	}

	var current []string
	if gs, ok := s.groups[group]; ok {
		current = gs.Names()
	}

	if i := slices.Index(current, choice); i >= 0 {
		current = slices.Delete(current, i, i+1)
	} else {
		current = append(current, choice)
	}

	out := s.clone()
	out.groups[group] = MultipleChoices{Choices: current}

	return out, nil
}

// ActiveChoices returns the choices of g that are selected, in the group's
// declared order. Names no longer defined on g are skipped.
func (s Selection) ActiveChoices(g CustomizationGroup) []CustomizationChoice {
	gs, ok := s.groups[g.Name]
	if !ok {
		return nil
	}

	names := gs.Names()
	if len(names) == 0 {
		return nil
	}

	var active []CustomizationChoice
	for _, c := range g.Choices {
		if slices.Contains(names, c.Name) {
			active = append(active, c)
		}
		// a stale single selection may not widen into several choices
		if g.Kind == SelectionSingle && len(active) == 1 {
			break
		}
	}

	return active
}

// Snapshot captures the active choices per group in the product's declared
// order, dropping groups without an active choice.
func (s Selection) Snapshot(p Product) []SelectedCustomization {
	var out []SelectedCustomization

	for _, g := range p.CustomizationGroups {
		active := s.ActiveChoices(g)
		if len(active) == 0 {
			continue
		}
		out = append(out, SelectedCustomization{Group: g.Name, Choices: active})
	}

	return out
}

func (s Selection) clone() Selection {
	groups := make(map[string]GroupSelection, len(s.groups)+1)
	for k, v := range s.groups {
		groups[k] = v
	}
	return Selection{groups: groups}
}

func lookupChoice(p Product, group, choice string) (CustomizationGroup, error) {
	g, ok := p.Group(group)
	if !ok {
		return CustomizationGroup{}, fmt.Errorf("%w: unknown group[%s]", ErrInvalidSelection, group)
	}
	if _, ok := g.Choice(choice); !ok {
		return CustomizationGroup{}, fmt.Errorf("%w: unknown choice[%s] in group[%s]", ErrInvalidSelection, choice, group)
	}

	return g, nil
}

// SelectedCustomization is the customization snapshot stored on a line item.
type SelectedCustomization struct {
	Group   string                `json:"groupName"`
	Choices []CustomizationChoice `json:"selectedChoices"`
}
