// Package builder shows the Builder pattern: a chef accumulates the parts of
// a pizza step by step and a pizzeria (the director) knows the recipes.
package builder

import (
	"fmt"
	"strings"
)

type PizzaType int

const (
	Italian PizzaType = iota + 1
	Light
	Mozzarella
	Custom
)

func (t PizzaType) String() string {
	switch t {
	case Italian:
		return "ITALIAN"
	case Light:
		return "LIGHT"
	case Mozzarella:
		return "MOZZARELLA"
	case Custom:
		return "CUSTOM"
	}
	return "NONE"
}

type Topping int

const (
	Anchovies Topping = iota + 1
	Eggplant
	Oregano
)

func (t Topping) String() string {
	switch t {
	case Anchovies:
		return "ANCHOVIES"
	case Eggplant:
		return "EGGPLANT"
	case Oregano:
		return "OREGANO"
	}
	return "NONE"
}

type Sauce int

const (
	Olive Sauce = iota + 1
	LightSauce
	Tomato
)

func (s Sauce) String() string {
	switch s {
	case Olive:
		return "OLIVE"
	case LightSauce:
		return "LIGHT"
	case Tomato:
		return "TOMATO"
	}
	return "NONE"
}

type Dough int

const (
	StoneBaked Dough = iota + 1
	WholeWheat
	Pan
)

func (d Dough) String() string {
	switch d {
	case StoneBaked:
		return "STONE_BAKED"
	case WholeWheat:
		return "WHOLE_WHEAT"
	case Pan:
		return "PAN"
	}
	return "NONE"
}

type Size int

const (
	Small Size = iota + 1
	Medium
	Big
)

func (s Size) String() string {
	switch s {
	case Small:
		return "SMALL"
	case Medium:
		return "MEDIUM"
	case Big:
		return "BIG"
	}
	return "NONE"
}

// Portions is the size of a pizza and how many slices it is cut into.
type Portions struct {
	Size   Size
	Slices int
}

func (p Portions) String() string {
	return fmt.Sprintf("size %s, %d slices", p.Size, p.Slices)
}

// Pizza is the product. Fields are unexported so a pizza cannot change once
// the chef hands it over.
type Pizza struct {
	pizzaType PizzaType
	topping   Topping
	sauce     Sauce
	dough     Dough
	portions  Portions
}

func (p Pizza) Type() PizzaType    { return p.pizzaType }
func (p Pizza) Topping() Topping   { return p.topping }
func (p Pizza) Sauce() Sauce       { return p.sauce }
func (p Pizza) Dough() Dough       { return p.dough }
func (p Pizza) Portions() Portions { return p.portions }

func (p Pizza) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Pizza of type %s", p.pizzaType)
	fmt.Fprintf(&sb, ", topping: %s", p.topping)
	fmt.Fprintf(&sb, ", sauce: %s", p.sauce)
	fmt.Fprintf(&sb, ", dough: %s", p.dough)
	fmt.Fprintf(&sb, ", %s", p.portions)
	return sb.String()
}
