// Package prototype shows the Prototype pattern: new objects are produced by
// copying a configured prototype instead of constructing them from scratch.
//
// Every type copies itself field by field in Clone, so adding a field means
// touching Clone in the same file.
package prototype

import "fmt"

// Car is a prototype that clones into an independent car of the same make.
type Car interface {
	Clone() Car
	Make() string
	Model() string
	Color() string
	SetModel(model string)
	SetColor(color string)
	Description() string
}

type carBase struct {
	model string
	color string
}

func (c *carBase) Model() string         { return c.model }
func (c *carBase) Color() string         { return c.color }
func (c *carBase) SetModel(model string) { c.model = model }
func (c *carBase) SetColor(color string) { c.color = color }

func (c *carBase) Description() string {
	return fmt.Sprintf("Model: %s, Color: %s", c.model, c.color)
}

type AlfaRomeo struct {
	carBase
}

func (c *AlfaRomeo) Make() string { return "Alfa Romeo" }

func (c *AlfaRomeo) Clone() Car {
	return &AlfaRomeo{carBase: carBase{model: c.model, color: c.color}}
}

type Ferrari struct {
	carBase
}

func (c *Ferrari) Make() string { return "Ferrari" }

func (c *Ferrari) Clone() Car {
	return &Ferrari{carBase: carBase{model: c.model, color: c.color}}
}

type Fiat struct {
	carBase
}

func (c *Fiat) Make() string { return "Fiat" }

func (c *Fiat) Clone() Car {
	return &Fiat{carBase: carBase{model: c.model, color: c.color}}
}
