package builder

// Chef is the builder interface the pizzeria drives.
type Chef interface {
	SetPizzaType(t PizzaType)
	SetTopping(t Topping)
	SetSauce(s Sauce)
	SetDough(d Dough)
	SetPortions(p Portions)
}

// PizzaBuilder accumulates parts and produces a Pizza on demand. The parts
// are kept after Pizza is called, so a recipe can be tweaked and baked again.
type PizzaBuilder struct {
	pizzaType PizzaType
	topping   Topping
	sauce     Sauce
	dough     Dough
	portions  Portions
}

func NewPizzaBuilder() *PizzaBuilder {
	return &PizzaBuilder{}
}

func (b *PizzaBuilder) SetPizzaType(t PizzaType) { b.pizzaType = t }
func (b *PizzaBuilder) SetTopping(t Topping)     { b.topping = t }
func (b *PizzaBuilder) SetSauce(s Sauce)         { b.sauce = s }
func (b *PizzaBuilder) SetDough(d Dough)         { b.dough = d }
func (b *PizzaBuilder) SetPortions(p Portions)   { b.portions = p }

func (b *PizzaBuilder) Pizza() Pizza {
	return Pizza{
		pizzaType: b.pizzaType,
		topping:   b.topping,
		sauce:     b.sauce,
		dough:     b.dough,
		portions:  b.portions,
	}
}
