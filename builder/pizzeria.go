package builder

// Pizzeria is the director: it knows the house recipes and drives any Chef
// through them.
type Pizzeria struct{}

// Italian leaves the portions to the caller.
func (Pizzeria) Italian(chef Chef) {
	chef.SetPizzaType(Italian)
	chef.SetTopping(Anchovies)
	chef.SetSauce(Olive)
	chef.SetDough(StoneBaked)
}

func (Pizzeria) Light(chef Chef) {
	chef.SetPizzaType(Light)
	chef.SetTopping(Eggplant)
	chef.SetSauce(LightSauce)
	chef.SetDough(WholeWheat)
	chef.SetPortions(Portions{Size: Small, Slices: 4})
}

func (Pizzeria) Mozzarella(chef Chef) {
	chef.SetPizzaType(Mozzarella)
	chef.SetTopping(Oregano)
	chef.SetSauce(Tomato)
	chef.SetDough(Pan)
	chef.SetPortions(Portions{Size: Big, Slices: 8})
}
