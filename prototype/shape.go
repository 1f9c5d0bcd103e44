package prototype

// Shape is a prototype that can also compare itself with another shape.
type Shape interface {
	Clone() Shape
	Equal(other Shape) bool
}

type Circle struct {
	X, Y   int
	Color  string
	Radius int
}

func (c *Circle) Clone() Shape {
	return &Circle{X: c.X, Y: c.Y, Color: c.Color, Radius: c.Radius}
}

func (c *Circle) Equal(other Shape) bool {
	o, ok := other.(*Circle)
	if !ok || o == nil {
		return false
	}
	return *c == *o
}

type Rectangle struct {
	X, Y          int
	Color         string
	Width, Height int
}

func (r *Rectangle) Clone() Shape {
	return &Rectangle{X: r.X, Y: r.Y, Color: r.Color, Width: r.Width, Height: r.Height}
}

func (r *Rectangle) Equal(other Shape) bool {
	o, ok := other.(*Rectangle)
	if !ok || o == nil {
		return false
	}
	return *r == *o
}

// Comparison describes one original/copy pair.
type Comparison struct {
	Index    int
	Distinct bool // the copy is a different object
	Equal    bool // the copy has the same field values
}

// CloneAndCompare clones every shape and compares each copy with its original.
func CloneAndCompare(shapes []Shape) ([]Shape, []Comparison) {
	copies := make([]Shape, 0, len(shapes))
	results := make([]Comparison, 0, len(shapes))
	for i, s := range shapes {
		c := s.Clone()
		copies = append(copies, c)
		results = append(results, Comparison{
			Index:    i,
			Distinct: c != s,
			Equal:    s.Equal(c),
		})
	}
	return copies, results
}
