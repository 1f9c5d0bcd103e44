package builder

import "strings"

// Product is assembled from an ordered list of parts.
type Product struct {
	Parts []string
}

func (p Product) String() string {
	return "Product parts: " + strings.Join(p.Parts, ", ")
}

// PartsBuilder starts a fresh product after every Product call.
type PartsBuilder struct {
	product Product
}

func NewPartsBuilder() *PartsBuilder {
	return &PartsBuilder{}
}

func (b *PartsBuilder) PartA() { b.product.Parts = append(b.product.Parts, "PartA1") }
func (b *PartsBuilder) PartB() { b.product.Parts = append(b.product.Parts, "PartB1") }
func (b *PartsBuilder) PartC() { b.product.Parts = append(b.product.Parts, "PartC1") }

func (b *PartsBuilder) Product() Product {
	result := b.product
	b.product = Product{}
	return result
}

// Director runs the standard build sequences against a PartsBuilder.
type Director struct {
	Builder *PartsBuilder
}

func (d Director) MinimalViable() {
	d.Builder.PartA()
}

func (d Director) FullFeatured() {
	d.Builder.PartA()
	d.Builder.PartB()
	d.Builder.PartC()
}
