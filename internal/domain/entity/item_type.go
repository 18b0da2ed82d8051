package entity

// ItemType representa un tipo de artículo que se puede guardar en una bodega.
type ItemType struct {
	Leaf
}
