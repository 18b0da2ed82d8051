package entity

// Storage representa un lugar físico de almacenamiento (estante, caja, cajón).
type Storage struct {
	Leaf
}
