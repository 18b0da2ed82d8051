package catalog

// Status resultado de una operación del catálogo. Los handlers lo traducen a códigos HTTP.
type Status string

const (
	StatusSuccess          Status = "SUCCESS"
	StatusAlreadyExists    Status = "ALREADY_EXISTS"
	StatusNotFound         Status = "NOT_FOUND"
	StatusParentNotFound   Status = "PARENT_NOT_FOUND"
	StatusCategoryNotFound Status = "CATEGORY_NOT_FOUND"
	StatusNotEmpty         Status = "NOT_EMPTY"
)

func (s Status) String() string { return string(s) }

// OK indica si la operación se completó.
func (s Status) OK() bool { return s == StatusSuccess }
