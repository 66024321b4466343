package domain

var Tables = []interface{}{
	// System
	&User{},
	// Catalog
	&Product{},
	&Category{},
	&Specialty{},
	// Cart
	&CartItem{},
}
