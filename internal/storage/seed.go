package storage

import "github.com/lauremed/catalog/internal/domain"

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }
func boolp(b bool) *bool    { return &b }

// Curated storefront fixtures. ProductCount on a category is a marketing
// figure maintained by hand, not computed from product membership.
var seedCategories = []domain.InsertCategory{
	{Name: "Organic Prenatal Care", Description: strp("Natural prenatal vitamins and supplements"), ImageUrl: strp("https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop"), ProductCount: intp(4)},
	{Name: "Natural Pain Relief", Description: strp("Organic pain management solutions"), ImageUrl: strp("https://images.unsplash.com/photo-1471864190281-a93a3070b6de?w=400&h=300&fit=crop"), ProductCount: intp(13)},
	{Name: "Organic Immunity", Description: strp("Natural immunity boosters"), ImageUrl: strp("https://images.unsplash.com/photo-1505576399279-565b52d4ac71?w=400&h=300&fit=crop"), ProductCount: intp(8)},
	{Name: "Calcium Management", Description: strp("Natural calcium supplements"), ImageUrl: strp("https://images.unsplash.com/photo-1584362917165-526a968579e8?w=400&h=300&fit=crop"), ProductCount: intp(6)},
	{Name: "Vitamin D Management", Description: strp("Organic vitamin D supplements"), ImageUrl: strp("https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop"), ProductCount: intp(5)},
	{Name: "Natural Skin Care", Description: strp("Organic dermatology products"), ImageUrl: strp("https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=300&fit=crop"), ProductCount: intp(7)},
	{Name: "Herbal Hair Care", Description: strp("Natural hair care solutions"), ImageUrl: strp("https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop"), ProductCount: intp(4)},
	{Name: "Digestive Care", Description: strp("Natural digestive health"), ImageUrl: strp("https://images.unsplash.com/photo-1631549916768-4119b2e5f926?w=400&h=300&fit=crop"), ProductCount: intp(9)},
}

var seedSpecialties = []domain.InsertSpecialty{
	{Name: "Gynaecology Care", Description: strp("Women's health and wellness"), ImageUrl: strp("https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop")},
	{Name: "Nutrition Care", Description: strp("Organic nutrition supplements"), ImageUrl: strp("https://images.unsplash.com/photo-1584362917165-526a968579e8?w=400&h=300&fit=crop")},
	{Name: "Pain Management", Description: strp("Natural pain relief solutions"), ImageUrl: strp("https://images.unsplash.com/photo-1471864190281-a93a3070b6de?w=400&h=300&fit=crop")},
	{Name: "Respiratory Care", Description: strp("Organic respiratory health"), ImageUrl: strp("https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop")},
	{Name: "Natural Antibiotics", Description: strp("Herbal antimicrobial products"), ImageUrl: strp("https://images.unsplash.com/photo-1505576399279-565b52d4ac71?w=400&h=300&fit=crop")},
	{Name: "Cardiac Care", Description: strp("Heart health supplements"), ImageUrl: strp("https://images.unsplash.com/photo-1628348068343-c6a848d2b6dd?w=400&h=300&fit=crop")},
	{Name: "Dermatology", Description: strp("Natural skin treatments"), ImageUrl: strp("https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=300&fit=crop")},
	{Name: "Diabetes Care", Description: strp("Blood sugar management"), ImageUrl: strp("https://images.unsplash.com/photo-1559757175-0eb30cd8c063?w=400&h=300&fit=crop")},
	{Name: "Gastro Care", Description: strp("Digestive health solutions"), ImageUrl: strp("https://images.unsplash.com/photo-1631549916768-4119b2e5f926?w=400&h=300&fit=crop")},
	{Name: "Immunity Care", Description: strp("Natural immunity boosters"), ImageUrl: strp("https://images.unsplash.com/photo-1505576399279-565b52d4ac71?w=400&h=300&fit=crop")},
}

var seedProducts = []domain.InsertProduct{
	{
		Name:        "Organic Immunity Plus",
		Description: "Natural immunity booster with organic herbs and vitamins",
		Price:       "299.00",
		Category:    "Organic Immunity",
		Specialty:   strp("Immunity Care"),
		ImageUrl:    strp("https://images.unsplash.com/photo-1505576399279-565b52d4ac71?w=400&h=300&fit=crop"),
		InStock:     boolp(true),
		IsOrganic:   boolp(true),
	},
	{
		Name:        "Organic Pain Relief Gel",
		Description: "Fast-acting natural pain relief with organic extracts",
		Price:       "199.00",
		Category:    "Natural Pain Relief",
		Specialty:   strp("Pain Management"),
		ImageUrl:    strp("https://images.unsplash.com/photo-1471864190281-a93a3070b6de?w=400&h=300&fit=crop"),
		InStock:     boolp(true),
		IsOrganic:   boolp(true),
	},
	{
		Name:        "Organic Multi-Vitamin",
		Description: "Complete nutrition with organic vitamins and minerals",
		Price:       "449.00",
		Category:    "Calcium Management",
		Specialty:   strp("Nutrition Care"),
		ImageUrl:    strp("https://images.unsplash.com/photo-1584362917165-526a968579e8?w=400&h=300&fit=crop"),
		InStock:     boolp(true),
		IsOrganic:   boolp(true),
	},
	{
		Name:        "Herbal Digestive Tea",
		Description: "Natural digestive support with organic herbs",
		Price:       "159.00",
		Category:    "Digestive Care",
		Specialty:   strp("Gastro Care"),
		ImageUrl:    strp("https://images.unsplash.com/photo-1631549916768-4119b2e5f926?w=400&h=300&fit=crop"),
		InStock:     boolp(true),
		IsOrganic:   boolp(true),
	},
	{
		Name:        "Organic Prenatal Vitamins",
		Description: "Complete prenatal nutrition for expecting mothers",
		Price:       "599.00",
		Category:    "Organic Prenatal Care",
		Specialty:   strp("Gynaecology Care"),
		ImageUrl:    strp("https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop"),
		InStock:     boolp(true),
		IsOrganic:   boolp(true),
	},
	{
		Name:        "Natural Vitamin D3",
		Description: "Organic vitamin D supplement for bone health",
		Price:       "299.00",
		Category:    "Vitamin D Management",
		Specialty:   strp("Nutrition Care"),
		ImageUrl:    strp("https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop"),
		InStock:     boolp(true),
		IsOrganic:   boolp(true),
	},
}
