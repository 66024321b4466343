// Package storage owns the catalog collections (products, categories,
// specialties, cart items, users) behind a single capability contract.
// Absence is signaled with a nil result and a nil error; errors are
// reserved for backend failures, so the HTTP layer alone decides status
// codes.
package storage

import (
	"context"

	"github.com/lauremed/catalog/internal/domain"
)

// Storage is realized by MemoryStorage and GormStorage. Callers must not
// depend on which backend is wired; both honor the same ordering rule:
// full listings come back in insertion order and filters preserve it.
type Storage interface {
	// User methods
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.InsertUser) (*domain.User, error)

	// Product methods
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetProductsBySpecialty(ctx context.Context, specialty string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product domain.InsertProduct) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)

	// Category methods
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, category domain.InsertCategory) (*domain.Category, error)

	// Specialty methods
	GetSpecialties(ctx context.Context) ([]domain.Specialty, error)
	GetSpecialty(ctx context.Context, id string) (*domain.Specialty, error)
	CreateSpecialty(ctx context.Context, specialty domain.InsertSpecialty) (*domain.Specialty, error)

	// Cart methods
	GetCartItems(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, item domain.InsertCartItem) (*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, id string, quantity int) (*domain.CartItem, error)
	RemoveFromCart(ctx context.Context, id string) (bool, error)
}
