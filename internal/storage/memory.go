package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lauremed/catalog/internal/domain"
)

// MemoryStorage keeps every collection in process memory, keyed by a random
// UUID assigned at creation. Insertion order is tracked per collection so
// listings and filters stay deterministic. The RWMutex serializes mutation
// against echo's concurrent request goroutines.
type MemoryStorage struct {
	mu sync.RWMutex

	users       map[string]*domain.User
	products    map[string]*domain.Product
	categories  map[string]*domain.Category
	specialties map[string]*domain.Specialty
	cartItems   map[string]*domain.CartItem

	userOrder      []string
	productOrder   []string
	categoryOrder  []string
	specialtyOrder []string
	cartOrder      []string
}

var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage constructs the store and seeds the catalog fixtures.
// Cart and user collections start empty.
func NewMemoryStorage() *MemoryStorage {
	s := &MemoryStorage{
		users:       make(map[string]*domain.User),
		products:    make(map[string]*domain.Product),
		categories:  make(map[string]*domain.Category),
		specialties: make(map[string]*domain.Specialty),
		cartItems:   make(map[string]*domain.CartItem),
	}
	s.initializeData()
	return s
}

func (s *MemoryStorage) initializeData() {
	ctx := context.Background()
	for _, c := range seedCategories {
		if _, err := s.CreateCategory(ctx, c); err != nil {
			zap.L().Error("failed to seed category", zap.String("name", c.Name), zap.Error(err))
		}
	}
	for _, sp := range seedSpecialties {
		if _, err := s.CreateSpecialty(ctx, sp); err != nil {
			zap.L().Error("failed to seed specialty", zap.String("name", sp.Name), zap.Error(err))
		}
	}
	for _, p := range seedProducts {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			zap.L().Error("failed to seed product", zap.String("name", p.Name), zap.Error(err))
		}
	}
	zap.L().Info("initialized in-memory catalog",
		zap.Int("categories", len(s.categories)),
		zap.Int("specialties", len(s.specialties)),
		zap.Int("products", len(s.products)))
}

// User methods

func (s *MemoryStorage) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, found := s.users[id]; found {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateUser(ctx context.Context, insert domain.InsertUser) (*domain.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(insert.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := &domain.User{
		ID:       uuid.NewString(),
		Username: insert.Username,
		Password: string(hashed),
	}
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return cloneUser(user), nil
}

// Product methods

func (s *MemoryStorage) GetProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, *cloneProduct(s.products[id]))
	}
	return out, nil
}

func (s *MemoryStorage) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, found := s.products[id]; found {
		return cloneProduct(p), nil
	}
	return nil, nil
}

func (s *MemoryStorage) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, id := range s.productOrder {
		if p := s.products[id]; p.Category == category {
			out = append(out, *cloneProduct(p))
		}
	}
	return out, nil
}

func (s *MemoryStorage) GetProductsBySpecialty(ctx context.Context, specialty string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, id := range s.productOrder {
		if p := s.products[id]; p.Specialty != nil && *p.Specialty == specialty {
			out = append(out, *cloneProduct(p))
		}
	}
	return out, nil
}

func (s *MemoryStorage) CreateProduct(ctx context.Context, insert domain.InsertProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        insert.Name,
		Description: insert.Description,
		Price:       insert.Price,
		Category:    insert.Category,
		Specialty:   cloneStr(insert.Specialty),
		ImageUrl:    cloneStr(insert.ImageUrl),
		About:       cloneStr(insert.About),
		InStock:     true,
		IsOrganic:   true,
		CreatedAt:   time.Now(),
	}
	if insert.InStock != nil {
		product.InStock = *insert.InStock
	}
	if insert.IsOrganic != nil {
		product.IsOrganic = *insert.IsOrganic
	}
	s.products[product.ID] = product
	s.productOrder = append(s.productOrder, product.ID)
	return cloneProduct(product), nil
}

func (s *MemoryStorage) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	term := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, id := range s.productOrder {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, *cloneProduct(p))
		}
	}
	return out, nil
}

// Category methods

func (s *MemoryStorage) GetCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		out = append(out, *cloneCategory(s.categories[id]))
	}
	return out, nil
}

func (s *MemoryStorage) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, found := s.categories[id]; found {
		return cloneCategory(c), nil
	}
	return nil, nil
}

func (s *MemoryStorage) CreateCategory(ctx context.Context, insert domain.InsertCategory) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	category := &domain.Category{
		ID:           uuid.NewString(),
		Name:         insert.Name,
		Description:  cloneStr(insert.Description),
		ImageUrl:     cloneStr(insert.ImageUrl),
		ProductCount: cloneInt(insert.ProductCount),
	}
	s.categories[category.ID] = category
	s.categoryOrder = append(s.categoryOrder, category.ID)
	return cloneCategory(category), nil
}

// Specialty methods

func (s *MemoryStorage) GetSpecialties(ctx context.Context) ([]domain.Specialty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Specialty, 0, len(s.specialtyOrder))
	for _, id := range s.specialtyOrder {
		out = append(out, *cloneSpecialty(s.specialties[id]))
	}
	return out, nil
}

func (s *MemoryStorage) GetSpecialty(ctx context.Context, id string) (*domain.Specialty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sp, found := s.specialties[id]; found {
		return cloneSpecialty(sp), nil
	}
	return nil, nil
}

func (s *MemoryStorage) CreateSpecialty(ctx context.Context, insert domain.InsertSpecialty) (*domain.Specialty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	specialty := &domain.Specialty{
		ID:          uuid.NewString(),
		Name:        insert.Name,
		Description: cloneStr(insert.Description),
		ImageUrl:    cloneStr(insert.ImageUrl),
	}
	s.specialties[specialty.ID] = specialty
	s.specialtyOrder = append(s.specialtyOrder, specialty.ID)
	return cloneSpecialty(specialty), nil
}

// Cart methods

func (s *MemoryStorage) GetCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, 0)
	for _, id := range s.cartOrder {
		if item := s.cartItems[id]; item.UserID != nil && *item.UserID == userID {
			out = append(out, *cloneCartItem(item))
		}
	}
	return out, nil
}

func (s *MemoryStorage) AddToCart(ctx context.Context, insert domain.InsertCartItem) (*domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &domain.CartItem{
		ID:        uuid.NewString(),
		ProductID: cloneStr(insert.ProductID),
		Quantity:  cloneInt(insert.Quantity),
		UserID:    cloneStr(insert.UserID),
	}
	if item.Quantity == nil {
		one := 1
		item.Quantity = &one
	}
	s.cartItems[item.ID] = item
	s.cartOrder = append(s.cartOrder, item.ID)
	return cloneCartItem(item), nil
}

func (s *MemoryStorage) UpdateCartItem(ctx context.Context, id string, quantity int) (*domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, found := s.cartItems[id]
	if !found {
		return nil, nil
	}
	item.Quantity = &quantity
	return cloneCartItem(item), nil
}

func (s *MemoryStorage) RemoveFromCart(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.cartItems[id]; !found {
		return false, nil
	}
	delete(s.cartItems, id)
	for i, oid := range s.cartOrder {
		if oid == id {
			s.cartOrder = append(s.cartOrder[:i], s.cartOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

// Records are handed out as copies so callers cannot reach the maps through
// shared pointer fields.

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	c.Specialty = cloneStr(p.Specialty)
	c.ImageUrl = cloneStr(p.ImageUrl)
	c.About = cloneStr(p.About)
	return &c
}

func cloneCategory(cat *domain.Category) *domain.Category {
	c := *cat
	c.Description = cloneStr(cat.Description)
	c.ImageUrl = cloneStr(cat.ImageUrl)
	c.ProductCount = cloneInt(cat.ProductCount)
	return &c
}

func cloneSpecialty(sp *domain.Specialty) *domain.Specialty {
	c := *sp
	c.Description = cloneStr(sp.Description)
	c.ImageUrl = cloneStr(sp.ImageUrl)
	return &c
}

func cloneCartItem(item *domain.CartItem) *domain.CartItem {
	c := *item
	c.ProductID = cloneStr(item.ProductID)
	c.Quantity = cloneInt(item.Quantity)
	c.UserID = cloneStr(item.UserID)
	return &c
}
