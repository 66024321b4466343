package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lauremed/catalog/config"
	"github.com/lauremed/catalog/internal/domain"
)

// GormStorage backs the same contract onto a relational database so the
// catalog can outlive the process when operations needs it. Identifier
// generation stays application-side (UUID) so both backends mint the same
// kind of key.
type GormStorage struct {
	db *gorm.DB
}

var _ Storage = (*GormStorage)(nil)

// NewGormStorage opens the configured database and returns the store.
// Only postgres is wired; the memory backend covers everything else.
func NewGormStorage(cfg config.DBConfig) (*GormStorage, error) {
	switch cfg.Type {
	case "postgres":
	default:
		return nil, fmt.Errorf("unsupported database type %s", cfg.Type)
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.IdleConn)
	return &GormStorage{db: db}, nil
}

// NewGormStorageWithDB wraps an existing handle (used in tests).
func NewGormStorageWithDB(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// MigrateDB creates or updates the table schema.
func (s *GormStorage) MigrateDB() error {
	return s.db.Migrator().AutoMigrate(domain.Tables...)
}

// CheckSeedData inserts any missing fixture rows, keyed by name so existing
// catalogs are never duplicated or overwritten.
func (s *GormStorage) CheckSeedData() {
	for _, c := range seedCategories {
		var count int64
		s.db.Model(&domain.Category{}).Where("name = ?", c.Name).Count(&count)
		if count == 0 {
			if _, err := s.CreateCategory(context.Background(), c); err != nil {
				zap.L().Error("failed to seed category", zap.String("name", c.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized category", zap.String("name", c.Name))
			}
		}
	}

	for _, sp := range seedSpecialties {
		var count int64
		s.db.Model(&domain.Specialty{}).Where("name = ?", sp.Name).Count(&count)
		if count == 0 {
			if _, err := s.CreateSpecialty(context.Background(), sp); err != nil {
				zap.L().Error("failed to seed specialty", zap.String("name", sp.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized specialty", zap.String("name", sp.Name))
			}
		}
	}

	for _, p := range seedProducts {
		var count int64
		s.db.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			if _, err := s.CreateProduct(context.Background(), p); err != nil {
				zap.L().Error("failed to seed product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized product", zap.String("name", p.Name))
			}
		}
	}
}

// firstOrNil converts gorm's not-found error into the contract's nil result.
func firstOrNil[T any](tx *gorm.DB, dest *T) (*T, error) {
	if err := tx.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}

// User methods

func (s *GormStorage) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return firstOrNil(s.db.WithContext(ctx).Where("id = ?", id), &domain.User{})
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return firstOrNil(s.db.WithContext(ctx).Where("username = ?", username), &domain.User{})
}

func (s *GormStorage) CreateUser(ctx context.Context, insert domain.InsertUser) (*domain.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(insert.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:       uuid.NewString(),
		Username: insert.Username,
		Password: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Product methods

func (s *GormStorage) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.WithContext(ctx).Order("created_at").Find(&products).Error
	return products, err
}

func (s *GormStorage) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return firstOrNil(s.db.WithContext(ctx).Where("id = ?", id), &domain.Product{})
}

func (s *GormStorage) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.WithContext(ctx).Where("category = ?", category).Order("created_at").Find(&products).Error
	return products, err
}

func (s *GormStorage) GetProductsBySpecialty(ctx context.Context, specialty string) ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.WithContext(ctx).Where("specialty = ?", specialty).Order("created_at").Find(&products).Error
	return products, err
}

func (s *GormStorage) CreateProduct(ctx context.Context, insert domain.InsertProduct) (*domain.Product, error) {
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        insert.Name,
		Description: insert.Description,
		Price:       insert.Price,
		Category:    insert.Category,
		Specialty:   insert.Specialty,
		ImageUrl:    insert.ImageUrl,
		About:       insert.About,
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
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *GormStorage) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	term := "%" + strings.ToLower(query) + "%"
	var products []domain.Product
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", term, term, term).
		Order("created_at").
		Find(&products).Error
	return products, err
}

// Category methods

func (s *GormStorage) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (s *GormStorage) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return firstOrNil(s.db.WithContext(ctx).Where("id = ?", id), &domain.Category{})
}

func (s *GormStorage) CreateCategory(ctx context.Context, insert domain.InsertCategory) (*domain.Category, error) {
	category := &domain.Category{
		ID:           uuid.NewString(),
		Name:         insert.Name,
		Description:  insert.Description,
		ImageUrl:     insert.ImageUrl,
		ProductCount: insert.ProductCount,
	}
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Specialty methods

func (s *GormStorage) GetSpecialties(ctx context.Context) ([]domain.Specialty, error) {
	var specialties []domain.Specialty
	err := s.db.WithContext(ctx).Find(&specialties).Error
	return specialties, err
}

func (s *GormStorage) GetSpecialty(ctx context.Context, id string) (*domain.Specialty, error) {
	return firstOrNil(s.db.WithContext(ctx).Where("id = ?", id), &domain.Specialty{})
}

func (s *GormStorage) CreateSpecialty(ctx context.Context, insert domain.InsertSpecialty) (*domain.Specialty, error) {
	specialty := &domain.Specialty{
		ID:          uuid.NewString(),
		Name:        insert.Name,
		Description: insert.Description,
		ImageUrl:    insert.ImageUrl,
	}
	if err := s.db.WithContext(ctx).Create(specialty).Error; err != nil {
		return nil, err
	}
	return specialty, nil
}

// Cart methods

func (s *GormStorage) GetCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (s *GormStorage) AddToCart(ctx context.Context, insert domain.InsertCartItem) (*domain.CartItem, error) {
	item := &domain.CartItem{
		ID:        uuid.NewString(),
		ProductID: insert.ProductID,
		Quantity:  insert.Quantity,
		UserID:    insert.UserID,
	}
	if item.Quantity == nil {
		one := 1
		item.Quantity = &one
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GormStorage) UpdateCartItem(ctx context.Context, id string, quantity int) (*domain.CartItem, error) {
	item, err := firstOrNil(s.db.WithContext(ctx).Where("id = ?", id), &domain.CartItem{})
	if err != nil || item == nil {
		return nil, err
	}
	item.Quantity = &quantity
	if err := s.db.WithContext(ctx).Model(&domain.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GormStorage) RemoveFromCart(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
