package service

import (
	"context"
	"errors"
	"fmt"
	"freshpack-backend/internal/client"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const packValidity = 30 * 24 * time.Hour

type SeedResult struct {
	Skipped      bool `json:"skipped"`
	Users        int  `json:"users"`
	UnitTypes    int  `json:"unitTypes"`
	Categories   int  `json:"categories"`
	Products     int  `json:"products"`
	PackTypes    int  `json:"packTypes"`
	Packs        int  `json:"packs"`
	PackProducts int  `json:"packProducts"`
}

type SeedService interface {
	// Seed loads the sample catalog unless users already exist.
	Seed(ctx context.Context) (*SeedResult, error)
	// ForceSync drops every table, migrates and seeds from scratch.
	ForceSync(ctx context.Context) (*SeedResult, error)
	// EnsureAdmin creates the admin account when it is missing.
	EnsureAdmin(ctx context.Context) (*model.User, bool, error)
}

type seedServiceImpl struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewSeedService(db *gorm.DB, userRepo repository.UserRepository, logger *zap.Logger) SeedService {
	return &seedServiceImpl{
		db:       db,
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *seedServiceImpl) ForceSync(ctx context.Context) (*SeedResult, error) {
	s.logger.Warn("force sync: dropping all tables")
	if err := client.Reset(ctx, s.db); err != nil {
		return nil, err
	}
	return s.Seed(ctx)
}

func (s *seedServiceImpl) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		s.logger.Info("data already exists, skipping seeding", zap.Int64("users", count))
		return &SeedResult{Skipped: true}, nil
	}

	users, err := s.seedUsers()
	if err != nil {
		return nil, err
	}

	result := &SeedResult{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		result.Users = len(users)

		return s.seedCatalog(tx, result)
	})
	if err != nil {
		s.logger.Error("seeding failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("database seeded",
		zap.Int("users", result.Users),
		zap.Int("unit_types", result.UnitTypes),
		zap.Int("categories", result.Categories),
		zap.Int("products", result.Products),
		zap.Int("pack_types", result.PackTypes),
		zap.Int("packs", result.Packs),
		zap.Int("pack_products", result.PackProducts),
	)
	return result, nil
}

func (s *seedServiceImpl) seedUsers() ([]*model.User, error) {
	users := make([]*model.User, 0, len(seedUsers))
	for _, u := range seedUsers {
		hashed, err := HashPassword(u.password)
		if err != nil {
			return nil, err
		}
		phone := u.phone
		users = append(users, &model.User{
			Name:     u.name,
			Email:    u.email,
			Phone:    &phone,
			Password: hashed,
			Role:     model.Role(u.role),
			IsActive: true,
		})
	}
	return users, nil
}

func (s *seedServiceImpl) seedCatalog(tx *gorm.DB, result *SeedResult) error {
	unitTypes := make([]*model.UnitType, 0, len(seedUnitTypes))
	for _, u := range seedUnitTypes {
		description := u.description
		unitTypes = append(unitTypes, &model.UnitType{
			Name:         u.name,
			Abbreviation: u.abbreviation,
			Description:  &description,
			IsActive:     true,
		})
	}
	if err := tx.Create(&unitTypes).Error; err != nil {
		return fmt.Errorf("seed unit types: %w", err)
	}
	result.UnitTypes = len(unitTypes)

	unitByAbbr := make(map[string]uint, len(unitTypes))
	for _, u := range unitTypes {
		unitByAbbr[u.Abbreviation] = u.ID
	}

	packTypes := make([]*model.PackType, 0, len(seedPackTypes))
	for _, pt := range seedPackTypes {
		packTypes = append(packTypes, &model.PackType{
			Name:      pt.name,
			Duration:  model.PackDuration(pt.duration),
			BasePrice: decimal.RequireFromString(pt.basePrice),
			IsActive:  true,
		})
	}
	if err := tx.Create(&packTypes).Error; err != nil {
		return fmt.Errorf("seed pack types: %w", err)
	}
	result.PackTypes = len(packTypes)

	validFrom := s.now()
	validUntil := validFrom.Add(packValidity)

	for _, c := range seedCategories {
		description, image := c.description, c.image
		category := &model.Category{
			Name:        c.name,
			Description: &description,
			Image:       &image,
			IsActive:    true,
		}
		if err := tx.Create(category).Error; err != nil {
			return fmt.Errorf("seed category %s: %w", c.name, err)
		}
		result.Categories++

		products := make([]*model.Product, 0, len(c.products))
		for _, p := range c.products {
			unitID, ok := unitByAbbr[p.unit]
			if !ok {
				return fmt.Errorf("seed product %s: unknown unit type %s", p.name, p.unit)
			}
			products = append(products, &model.Product{
				Name:        p.name,
				Price:       decimal.RequireFromString(p.price),
				CategoryID:  category.ID,
				UnitTypeID:  &unitID,
				Quantity:    decimal.NewFromInt(1),
				IsAvailable: true,
				Stock:       p.stock,
			})
		}
		if err := tx.Omit("Category", "UnitType").Create(&products).Error; err != nil {
			return fmt.Errorf("seed products for %s: %w", c.name, err)
		}
		result.Products += len(products)

		for i, pt := range seedPackTypes {
			items := make([]model.PackProduct, 0, len(products))
			for j, p := range c.products {
				if p.packQty == 0 {
					continue
				}
				items = append(items, model.PackProduct{
					ProductID: products[j].ID,
					Quantity:  p.packQty * pt.multiplier,
					UnitPrice: products[j].Price,
				})
			}

			price := model.PackPrice(items)
			packDescription := fmt.Sprintf("Fresh %s for %s", c.packPrefix, pt.period)
			pack := &model.Pack{
				Name:        fmt.Sprintf("%s %s Pack", c.packPrefix, pt.label),
				Description: &packDescription,
				CategoryID:  category.ID,
				PackTypeID:  packTypes[i].ID,
				BasePrice:   price,
				FinalPrice:  price,
				IsActive:    true,
				ValidFrom:   validFrom,
				ValidUntil:  validUntil,
				Products:    items,
			}
			if err := tx.Create(pack).Error; err != nil {
				return fmt.Errorf("seed pack %s: %w", pack.Name, err)
			}
			result.Packs++
			result.PackProducts += len(items)
		}
	}

	return nil
}

func (s *seedServiceImpl) EnsureAdmin(ctx context.Context) (*model.User, bool, error) {
	admin := seedUsers[1]

	existing, err := s.userRepo.FindByEmail(ctx, admin.email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("find admin: %w", err)
	}

	hashed, err := HashPassword(admin.password)
	if err != nil {
		return nil, false, err
	}
	phone := admin.phone
	user := &model.User{
		Name:     admin.name,
		Email:    admin.email,
		Phone:    &phone,
		Password: hashed,
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info("admin user created", zap.String("email", user.Email))
	return user, true, nil
}
