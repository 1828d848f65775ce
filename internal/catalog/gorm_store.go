package catalog

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"chemical-leads-api/internal/models"
	"chemical-leads-api/pkg/utils"
)

// GormStore is the GORM implementation of Store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// OpenPostgres connects to the catalog database at dsn.
func OpenPostgres(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open catalog database")
	}
	zap.L().Info("catalog database connected", zap.String("dialect", db.Name()))
	return NewGormStore(db), nil
}

func searchColumn(field models.SearchField) string {
	if field == models.SearchByCAS {
		return "cas_number"
	}
	return "name"
}

func (s *GormStore) scoped(ctx context.Context, f Filter) *gorm.DB {
	db := s.db.WithContext(ctx).Model(&models.Product{})
	if len(f.Categories) > 0 {
		db = db.Where("category IN ?", categoryStrings(f.Categories))
	}
	if f.Text != "" {
		col := searchColumn(f.Field)
		pattern := "%" + utils.EscapeLike(f.Text) + "%"
		// EscapeLike uses backslash; sqlite has no default escape character.
		if strings.EqualFold(s.db.Name(), "postgres") {
			db = db.Where(col+` ILIKE ? ESCAPE '\'`, pattern)
		} else {
			db = db.Where("LOWER("+col+`) LIKE ? ESCAPE '\'`, strings.ToLower(pattern))
		}
	}
	return db
}

func (s *GormStore) Count(ctx context.Context, f Filter) (int64, error) {
	var total int64
	if err := s.scoped(ctx, f).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return total, nil
}

func (s *GormStore) List(ctx context.Context, f Filter, offset, limit int) ([]models.Product, error) {
	var rows []models.Product
	err := s.scoped(ctx, f).
		Order(searchColumn(f.OrderField()) + " ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return rows, nil
}

func (s *GormStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find product %s", id)
	}
	return &p, nil
}

func (s *GormStore) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	var rows []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "find products by id")
	}
	return orderByIDs(rows, ids), nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "catalog database handle")
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
