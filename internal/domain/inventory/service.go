// internal/domain/inventory/service.go
package inventory

import (
	"fmt"

	"github.com/your-org/webshop-backend/internal/config"
	"github.com/your-org/webshop-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Service handles inventory business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new inventory service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// AdjustRequest is a manual stock correction
type AdjustRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	VariantID *uint  `json:"variant_id"`
	Change    int    `json:"change" binding:"required"`
	Note      string `json:"note"`
}

// RestockRequest adds incoming stock
type RestockRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	VariantID *uint  `json:"variant_id"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Note      string `json:"note"`
}

// Adjust applies a manual stock correction and records a MANUAL_ADJUSTMENT log
func (s *Service) Adjust(req *AdjustRequest) (*InventoryLog, error) {
	if req.Change == 0 {
		return nil, fmt.Errorf("adjustment change must not be zero")
	}
	return s.applyChange(req.ProductID, req.VariantID, req.Change, ReasonManualAdjustment, req.Note)
}

// Restock adds stock and records a RESTOCK log
func (s *Service) Restock(req *RestockRequest) (*InventoryLog, error) {
	return s.applyChange(req.ProductID, req.VariantID, req.Quantity, ReasonRestock, req.Note)
}

func (s *Service) applyChange(productID uint, variantID *uint, change int, reason Reason, note string) (*InventoryLog, error) {
	var created *InventoryLog

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p product.Product
		if err := tx.First(&p, productID).Error; err != nil {
			return fmt.Errorf("product %d not found", productID)
		}
		if p.Stock+change < 0 {
			return fmt.Errorf("stock for %q cannot go below zero", p.Name)
		}

		err := tx.Model(&product.Product{}).Where("id = ?", productID).
			UpdateColumn("stock", gorm.Expr("stock + ?", change)).Error
		if err != nil {
			return fmt.Errorf("failed to update product stock: %w", err)
		}

		if variantID != nil {
			var v product.Variant
			if err := tx.Where("id = ? AND product_id = ?", *variantID, productID).First(&v).Error; err != nil {
				return fmt.Errorf("variant %d not found for product %d", *variantID, productID)
			}
			if v.Stock+change < 0 {
				return fmt.Errorf("variant stock for %q cannot go below zero", p.Name)
			}
			err := tx.Model(&product.Variant{}).Where("id = ?", *variantID).
				UpdateColumn("stock", gorm.Expr("stock + ?", change)).Error
			if err != nil {
				return fmt.Errorf("failed to update variant stock: %w", err)
			}
		}

		log := &InventoryLog{
			ProductID: productID,
			VariantID: variantID,
			Change:    change,
			Reason:    reason,
			Note:      note,
		}
		if err := tx.Create(log).Error; err != nil {
			return fmt.Errorf("failed to record inventory log: %w", err)
		}

		created = log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// History lists inventory movements for a product, newest first
func (s *Service) History(productID uint, limit, offset int) ([]InventoryLog, int64, error) {
	query := s.db.Model(&InventoryLog{}).Where("product_id = ?", productID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory logs: %w", err)
	}

	var logs []InventoryLog
	err := query.Preload("Variant").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inventory logs: %w", err)
	}
	return logs, total, nil
}

// LowStock returns non-archived products at or below the threshold
func (s *Service) LowStock(threshold, limit int) ([]product.Product, error) {
	var products []product.Product
	err := s.db.Where("stock <= ? AND is_archived = ?", threshold, false).
		Order("stock ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}
