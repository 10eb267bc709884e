package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"items-backend/internal/domains/item/model"
	"items-backend/internal/domains/item/repository"
)

// itemService implements Service.
// Each operation is a pass-through to one repository call plus a presence
// check on name.
type itemService struct {
	repo repository.Repository
}

// NewItemService creates a new item service instance
// Dependency injection pattern - receives repository from container
func NewItemService(repo repository.Repository) Service {
	return &itemService{
		repo: repo,
	}
}

func (s *itemService) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.CreateItemResponse, error) {
	if req == nil {
		return nil, model.NewInvalidItemRequest(fmt.Errorf("request cannot be nil"))
	}
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidItemRequest(err)
	}

	created, err := s.repo.Create(ctx, &model.Item{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	return created.ToCreateResponse(), nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	if id <= 0 {
		return nil, model.NewInvalidItemID(strconv.FormatInt(id, 10))
	}

	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, model.NewItemNotFound(id)
	}

	return it, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]*model.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]*model.Item, 0)
	}
	return items, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, req *model.UpdateItemRequest) (*model.Item, error) {
	if id <= 0 {
		return nil, model.NewInvalidItemID(strconv.FormatInt(id, 10))
	}
	if req == nil {
		return nil, model.NewInvalidItemRequest(fmt.Errorf("request cannot be nil"))
	}
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidItemRequest(err)
	}

	updated, err := s.repo.Update(ctx, id, &model.Item{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.NewItemNotFound(id)
	}

	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.NewInvalidItemID(strconv.FormatInt(id, 10))
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewItemNotFound(id)
	}

	return nil
}

// ========================================
// EXPORT
// ========================================

const exportSheetName = "Items"

var exportHeaders = []string{"ID", "Name", "Description", "Created At"}

func (s *itemService) ExportItems(ctx context.Context) (*excelize.File, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	f, err := buildItemsExcelFile(items)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}
	return f, nil
}

func buildItemsExcelFile(items []*model.Item) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename default sheet
	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Row 1: header
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheetName, "A1", lastHeader, headerStyle)
	}

	// Data rows start at row 2
	for i, it := range items {
		values := []interface{}{
			it.ID,
			it.Name,
			it.DescriptionText(),
			it.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, i+2)
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}
