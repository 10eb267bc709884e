package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"items-backend/internal/domains/item/model"
)

// Service defines the item operations exposed over HTTP
type Service interface {
	CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.CreateItemResponse, error)
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	ListItems(ctx context.Context) ([]*model.Item, error)
	UpdateItem(ctx context.Context, id int64, req *model.UpdateItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	// ExportItems builds a workbook with one row per item.
	// The caller must Close the file.
	ExportItems(ctx context.Context) (*excelize.File, error)
}
