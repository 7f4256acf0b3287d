package queries

import (
	"context"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetFreeUnitCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetFreeUnitCountsQueryHandler(db *gorm.DB) GetFreeUnitCountsQueryHandler {
	return GetFreeUnitCountsQueryHandler{db: db}
}

// Handle reads the cached occupancy flags. An unknown warehouse yields all zeros.
func (h GetFreeUnitCountsQueryHandler) Handle(
	ctx context.Context,
	query GetFreeUnitCountsQuery,
) (FreeUnitCounts, error) {
	if err := query.Validate(); err != nil {
		return FreeUnitCounts{}, err
	}

	free, err := countFree(ctx, h.db, query.WarehouseID())
	if err != nil {
		return FreeUnitCounts{}, err
	}

	counts := FreeUnitCounts{BySize: make([]FreeUnitCount, 0, len(kernel.AllSizes()))}
	for _, size := range kernel.AllSizes() {
		counts.BySize = append(counts.BySize, FreeUnitCount{Size: size, Free: free[size]})
		counts.Total += free[size]
	}

	return counts, nil
}

// countFree groups free units by size, optionally within one warehouse.
func countFree(ctx context.Context, db *gorm.DB, warehouseID *kernel.UUID) (map[kernel.Size]int64, error) {
	query := db.WithContext(ctx).
		Table("storage_units").
		Select("size, COUNT(*)").
		Where("occupied = ?", false).
		Group("size")
	if warehouseID != nil {
		query = query.Where("warehouse_id = ?", warehouseID.Bytes())
	}

	rows, err := query.Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("count free units", err)
	}
	defer rows.Close()

	free := make(map[kernel.Size]int64, len(kernel.AllSizes()))
	for rows.Next() {
		var (
			code  string
			count int64
		)
		if err = rows.Scan(&code, &count); err != nil {
			return nil, errs.NewStorageUnavailableError("count free units", err)
		}

		size, parseErr := kernel.ParseSize(code)
		if parseErr != nil {
			return nil, parseErr
		}
		free[size] = count
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableError("count free units", err)
	}

	return free, nil
}
