package service

import "github.com/storefront-api/internal/constants"

// AdminInventoryStatus 后台列表的库存状态（低于 80 为 Low）
func AdminInventoryStatus(inventory int) string {
	if inventory < constants.AdminInventoryLowThreshold {
		return constants.InventoryStatusLow
	}
	return constants.InventoryStatusOk
}
