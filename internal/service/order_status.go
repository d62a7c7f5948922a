package service

import (
	"time"

	"github.com/livraria-next/internal/constants"
)

// orderTransitions 订单状态迁移表，未列出的迁移一律拒绝
var orderTransitions = map[string]map[string]bool{
	constants.OrderStatusProcessing: {
		constants.OrderStatusApproved: true,
		constants.OrderStatusRejected: true,
		constants.OrderStatusCanceled: true,
	},
	constants.OrderStatusApproved: {
		constants.OrderStatusShipping: true,
		constants.OrderStatusCanceled: true,
	},
	constants.OrderStatusShipping: {
		constants.OrderStatusShipped: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
	},
}

// CanTransitionOrder 判断订单状态迁移是否合法
func CanTransitionOrder(from, to string) bool {
	targets, ok := orderTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// IsTerminalOrderStatus 判断是否终态（REJECTED/CANCELED/DELIVERED）
func IsTerminalOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusRejected, constants.OrderStatusCanceled, constants.OrderStatusDelivered:
		return true
	}
	return false
}

// orderStatusStamps 迁移附带的时间戳列
func orderStatusStamps(target string, now time.Time) map[string]interface{} {
	stamps := map[string]interface{}{"updated_at": now}
	switch target {
	case constants.OrderStatusApproved:
		stamps["approved_at"] = now
	case constants.OrderStatusDelivered:
		stamps["delivered_at"] = now
	case constants.OrderStatusCanceled:
		stamps["canceled_at"] = now
	}
	return stamps
}

// orderStatusReleasesInventory 该状态是否需要释放库存单元
func orderStatusReleasesInventory(target string) bool {
	return target == constants.OrderStatusRejected || target == constants.OrderStatusCanceled
}
