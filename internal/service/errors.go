package service

import (
	"errors"
	"fmt"

	"github.com/livraria-next/internal/models"
)

// 通用错误
var (
	ErrNotFound     = errors.New("resource not found")
	ErrAccessDenied = errors.New("access denied")
)

// 账号相关错误
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("weak password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserDisabled       = errors.New("user disabled")
)

// 目录与库存错误
var (
	ErrBookNotFound         = errors.New("book not found")
	ErrBookISBNTaken        = errors.New("isbn already registered")
	ErrBookInactive         = errors.New("book inactive")
	ErrOutOfStock           = errors.New("not enough available units")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInventoryUnavailable = errors.New("inventory unavailable")
)

// 优惠券错误，均可通过 errors.Is(err, ErrCouponInvalid) 统一识别
var (
	ErrCouponInvalid = errors.New("coupon invalid")
	ErrCouponExpired = fmt.Errorf("%w: expired", ErrCouponInvalid)
	ErrCouponUsed    = fmt.Errorf("%w: already used", ErrCouponInvalid)
)

// 支付拆分错误
var (
	ErrInvalidAllocationAmount      = errors.New("allocation amount must be positive")
	ErrBelowMinimumInstrumentAmount = errors.New("allocation below minimum instrument amount")
	ErrAllocationTotalMismatch      = errors.New("allocation amounts do not sum to total")
	ErrInvalidInstrument            = errors.New("invalid payment instrument")
	ErrAllocationEmpty              = errors.New("at least one allocation is required")
)

// 生命周期错误
var (
	ErrIllegalStatusTransition     = errors.New("illegal status transition")
	ErrOrderNotEligibleForPostSale = errors.New("order not eligible for post-sale request")
	ErrOrderNotFound               = errors.New("order not found")
	ErrOrderStatusInvalid          = errors.New("order status invalid for this operation")
	ErrPostSaleNotFound            = errors.New("post-sale request not found")
	ErrPostSaleItemsInvalid        = errors.New("post-sale items do not belong to order")
)

// BelowMinimumError 携带违规下标与最低限额，便于调用方修正输入
type BelowMinimumError struct {
	Index   int
	Amount  models.Money
	Minimum models.Money
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("allocation at index %d is %s, below minimum %s",
		e.Index, e.Amount.Decimal.StringFixed(2), e.Minimum.Decimal.StringFixed(2))
}

// Is 支持 errors.Is 识别为最低限额错误
func (e *BelowMinimumError) Is(target error) bool {
	return target == ErrBelowMinimumInstrumentAmount
}

// Key 国际化文案键
func (e *BelowMinimumError) Key() string {
	return "error.allocation_minimum"
}

// Args 国际化文案参数
func (e *BelowMinimumError) Args() []interface{} {
	return []interface{}{e.Minimum.Decimal.StringFixed(2)}
}

// IllegalTransitionError 携带当前状态与目标状态
type IllegalTransitionError struct {
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %s to %s", e.From, e.To)
}

// Is 支持 errors.Is 识别为非法状态迁移
func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalStatusTransition
}
