package service

import (
	"strings"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponService 优惠券服务
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// CalculateDiscount 计算优惠金额
// 仅做校验与计算，不产生副作用；核销由结算编排在订单落库后执行。
func (s *CouponService) CalculateDiscount(subtotal models.Money, code string) (models.Money, *models.Coupon, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return models.Money{}, nil, nil
	}

	coupon, err := s.couponRepo.GetByCode(trimmed)
	if err != nil {
		return models.Money{}, nil, err
	}
	if coupon == nil {
		return models.Money{}, nil, ErrCouponInvalid
	}

	discount, err := DiscountFor(coupon, subtotal, time.Now())
	if err != nil {
		return models.Money{}, coupon, err
	}
	return discount, coupon, nil
}

// DiscountFor 按优惠券与小计计算折扣，折扣不超过小计
func DiscountFor(coupon *models.Coupon, subtotal models.Money, now time.Time) (models.Money, error) {
	if coupon == nil {
		return models.Money{}, nil
	}
	switch coupon.Status {
	case constants.CouponStatusAvailable:
	case constants.CouponStatusUsed:
		return models.Money{}, ErrCouponUsed
	default:
		return models.Money{}, ErrCouponInvalid
	}
	if now.After(coupon.ExpiresAt) {
		return models.Money{}, ErrCouponExpired
	}

	switch coupon.Kind {
	case constants.CouponKindFixedValue:
		if coupon.Discount.Decimal.LessThanOrEqual(decimal.Zero) {
			return models.Money{}, ErrCouponInvalid
		}
		discount := coupon.Discount.Decimal
		if discount.GreaterThan(subtotal.Decimal) {
			discount = subtotal.Decimal
		}
		return models.NewMoneyFromDecimal(discount), nil
	case constants.CouponKindPercentage:
		if coupon.Discount.Decimal.LessThanOrEqual(decimal.Zero) {
			return models.Money{}, ErrCouponInvalid
		}
		percent := coupon.Discount.Decimal.Div(decimal.NewFromInt(100))
		discount := subtotal.Decimal.Mul(percent).Round(2)
		if discount.GreaterThan(subtotal.Decimal) {
			discount = subtotal.Decimal
		}
		return models.NewMoneyFromDecimal(discount), nil
	default:
		return models.Money{}, ErrCouponInvalid
	}
}

// Validate 校验优惠码并返回对指定小计的折扣
// 发现过期时顺带落库 EXPIRED 状态，避免依赖后台任务。
func (s *CouponService) Validate(subtotal models.Money, code string) (models.Money, *models.Coupon, error) {
	discount, coupon, err := s.CalculateDiscount(subtotal, code)
	if err != nil {
		if coupon != nil && err == ErrCouponExpired && coupon.Status == constants.CouponStatusAvailable {
			_ = s.couponRepo.UpdateStatus(coupon.ID, constants.CouponStatusExpired)
		}
		return models.Money{}, coupon, err
	}
	return discount, coupon, nil
}
