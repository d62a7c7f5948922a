package service

import (
	"strings"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"
)

// CouponAdminService 优惠券后台管理服务
type CouponAdminService struct {
	couponRepo repository.CouponRepository
}

// NewCouponAdminService 创建优惠券管理服务
func NewCouponAdminService(couponRepo repository.CouponRepository) *CouponAdminService {
	return &CouponAdminService{couponRepo: couponRepo}
}

// SaveCouponInput 创建/更新优惠券输入
type SaveCouponInput struct {
	Code      string       `json:"code" binding:"required"`
	Kind      string       `json:"kind" binding:"required"`
	Discount  models.Money `json:"discount" binding:"required"`
	ExpiresAt time.Time    `json:"expires_at" binding:"required"`
}

func validateCouponInput(input SaveCouponInput) (string, string, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	kind := strings.ToUpper(strings.TrimSpace(input.Kind))
	if code == "" {
		return "", "", ErrCouponInvalid
	}
	if kind != constants.CouponKindPercentage && kind != constants.CouponKindFixedValue {
		return "", "", ErrCouponInvalid
	}
	if !input.Discount.Decimal.IsPositive() {
		return "", "", ErrCouponInvalid
	}
	if kind == constants.CouponKindPercentage && input.Discount.Decimal.IntPart() > 100 {
		return "", "", ErrCouponInvalid
	}
	return code, kind, nil
}

// Create 创建优惠券
func (s *CouponAdminService) Create(input SaveCouponInput) (*models.Coupon, error) {
	code, kind, err := validateCouponInput(input)
	if err != nil {
		return nil, err
	}
	existing, err := s.couponRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCouponInvalid
	}

	coupon := &models.Coupon{
		Code:      code,
		Kind:      kind,
		Discount:  input.Discount,
		Status:    constants.CouponStatusAvailable,
		ExpiresAt: input.ExpiresAt,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券，已使用的券不可再修改
func (s *CouponAdminService) Update(id uint, input SaveCouponInput) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrNotFound
	}
	if coupon.Status == constants.CouponStatusUsed {
		return nil, ErrCouponUsed
	}
	code, kind, err := validateCouponInput(input)
	if err != nil {
		return nil, err
	}
	if code != coupon.Code {
		existing, err := s.couponRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrCouponInvalid
		}
	}

	coupon.Code = code
	coupon.Kind = kind
	coupon.Discount = input.Discount
	coupon.ExpiresAt = input.ExpiresAt
	if coupon.Status == constants.CouponStatusExpired && input.ExpiresAt.After(time.Now()) {
		coupon.Status = constants.CouponStatusAvailable
	}
	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete 删除优惠券，已使用的券保留以维持订单追溯
func (s *CouponAdminService) Delete(id uint) error {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrNotFound
	}
	if coupon.Status == constants.CouponStatusUsed {
		return ErrCouponUsed
	}
	return s.couponRepo.Delete(id)
}

// List 查询优惠券列表
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}
