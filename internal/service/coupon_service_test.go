package service

import (
	"errors"
	"testing"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"
)

func availableCoupon(kind string, value float64) *models.Coupon {
	return &models.Coupon{
		ID:        1,
		Code:      "WELCOME",
		Kind:      kind,
		Discount:  models.NewMoneyFromFloat(value),
		Status:    constants.CouponStatusAvailable,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestDiscountForFixedValueClamped(t *testing.T) {
	coupon := availableCoupon(constants.CouponKindFixedValue, 50.00)
	discount, err := DiscountFor(coupon, models.NewMoneyFromFloat(40.00), time.Now())
	if err != nil {
		t.Fatalf("DiscountFor error: %v", err)
	}
	if discount.String() != "40.00" {
		t.Fatalf("expected discount clamped to 40.00, got %s", discount.String())
	}
}

func TestDiscountForFixedValueBelowSubtotal(t *testing.T) {
	coupon := availableCoupon(constants.CouponKindFixedValue, 15.00)
	discount, err := DiscountFor(coupon, models.NewMoneyFromFloat(40.00), time.Now())
	if err != nil {
		t.Fatalf("DiscountFor error: %v", err)
	}
	if discount.String() != "15.00" {
		t.Fatalf("expected discount 15.00, got %s", discount.String())
	}
}

func TestDiscountForPercentage(t *testing.T) {
	coupon := availableCoupon(constants.CouponKindPercentage, 10.00)
	discount, err := DiscountFor(coupon, models.NewMoneyFromFloat(99.90), time.Now())
	if err != nil {
		t.Fatalf("DiscountFor error: %v", err)
	}
	if discount.String() != "9.99" {
		t.Fatalf("expected discount 9.99, got %s", discount.String())
	}
}

func TestDiscountForPercentageNeverExceedsSubtotal(t *testing.T) {
	coupon := availableCoupon(constants.CouponKindPercentage, 100.00)
	discount, err := DiscountFor(coupon, models.NewMoneyFromFloat(33.33), time.Now())
	if err != nil {
		t.Fatalf("DiscountFor error: %v", err)
	}
	if discount.String() != "33.33" {
		t.Fatalf("expected discount 33.33, got %s", discount.String())
	}
}

func TestDiscountForExpired(t *testing.T) {
	coupon := availableCoupon(constants.CouponKindFixedValue, 10.00)
	coupon.ExpiresAt = time.Now().Add(-time.Hour)
	_, err := DiscountFor(coupon, models.NewMoneyFromFloat(40.00), time.Now())
	if !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("expected ErrCouponExpired, got %v", err)
	}
	if !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("expired coupon should also match ErrCouponInvalid")
	}
}

func TestDiscountForUsed(t *testing.T) {
	coupon := availableCoupon(constants.CouponKindFixedValue, 10.00)
	coupon.Status = constants.CouponStatusUsed
	_, err := DiscountFor(coupon, models.NewMoneyFromFloat(40.00), time.Now())
	if !errors.Is(err, ErrCouponUsed) {
		t.Fatalf("expected ErrCouponUsed, got %v", err)
	}
}
