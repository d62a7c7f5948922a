package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"

	"github.com/shopspring/decimal"
)

// DefaultMinCardAmount 多卡支付时单卡默认最低金额
const DefaultMinCardAmount = 10.00

// allocationTolerance 金额合计允许的舍入误差（1 分）
var allocationTolerance = decimal.NewFromFloat(0.01)

// InlineCard 结算时直接提交的卡片载荷，不作为可复用支付方式持久化
type InlineCard struct {
	HolderName string
	Number     string
	CVV        string
	ExpiryDate string // MM/YY
	BrandID    uint
}

// ProposedAllocation 客户端申报的单笔支付
// CardID 与 Inline 二选一：引用已存卡或携带内联卡
type ProposedAllocation struct {
	Amount models.Money
	CardID uint
	Inline *InlineCard
}

// ResolvedAllocation 校验通过后的支付分配，卡片信息已快照
type ResolvedAllocation struct {
	Position   int
	Amount     models.Money
	CardID     *uint
	HolderName string
	BrandName  string
	Number     string
	ExpiryDate string
}

// PaymentAllocationService 支付拆分引擎
type PaymentAllocationService struct {
	cardRepo      repository.CardRepository
	brandRepo     repository.BrandRepository
	minCardAmount decimal.Decimal
}

// NewPaymentAllocationService 创建支付拆分引擎
// minCardAmount <= 0 时取默认最低限额。
func NewPaymentAllocationService(cardRepo repository.CardRepository, brandRepo repository.BrandRepository, minCardAmount float64) *PaymentAllocationService {
	min := decimal.NewFromFloat(minCardAmount)
	if min.LessThanOrEqual(decimal.Zero) {
		min = decimal.NewFromFloat(DefaultMinCardAmount)
	}
	return &PaymentAllocationService{
		cardRepo:      cardRepo,
		brandRepo:     brandRepo,
		minCardAmount: min,
	}
}

// MinCardAmount 返回当前单卡最低限额
func (s *PaymentAllocationService) MinCardAmount() models.Money {
	return models.NewMoneyFromDecimal(s.minCardAmount)
}

// ValidateAllocations 校验并定稿一组支付分配
// 校验纯读不落库，可对同一输入重复执行得到相同结果。
func (s *PaymentAllocationService) ValidateAllocations(total models.Money, customerID uint, proposed []ProposedAllocation) ([]ResolvedAllocation, error) {
	if len(proposed) == 0 {
		return nil, ErrAllocationEmpty
	}

	for _, item := range proposed {
		if item.Amount.Decimal.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidAllocationAmount
		}
	}

	if len(proposed) > 1 {
		paidBefore := decimal.Zero
		last := len(proposed) - 1
		for i, item := range proposed {
			remainingAfterPrevious := total.Decimal.Sub(paidBefore)
			// 末位吸收余额：剩余不足最低限额时允许恰好补齐
			if i == last && remainingAfterPrevious.LessThan(s.minCardAmount) {
				paidBefore = paidBefore.Add(item.Amount.Decimal)
				continue
			}
			if item.Amount.Decimal.LessThan(s.minCardAmount) {
				return nil, &BelowMinimumError{
					Index:   i,
					Amount:  item.Amount,
					Minimum: models.NewMoneyFromDecimal(s.minCardAmount),
				}
			}
			paidBefore = paidBefore.Add(item.Amount.Decimal)
		}
	}

	sum := decimal.Zero
	for _, item := range proposed {
		sum = sum.Add(item.Amount.Decimal)
	}
	if sum.Sub(total.Decimal).Abs().GreaterThanOrEqual(allocationTolerance) {
		return nil, ErrAllocationTotalMismatch
	}

	resolved := make([]ResolvedAllocation, 0, len(proposed))
	for i, item := range proposed {
		entry, err := s.resolveInstrument(customerID, item)
		if err != nil {
			return nil, err
		}
		entry.Position = i
		entry.Amount = item.Amount
		resolved = append(resolved, entry)
	}
	return resolved, nil
}

func (s *PaymentAllocationService) resolveInstrument(customerID uint, item ProposedAllocation) (ResolvedAllocation, error) {
	if item.CardID > 0 && item.Inline != nil {
		return ResolvedAllocation{}, ErrInvalidInstrument
	}

	if item.CardID > 0 {
		card, err := s.cardRepo.GetByID(item.CardID)
		if err != nil {
			return ResolvedAllocation{}, err
		}
		if card == nil || card.CustomerID != customerID {
			return ResolvedAllocation{}, ErrInvalidInstrument
		}
		brandName := ""
		if card.Brand != nil {
			brandName = card.Brand.Name
		}
		cardID := card.ID
		return ResolvedAllocation{
			CardID:     &cardID,
			HolderName: card.HolderName,
			BrandName:  brandName,
			Number:     card.Number,
			ExpiryDate: card.ExpiryDate,
		}, nil
	}

	if item.Inline == nil {
		return ResolvedAllocation{}, ErrInvalidInstrument
	}
	if err := validateInlineCard(item.Inline); err != nil {
		return ResolvedAllocation{}, err
	}
	brand, err := s.brandRepo.GetByID(item.Inline.BrandID)
	if err != nil {
		return ResolvedAllocation{}, err
	}
	if brand == nil {
		return ResolvedAllocation{}, ErrInvalidInstrument
	}
	return ResolvedAllocation{
		HolderName: strings.TrimSpace(item.Inline.HolderName),
		BrandName:  brand.Name,
		Number:     item.Inline.Number,
		ExpiryDate: item.Inline.ExpiryDate,
	}, nil
}

func validateInlineCard(card *InlineCard) error {
	if card == nil {
		return ErrInvalidInstrument
	}
	if strings.TrimSpace(card.HolderName) == "" {
		return ErrInvalidInstrument
	}
	number := strings.TrimSpace(card.Number)
	if len(number) != 16 || !isDigits(number) {
		return ErrInvalidInstrument
	}
	cvv := strings.TrimSpace(card.CVV)
	if (len(cvv) != 3 && len(cvv) != 4) || !isDigits(cvv) {
		return ErrInvalidInstrument
	}
	if !expiryInFuture(card.ExpiryDate, time.Now()) {
		return ErrInvalidInstrument
	}
	return nil
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(value) > 0
}

// expiryInFuture 校验 MM/YY 至少有效到当月月末
func expiryInFuture(expiry string, now time.Time) bool {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 0 || year > 99 {
		return false
	}
	fullYear := 2000 + year
	endOfMonth := time.Date(fullYear, time.Month(month), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0)
	return now.Before(endOfMonth)
}
