package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/logger"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/queue"
	"github.com/livraria-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单结算与生命周期服务
type OrderService struct {
	orderRepo             repository.OrderRepository
	inventoryRepo         repository.InventoryRepository
	couponRepo            repository.CouponRepository
	addressRepo           repository.AddressRepository
	couponService         *CouponService
	allocService          *PaymentAllocationService
	queueClient           *queue.Client
	freightPerItem        models.Money
	captureDelay          time.Duration
	captureApprovePercent int
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	couponRepo repository.CouponRepository,
	addressRepo repository.AddressRepository,
	couponService *CouponService,
	allocService *PaymentAllocationService,
	queueClient *queue.Client,
	freightPerItem float64,
	captureDelay time.Duration,
	captureApprovePercent int,
) *OrderService {
	if captureApprovePercent < 0 || captureApprovePercent > 100 {
		captureApprovePercent = 80
	}
	return &OrderService{
		orderRepo:             orderRepo,
		inventoryRepo:         inventoryRepo,
		couponRepo:            couponRepo,
		addressRepo:           addressRepo,
		couponService:         couponService,
		allocService:          allocService,
		queueClient:           queueClient,
		freightPerItem:        models.NewMoneyFromFloat(freightPerItem),
		captureDelay:          captureDelay,
		captureApprovePercent: captureApprovePercent,
	}
}

// SettleOrderInput 结算下单输入；FreightAmount 缺省时按件数乘默认运费
type SettleOrderInput struct {
	CustomerID    uint                 `json:"-"`
	AddressID     uint                 `json:"address_id" binding:"required"`
	CouponCode    string               `json:"coupon_code"`
	FreightAmount *models.Money        `json:"freight_amount"`
	Allocations   []ProposedAllocation `json:"allocations" binding:"required"`
}

// OrderQuote 结算报价（下单前的金额明细）
type OrderQuote struct {
	Items          []models.InventoryUnit `json:"items"`
	SubtotalAmount models.Money           `json:"subtotal_amount"`
	FreightAmount  models.Money           `json:"freight_amount"`
	DiscountAmount models.Money           `json:"discount_amount"`
	Amount         models.Money           `json:"amount"`
}

// Quote 计算当前购物车的结算金额明细
func (s *OrderService) Quote(customerID uint, couponCode string) (*OrderQuote, error) {
	items, err := s.inventoryRepo.ListReservedByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	subtotal, err := s.subtotalFor(items)
	if err != nil {
		return nil, err
	}
	freight := s.freightFor(len(items))
	discount, _, err := s.couponService.CalculateDiscount(subtotal, couponCode)
	if err != nil {
		return nil, err
	}
	return &OrderQuote{
		Items:          items,
		SubtotalAmount: subtotal,
		FreightAmount:  freight,
		DiscountAmount: discount,
		Amount:         models.NewMoneyFromDecimal(subtotal.Decimal.Add(freight.Decimal).Sub(discount.Decimal)),
	}, nil
}

// SettleOrder 结算下单：校验地址/优惠券/分卡支付后原子落单
func (s *OrderService) SettleOrder(input SettleOrderInput) (*models.Order, error) {
	items, err := s.inventoryRepo.ListReservedByCustomer(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	address, err := s.addressRepo.GetByID(input.AddressID)
	if err != nil {
		return nil, err
	}
	if address == nil || address.CustomerID != input.CustomerID {
		return nil, ErrNotFound
	}

	subtotal, err := s.subtotalFor(items)
	if err != nil {
		return nil, err
	}
	freight := s.freightFor(len(items))
	if input.FreightAmount != nil && !input.FreightAmount.Decimal.IsNegative() {
		freight = *input.FreightAmount
	}
	discount, coupon, err := s.couponService.CalculateDiscount(subtotal, input.CouponCode)
	if err != nil {
		return nil, err
	}
	total := models.NewMoneyFromDecimal(subtotal.Decimal.Add(freight.Decimal).Sub(discount.Decimal))

	resolved, err := s.allocService.ValidateAllocations(total, input.CustomerID, input.Allocations)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:       generateOrderNo(),
		CustomerID:    input.CustomerID,
		Status:        constants.OrderStatusProcessing,
		AddressAlias:  address.Alias,
		ResidenceType: address.ResidenceType,
		StreetType:    address.StreetType,
		Street:        address.Street,
		Number:        address.Number,
		District:      address.District,
		Zipcode:       address.Zipcode,
		City:          address.City,
		State:         address.State,
		Country:       address.Country,
		Observations:  address.Observations,
	}
	tx := &models.Transaction{
		SubtotalAmount: subtotal,
		FreightAmount:  freight,
		DiscountAmount: discount,
		Amount:         total,
	}
	if coupon != nil {
		couponID := coupon.ID
		tx.CouponID = &couponID
	}
	for _, item := range resolved {
		tx.Allocations = append(tx.Allocations, models.CardPayment{
			Position:       item.Position,
			Amount:         item.Amount,
			CardHolderName: item.HolderName,
			CardBrand:      item.BrandName,
			CardNumber:     item.Number,
			CardExpiryDate: item.ExpiryDate,
		})
	}
	order.Transaction = tx

	err = models.DB.Transaction(func(dbTx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(dbTx)
		inventoryRepo := s.inventoryRepo.WithTx(dbTx)
		couponRepo := s.couponRepo.WithTx(dbTx)

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		sold, err := inventoryRepo.MarkSoldByCustomer(input.CustomerID, order.ID, now)
		if err != nil {
			return err
		}
		if sold != int64(len(items)) {
			return ErrInventoryUnavailable
		}
		if coupon != nil {
			current, err := couponRepo.GetByID(coupon.ID)
			if err != nil {
				return err
			}
			if current == nil || current.Status != constants.CouponStatusAvailable {
				return ErrCouponUsed
			}
			if err := couponRepo.UpdateStatus(coupon.ID, constants.CouponStatusUsed); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.enqueueCapture(order.ID)
	s.enqueueStatusEmail(order.ID, order.Status)

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil || created == nil {
		return order, nil
	}
	return created, nil
}

// CapturePayment 模拟支付回执：按配置比例批准或拒绝待处理订单
func (s *OrderService) CapturePayment(orderID uint) (bool, error) {
	approved := false
	err := models.DB.Transaction(func(dbTx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(dbTx)
		inventoryRepo := s.inventoryRepo.WithTx(dbTx)

		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status != constants.OrderStatusProcessing {
			return ErrOrderStatusInvalid
		}

		now := time.Now()
		approved = randPercent() < s.captureApprovePercent
		if approved {
			return orderRepo.UpdateStatus(orderID, constants.OrderStatusApproved, orderStatusStamps(constants.OrderStatusApproved, now))
		}
		if err := orderRepo.UpdateStatus(orderID, constants.OrderStatusRejected, orderStatusStamps(constants.OrderStatusRejected, now)); err != nil {
			return err
		}
		if err := inventoryRepo.ReleaseByOrder(orderID); err != nil {
			return err
		}
		return reopenCoupon(s.couponRepo.WithTx(dbTx), order)
	})
	if err != nil {
		return false, err
	}

	status := constants.OrderStatusApproved
	if !approved {
		status = constants.OrderStatusRejected
	}
	s.enqueueStatusEmail(orderID, status)
	return approved, nil
}

// TransitionStatus 管理员驱动的订单状态迁移
func (s *OrderService) TransitionStatus(orderID uint, target string) (*models.Order, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	err := models.DB.Transaction(func(dbTx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(dbTx)
		inventoryRepo := s.inventoryRepo.WithTx(dbTx)

		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !CanTransitionOrder(order.Status, target) {
			return &IllegalTransitionError{From: order.Status, To: target}
		}
		if err := orderRepo.UpdateStatus(orderID, target, orderStatusStamps(target, time.Now())); err != nil {
			return err
		}
		if orderStatusReleasesInventory(target) {
			if err := inventoryRepo.ReleaseByOrder(orderID); err != nil {
				return err
			}
			return reopenCoupon(s.couponRepo.WithTx(dbTx), order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.enqueueStatusEmail(orderID, target)
	return s.orderRepo.GetByID(orderID)
}

// CancelByCustomer 顾客取消自己的订单（仅限支付确认前后的可取消状态）
func (s *OrderService) CancelByCustomer(orderID, customerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return s.TransitionStatus(orderID, constants.OrderStatusCanceled)
}

// GetOrder 获取订单，customerID 非 0 时校验归属
func (s *OrderService) GetOrder(orderID, customerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if customerID != 0 && order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders 查询订单列表
func (s *OrderService) ListOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// subtotalFor 按图书售价累计商品小计
func (s *OrderService) subtotalFor(items []models.InventoryUnit) (models.Money, error) {
	priceByBook := make(map[uint]models.Money)
	subtotal := decimal.Zero
	for _, item := range items {
		price, ok := priceByBook[item.BookID]
		if !ok {
			if item.Book == nil {
				return models.Money{}, ErrBookNotFound
			}
			maxCost, err := s.inventoryRepo.MaxCostByBook(item.BookID)
			if err != nil {
				return models.Money{}, err
			}
			price = SalePriceFor(maxCost, item.Book.ProfitPercentage)
			priceByBook[item.BookID] = price
		}
		subtotal = subtotal.Add(price.Decimal)
	}
	return models.NewMoneyFromDecimal(subtotal), nil
}

// freightFor 按件数计算运费
func (s *OrderService) freightFor(itemCount int) models.Money {
	return models.NewMoneyFromDecimal(s.freightPerItem.Decimal.Mul(decimal.NewFromInt(int64(itemCount))))
}

// reopenCoupon 订单落败时归还已核销的优惠券，已过期则转为过期态
func reopenCoupon(couponRepo repository.CouponRepository, order *models.Order) error {
	if order == nil || order.Transaction == nil || order.Transaction.CouponID == nil {
		return nil
	}
	coupon, err := couponRepo.GetByID(*order.Transaction.CouponID)
	if err != nil {
		return err
	}
	if coupon == nil || coupon.Status != constants.CouponStatusUsed {
		return nil
	}
	status := constants.CouponStatusAvailable
	if time.Now().After(coupon.ExpiresAt) {
		status = constants.CouponStatusExpired
	}
	return couponRepo.UpdateStatus(coupon.ID, status)
}

func (s *OrderService) enqueueCapture(orderID uint) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if err := s.queueClient.EnqueuePaymentCapture(queue.PaymentCapturePayload{OrderID: orderID}, s.captureDelay); err != nil {
		logger.Warnw("enqueue payment capture failed", "order_id", orderID, "err", err)
	}
}

func (s *OrderService) enqueueStatusEmail(orderID uint, status string) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{OrderID: orderID, Status: status}); err != nil {
		logger.Warnw("enqueue order status email failed", "order_id", orderID, "err", err)
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("LV%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}

func randPercent() int {
	n, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		return 0
	}
	return int(n.Int64())
}
