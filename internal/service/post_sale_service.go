package service

import (
	"strings"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"

	"gorm.io/gorm"
)

// postSaleTransitions 退换货状态机，换货与退货分支互不串线
var postSaleTransitions = map[string]map[string]bool{
	constants.PostSaleStatusExchangeRequested: {
		constants.PostSaleStatusExchangeAccepted: true,
		constants.PostSaleStatusExchangeRejected: true,
	},
	constants.PostSaleStatusExchangeAccepted: {
		constants.PostSaleStatusExchangeCompleted: true,
	},
	constants.PostSaleStatusReturnRequested: {
		constants.PostSaleStatusReturnRejected:  true,
		constants.PostSaleStatusReturnCompleted: true,
	},
}

// CanTransitionPostSale 判断退换货状态迁移是否合法
func CanTransitionPostSale(from, to string) bool {
	targets, ok := postSaleTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// requestedStatusFor 按类型返回初始请求状态
func requestedStatusFor(kind string) (string, bool) {
	switch kind {
	case constants.PostSaleKindReturn:
		return constants.PostSaleStatusReturnRequested, true
	case constants.PostSaleKindExchange:
		return constants.PostSaleStatusExchangeRequested, true
	}
	return "", false
}

// rejectedStatusFor 按类型返回拒绝状态（顾客主动取消时复用）
func rejectedStatusFor(kind string) string {
	if kind == constants.PostSaleKindReturn {
		return constants.PostSaleStatusReturnRejected
	}
	return constants.PostSaleStatusExchangeRejected
}

// completedStatusFor 按类型返回完成状态
func completedStatusFor(kind string) string {
	if kind == constants.PostSaleKindReturn {
		return constants.PostSaleStatusReturnCompleted
	}
	return constants.PostSaleStatusExchangeCompleted
}

// PostSaleService 退换货请求服务
type PostSaleService struct {
	postSaleRepo  repository.PostSaleRepository
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
}

// NewPostSaleService 创建退换货服务
func NewPostSaleService(
	postSaleRepo repository.PostSaleRepository,
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
) *PostSaleService {
	return &PostSaleService{
		postSaleRepo:  postSaleRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
	}
}

// CreatePostSaleInput 创建退换货请求输入
type CreatePostSaleInput struct {
	CustomerID uint   `json:"-"`
	OrderID    uint   `json:"order_id" binding:"required"`
	Kind       string `json:"kind" binding:"required"`
	ItemIDs    []uint `json:"item_ids" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// Create 创建退换货请求，仅允许针对已送达订单的自有订单行
func (s *PostSaleService) Create(input CreatePostSaleInput) (*models.ReturnExchangeRequest, error) {
	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	status, ok := requestedStatusFor(kind)
	if !ok {
		return nil, ErrPostSaleItemsInvalid
	}
	if strings.TrimSpace(input.Reason) == "" || len(input.ItemIDs) == 0 {
		return nil, ErrPostSaleItemsInvalid
	}

	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CustomerID != input.CustomerID {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusDelivered {
		return nil, ErrOrderNotEligibleForPostSale
	}

	orderItemIDs := make(map[uint]bool, len(order.Items))
	for _, item := range order.Items {
		orderItemIDs[item.ID] = true
	}
	seen := make(map[uint]bool, len(input.ItemIDs))
	items := make([]models.InventoryUnit, 0, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		if !orderItemIDs[id] || seen[id] {
			return nil, ErrPostSaleItemsInvalid
		}
		seen[id] = true
		items = append(items, models.InventoryUnit{ID: id})
	}

	request := &models.ReturnExchangeRequest{
		CustomerID: input.CustomerID,
		OrderID:    input.OrderID,
		Kind:       kind,
		Status:     status,
		Reason:     strings.TrimSpace(input.Reason),
		Items:      items,
	}
	if err := s.postSaleRepo.Create(request); err != nil {
		return nil, err
	}
	return s.postSaleRepo.GetByID(request.ID)
}

// Transition 管理员驱动的退换货状态迁移；完成态联动库存单元状态
func (s *PostSaleService) Transition(requestID uint, target string) (*models.ReturnExchangeRequest, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	err := models.DB.Transaction(func(dbTx *gorm.DB) error {
		postSaleRepo := s.postSaleRepo.WithTx(dbTx)
		inventoryRepo := s.inventoryRepo.WithTx(dbTx)

		request, err := postSaleRepo.GetByID(requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrPostSaleNotFound
		}
		if !CanTransitionPostSale(request.Status, target) {
			return &IllegalTransitionError{From: request.Status, To: target}
		}
		if err := postSaleRepo.UpdateStatus(requestID, target, false); err != nil {
			return err
		}
		if target != completedStatusFor(request.Kind) {
			return nil
		}

		// 完成退货释放单元回可售，完成换货封存单元待补发
		toStatus := constants.InventoryStatusAvailable
		if request.Kind == constants.PostSaleKindExchange {
			toStatus = constants.InventoryStatusBlocked
		}
		itemIDs := make([]uint, 0, len(request.Items))
		for _, item := range request.Items {
			itemIDs = append(itemIDs, item.ID)
		}
		affected, err := inventoryRepo.SetStatusByIDs(itemIDs, constants.InventoryStatusSold, toStatus)
		if err != nil {
			return err
		}
		if affected != int64(len(itemIDs)) {
			return ErrInventoryUnavailable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.postSaleRepo.GetByID(requestID)
}

// CancelByOwner 顾客取消自己的请求，仅限待处理状态
func (s *PostSaleService) CancelByOwner(requestID, customerID uint) (*models.ReturnExchangeRequest, error) {
	err := models.DB.Transaction(func(dbTx *gorm.DB) error {
		postSaleRepo := s.postSaleRepo.WithTx(dbTx)

		request, err := postSaleRepo.GetByID(requestID)
		if err != nil {
			return err
		}
		if request == nil || request.CustomerID != customerID {
			return ErrPostSaleNotFound
		}
		requested, _ := requestedStatusFor(request.Kind)
		if request.Status != requested {
			return &IllegalTransitionError{From: request.Status, To: rejectedStatusFor(request.Kind)}
		}
		return postSaleRepo.UpdateStatus(requestID, rejectedStatusFor(request.Kind), true)
	})
	if err != nil {
		return nil, err
	}
	return s.postSaleRepo.GetByID(requestID)
}

// Get 获取退换货请求，customerID 非 0 时校验归属
func (s *PostSaleService) Get(requestID, customerID uint) (*models.ReturnExchangeRequest, error) {
	request, err := s.postSaleRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrPostSaleNotFound
	}
	if customerID != 0 && request.CustomerID != customerID {
		return nil, ErrPostSaleNotFound
	}
	return request, nil
}

// List 查询退换货请求列表
func (s *PostSaleService) List(filter repository.PostSaleListFilter) ([]models.ReturnExchangeRequest, int64, error) {
	return s.postSaleRepo.List(filter)
}
