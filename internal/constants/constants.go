package constants

// 订单状态常量
const (
	OrderStatusProcessing = "PROCESSING"
	OrderStatusApproved   = "APPROVED"
	OrderStatusRejected   = "REJECTED"
	OrderStatusShipping   = "SHIPPING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCanceled   = "CANCELED"
)

// 库存单元状态常量
const (
	InventoryStatusAvailable = "AVAILABLE"
	InventoryStatusReserved  = "RESERVED"
	InventoryStatusSold      = "SOLD"
	InventoryStatusBlocked   = "BLOCKED"
)

// 优惠券状态常量
const (
	CouponStatusAvailable = "AVAILABLE"
	CouponStatusUsed      = "USED"
	CouponStatusExpired   = "EXPIRED"
)

// 优惠券类型常量
const (
	CouponKindPercentage = "PERCENTAGE"
	CouponKindFixedValue = "FIXED_VALUE"
)

// 售后请求类型常量
const (
	PostSaleKindReturn   = "return"
	PostSaleKindExchange = "exchange"
)

// 售后请求状态常量
const (
	PostSaleStatusExchangeRequested = "EXCHANGE_REQUESTED"
	PostSaleStatusExchangeAccepted  = "EXCHANGE_ACCEPTED"
	PostSaleStatusExchangeRejected  = "EXCHANGE_REJECTED"
	PostSaleStatusExchangeCompleted = "EXCHANGE_COMPLETED"
	PostSaleStatusReturnRequested   = "RETURN_REQUESTED"
	PostSaleStatusReturnRejected    = "RETURN_REJECTED"
	PostSaleStatusReturnCompleted   = "RETURN_COMPLETED"
)

// 图书状态常量
const (
	BookStatusActive   = "active"
	BookStatusInactive = "inactive"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务名称常量
const (
	TaskPaymentCapture   = "payment:capture"
	TaskOrderStatusEmail = "order:status_email"
)
