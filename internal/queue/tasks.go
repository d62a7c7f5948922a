package queue

import (
	"encoding/json"

	"github.com/livraria-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskPaymentCapture 支付确认任务
	TaskPaymentCapture = constants.TaskPaymentCapture
	// TaskOrderStatusEmail 订单状态邮件通知任务
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
)

// PaymentCapturePayload 支付确认任务载荷
type PaymentCapturePayload struct {
	OrderID uint `json:"order_id"`
}

// OrderStatusEmailPayload 订单状态邮件任务载荷
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// NewPaymentCaptureTask 创建支付确认任务
func NewPaymentCaptureTask(payload PaymentCapturePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPaymentCapture, body), nil
}

// NewOrderStatusEmailTask 创建订单状态邮件任务
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}
