package service

import (
	"testing"

	"github.com/livraria-next/internal/constants"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.OrderStatusProcessing, constants.OrderStatusApproved, true},
		{constants.OrderStatusProcessing, constants.OrderStatusRejected, true},
		{constants.OrderStatusProcessing, constants.OrderStatusCanceled, true},
		{constants.OrderStatusProcessing, constants.OrderStatusShipping, false},
		{constants.OrderStatusApproved, constants.OrderStatusShipping, true},
		{constants.OrderStatusApproved, constants.OrderStatusCanceled, true},
		{constants.OrderStatusApproved, constants.OrderStatusDelivered, false},
		{constants.OrderStatusShipping, constants.OrderStatusShipped, true},
		{constants.OrderStatusShipping, constants.OrderStatusCanceled, false},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipped, constants.OrderStatusProcessing, false},
		{constants.OrderStatusDelivered, constants.OrderStatusShipping, false},
		{constants.OrderStatusRejected, constants.OrderStatusProcessing, false},
		{constants.OrderStatusCanceled, constants.OrderStatusProcessing, false},
	}
	for _, tc := range cases {
		if got := CanTransitionOrder(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransitionOrder(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTerminalStatusesHaveNoOutgoingTransitions(t *testing.T) {
	terminals := []string{
		constants.OrderStatusRejected,
		constants.OrderStatusCanceled,
		constants.OrderStatusDelivered,
	}
	all := []string{
		constants.OrderStatusProcessing,
		constants.OrderStatusApproved,
		constants.OrderStatusRejected,
		constants.OrderStatusShipping,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCanceled,
	}
	for _, terminal := range terminals {
		if !IsTerminalOrderStatus(terminal) {
			t.Fatalf("%s should be terminal", terminal)
		}
		for _, target := range all {
			if CanTransitionOrder(terminal, target) {
				t.Fatalf("terminal status %s must not transition to %s", terminal, target)
			}
		}
	}
}

func TestCanTransitionPostSaleBranchesStaySeparate(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.PostSaleStatusExchangeRequested, constants.PostSaleStatusExchangeAccepted, true},
		{constants.PostSaleStatusExchangeRequested, constants.PostSaleStatusExchangeRejected, true},
		{constants.PostSaleStatusExchangeAccepted, constants.PostSaleStatusExchangeCompleted, true},
		{constants.PostSaleStatusExchangeRequested, constants.PostSaleStatusExchangeCompleted, false},
		{constants.PostSaleStatusReturnRequested, constants.PostSaleStatusReturnCompleted, true},
		{constants.PostSaleStatusReturnRequested, constants.PostSaleStatusReturnRejected, true},
		// 换货与退货分支互不串线
		{constants.PostSaleStatusExchangeRequested, constants.PostSaleStatusReturnCompleted, false},
		{constants.PostSaleStatusReturnRequested, constants.PostSaleStatusExchangeAccepted, false},
		// 终态无出边
		{constants.PostSaleStatusExchangeCompleted, constants.PostSaleStatusExchangeRequested, false},
		{constants.PostSaleStatusReturnRejected, constants.PostSaleStatusReturnRequested, false},
	}
	for _, tc := range cases {
		if got := CanTransitionPostSale(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransitionPostSale(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
