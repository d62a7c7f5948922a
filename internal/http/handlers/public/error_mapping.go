package public

import (
	"errors"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/i18n"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			if keyed, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				locale := i18n.ResolveLocale(c)
				msg := i18n.Sprintf(locale, keyed.Key(), keyed.Args()...)
				respondErrorWithMsg(c, rule.code, msg, nil)
				return
			}
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var settlementQuoteErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrBookNotFound, code: response.CodeBadRequest, key: "error.book_not_found"},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest, key: "error.coupon_expired"},
	{target: service.ErrCouponUsed, code: response.CodeBadRequest, key: "error.coupon_used"},
	{target: service.ErrCouponInvalid, code: response.CodeBadRequest, key: "error.coupon_invalid"},
}

var settlementAllocationErrorRules = []mappedHandlerError{
	{target: service.ErrAllocationEmpty, code: response.CodeBadRequest, key: "error.allocation_empty"},
	{target: service.ErrInvalidAllocationAmount, code: response.CodeBadRequest, key: "error.allocation_amount_invalid"},
	{target: service.ErrBelowMinimumInstrumentAmount, code: response.CodeBadRequest, key: "error.allocation_minimum_short"},
	{target: service.ErrAllocationTotalMismatch, code: response.CodeBadRequest, key: "error.allocation_total_mismatch"},
	{target: service.ErrInvalidInstrument, code: response.CodeBadRequest, key: "error.card_invalid"},
}

var settlementCreateExtraErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeBadRequest, key: "error.address_not_found"},
	{target: service.ErrInventoryUnavailable, code: response.CodeBadRequest, key: "error.inventory_unavailable"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrBookNotFound, code: response.CodeNotFound, key: "error.book_not_found"},
	{target: service.ErrBookInactive, code: response.CodeBadRequest, key: "error.book_inactive"},
	{target: service.ErrOutOfStock, code: response.CodeBadRequest, key: "error.out_of_stock"},
}

var postSaleCreateErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderNotEligibleForPostSale, code: response.CodeBadRequest, key: "error.order_not_eligible_post_sale"},
	{target: service.ErrPostSaleItemsInvalid, code: response.CodeBadRequest, key: "error.post_sale_items_invalid"},
}

func respondQuoteError(c *gin.Context, err error) {
	respondWithMappedError(c, err, settlementQuoteErrorRules, response.CodeInternal, "error.order_quote_failed")
}

func respondSettleOrderError(c *gin.Context, err error) {
	rules := concatMappedHandlerErrors(settlementQuoteErrorRules, settlementAllocationErrorRules, settlementCreateExtraErrorRules)
	respondWithMappedError(c, err, rules, response.CodeInternal, "error.order_create_failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondPostSaleCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, postSaleCreateErrorRules, response.CodeInternal, "error.post_sale_create_failed")
}
