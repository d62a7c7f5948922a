package public

import (
	handlershared "github.com/livraria-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getCustomerID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "customer_id", "error.customer_id_invalid", "error.customer_id_type_invalid")
}
