package public

import (
	"errors"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAddresses 获取当前顾客地址簿
func (h *Handler) ListAddresses(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	addresses, err := h.AddressService.List(customerID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.address_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"items": addresses})
}

// CreateAddress 新增收货地址
func (h *Handler) CreateAddress(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	var req service.SaveAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	address, err := h.AddressService.Create(customerID, req)
	if err != nil {
		respondError(c, response.CodeInternal, "error.address_save_failed", err)
		return
	}

	response.Success(c, address)
}

// UpdateAddress 更新收货地址
func (h *Handler) UpdateAddress(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.SaveAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	address, err := h.AddressService.Update(addressID, customerID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.address_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.address_save_failed", err)
		return
	}

	response.Success(c, address)
}

// DeleteAddress 删除收货地址
func (h *Handler) DeleteAddress(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}
	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.AddressService.Delete(addressID, customerID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.address_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.address_delete_failed", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
