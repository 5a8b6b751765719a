package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/service"
)

type InvoiceHandler struct {
	svc service.InvoiceService
}

func NewInvoiceHandler(svc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

type CreateInvoiceReq struct {
	InvoiceDate time.Time `json:"invoice_date"`
	Value       float64   `json:"value"`
	ContractID  uint      `json:"contract_id" binding:"required"`
}

type UpdateInvoiceReq struct {
	ID          uint      `json:"id" binding:"required"`
	InvoiceDate time.Time `json:"invoice_date"`
	Value       float64   `json:"value"`
	ContractID  uint      `json:"contract_id" binding:"required"`
	Version     int       `json:"version"`
}

// ListInvoices godoc
//
//	@Summary	List invoices
//	@Tags		invoices
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Invoice}
//	@Router		/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetInvoice godoc
//
//	@Summary	Get invoice
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path	integer	true	"Invoice ID"
//	@Success	200	{object}	serializer.Response{data=model.Invoice}
//	@Router		/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// CreateInvoice godoc
//
//	@Summary	Create invoice
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateInvoiceReq	true	"CreateInvoice payload"
//	@Success	201	{object}	serializer.Response{data=model.Invoice}
//	@Router		/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	req := CreateInvoiceReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item := model.Invoice{
		InvoiceDate: req.InvoiceDate,
		Value:       req.Value,
		ContractID:  req.ContractID,
	}
	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateInvoice godoc
//
//	@Summary	Update invoice
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Param		id		path	integer						true	"Invoice ID"
//	@Param		payload	body	handler.UpdateInvoiceReq	true	"UpdateInvoice payload"
//	@Success	200	{object}	serializer.Response{data=model.Invoice}
//	@Router		/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateInvoiceReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}
	item := model.Invoice{
		ID:          id,
		InvoiceDate: req.InvoiceDate,
		Value:       req.Value,
		ContractID:  req.ContractID,
		Version:     req.Version,
	}
	if err := h.svc.Update(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	// item carries the incremented version for the next optimistic update
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// DeleteInvoice godoc
//
//	@Summary	Delete invoice
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path	integer	true	"Invoice ID"
//	@Success	200	{object}	serializer.Response{}
//	@Router		/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
