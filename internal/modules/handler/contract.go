package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/service"
)

type ContractHandler struct {
	svc service.ContractService
}

func NewContractHandler(svc service.ContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

type CreateContractReq struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Value     float64   `json:"value"`
	Status    string    `json:"status"`
	ClientID  uint      `json:"client_id" binding:"required"`
	ProjectID uint      `json:"project_id" binding:"required"`
}

type UpdateContractReq struct {
	ID        uint      `json:"id" binding:"required"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Value     float64   `json:"value"`
	Status    string    `json:"status"`
	ClientID  uint      `json:"client_id" binding:"required"`
	ProjectID uint      `json:"project_id" binding:"required"`
	Version   int       `json:"version"`
}

// ListContracts godoc
//
//	@Summary	List contracts
//	@Tags		contracts
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Contract}
//	@Router		/contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetContract godoc
//
//	@Summary	Get contract
//	@Tags		contracts
//	@Produce	json
//	@Param		id	path	integer	true	"Contract ID"
//	@Success	200	{object}	serializer.Response{data=model.Contract}
//	@Router		/contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
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

// CreateContract godoc
//
//	@Summary	Create contract
//	@Tags		contracts
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateContractReq	true	"CreateContract payload"
//	@Success	201	{object}	serializer.Response{data=model.Contract}
//	@Router		/contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	req := CreateContractReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item := model.Contract{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Value:     req.Value,
		Status:    req.Status,
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
	}
	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateContract godoc
//
//	@Summary	Update contract
//	@Tags		contracts
//	@Accept		json
//	@Produce	json
//	@Param		id		path	integer						true	"Contract ID"
//	@Param		payload	body	handler.UpdateContractReq	true	"UpdateContract payload"
//	@Success	200	{object}	serializer.Response{data=model.Contract}
//	@Router		/contracts/{id} [put]
func (h *ContractHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateContractReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}
	item := model.Contract{
		ID:        id,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Value:     req.Value,
		Status:    req.Status,
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Version:   req.Version,
	}
	if err := h.svc.Update(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	// item carries the incremented version for the next optimistic update
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// DeleteContract godoc
//
//	@Summary	Delete contract
//	@Tags		contracts
//	@Produce	json
//	@Param		id	path	integer	true	"Contract ID"
//	@Success	200	{object}	serializer.Response{}
//	@Router		/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
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
