package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/service"
)

type ClientHandler struct {
	svc service.ClientService
}

func NewClientHandler(svc service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

type CreateClientReq struct {
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"tax_id" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type UpdateClientReq struct {
	ID      uint   `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"tax_id" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"omitempty,email"`
	Version int    `json:"version"`
}

// ListClients godoc
//
//	@Summary	List clients
//	@Tags		clients
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Client}
//	@Router		/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetClient godoc
//
//	@Summary	Get client
//	@Tags		clients
//	@Produce	json
//	@Param		id	path	integer	true	"Client ID"
//	@Success	200	{object}	serializer.Response{data=model.Client}
//	@Router		/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
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

// CreateClient godoc
//
//	@Summary	Create client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateClientReq	true	"CreateClient payload"
//	@Success	201	{object}	serializer.Response{data=model.Client}
//	@Router		/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	req := CreateClientReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item := model.Client{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateClient godoc
//
//	@Summary	Update client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		id		path	integer					true	"Client ID"
//	@Param		payload	body	handler.UpdateClientReq	true	"UpdateClient payload"
//	@Success	200	{object}	serializer.Response{data=model.Client}
//	@Router		/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateClientReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}
	item := model.Client{
		ID:      id,
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
		Email:   req.Email,
		Version: req.Version,
	}
	if err := h.svc.Update(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	// item carries the incremented version for the next optimistic update
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// DeleteClient godoc
//
//	@Summary	Delete client
//	@Tags		clients
//	@Produce	json
//	@Param		id	path	integer	true	"Client ID"
//	@Success	200	{object}	serializer.Response{}
//	@Router		/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
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
