package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type CreateUserReq struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=Administrator ProjectManager Employee Client"`
	EmployeeID *uint  `json:"employee_id"`
	ClientID   *uint  `json:"client_id"`
}

type UpdateUserReq struct {
	ID       uint   `json:"id" binding:"required"`
	Username string `json:"username" binding:"required"`
	// empty password keeps the current one
	Password   string `json:"password"`
	Role       string `json:"role" binding:"required,oneof=Administrator ProjectManager Employee Client"`
	EmployeeID *uint  `json:"employee_id"`
	ClientID   *uint  `json:"client_id"`
	Version    int    `json:"version"`
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.User}
//	@Router		/users [get]
func (h *UserHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetUser godoc
//
//	@Summary	Get user
//	@Tags		users
//	@Produce	json
//	@Param		id	path	integer	true	"User ID"
//	@Success	200	{object}	serializer.Response{data=model.User}
//	@Router		/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
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

// CreateUser godoc
//
//	@Summary		Create user
//	@Description	The employee link survives only for role Employee, the client link only for role Client
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateUserReq	true	"CreateUser payload"
//	@Success		201	{object}	serializer.Response{data=model.User}
//	@Router			/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	req := CreateUserReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item := model.User{
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		EmployeeID: req.EmployeeID,
		ClientID:   req.ClientID,
	}
	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateUser godoc
//
//	@Summary	Update user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path	integer					true	"User ID"
//	@Param		payload	body	handler.UpdateUserReq	true	"UpdateUser payload"
//	@Success	200	{object}	serializer.Response{data=model.User}
//	@Router		/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateUserReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}
	item := model.User{
		ID:         id,
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		EmployeeID: req.EmployeeID,
		ClientID:   req.ClientID,
		Version:    req.Version,
	}
	if err := h.svc.Update(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	// item carries the incremented version for the next optimistic update
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// DeleteUser godoc
//
//	@Summary	Delete user
//	@Tags		users
//	@Produce	json
//	@Param		id	path	integer	true	"User ID"
//	@Success	200	{object}	serializer.Response{}
//	@Router		/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
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
