package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/service"
)

type EmployeeHandler struct {
	svc service.EmployeeService
}

func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

type CreateEmployeeReq struct {
	Name     string    `json:"name" binding:"required"`
	TaxID    string    `json:"tax_id" binding:"required"`
	Position string    `json:"position"`
	Email    string    `json:"email" binding:"omitempty,email"`
	HireDate time.Time `json:"hire_date"`
	Active   bool      `json:"active"`
}

type UpdateEmployeeReq struct {
	ID       uint      `json:"id" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	TaxID    string    `json:"tax_id" binding:"required"`
	Position string    `json:"position"`
	Email    string    `json:"email" binding:"omitempty,email"`
	HireDate time.Time `json:"hire_date"`
	Active   bool      `json:"active"`
	Version  int       `json:"version"`
}

// ListEmployees godoc
//
//	@Summary	List employees
//	@Tags		employees
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Employee}
//	@Router		/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetEmployee godoc
//
//	@Summary	Get employee
//	@Tags		employees
//	@Produce	json
//	@Param		id	path	integer	true	"Employee ID"
//	@Success	200	{object}	serializer.Response{data=model.Employee}
//	@Router		/employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
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

// CreateEmployee godoc
//
//	@Summary	Create employee
//	@Tags		employees
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateEmployeeReq	true	"CreateEmployee payload"
//	@Success	201	{object}	serializer.Response{data=model.Employee}
//	@Router		/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	req := CreateEmployeeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item := model.Employee{
		Name:     req.Name,
		TaxID:    req.TaxID,
		Position: req.Position,
		Email:    req.Email,
		HireDate: req.HireDate,
		Active:   req.Active,
	}
	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateEmployee godoc
//
//	@Summary		Update employee
//	@Description	Deactivating an employee assigned to a project in progress is rejected
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer						true	"Employee ID"
//	@Param			payload	body	handler.UpdateEmployeeReq	true	"UpdateEmployee payload"
//	@Success		200	{object}	serializer.Response{data=model.Employee}
//	@Router			/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateEmployeeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}
	item := model.Employee{
		ID:       id,
		Name:     req.Name,
		TaxID:    req.TaxID,
		Position: req.Position,
		Email:    req.Email,
		HireDate: req.HireDate,
		Active:   req.Active,
		Version:  req.Version,
	}
	if err := h.svc.Update(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	// item carries the incremented version for the next optimistic update
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// DeleteEmployee godoc
//
//	@Summary	Delete employee
//	@Tags		employees
//	@Produce	json
//	@Param		id	path	integer	true	"Employee ID"
//	@Success	200	{object}	serializer.Response{}
//	@Router		/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
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
