package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/middleware"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/service"
)

type ProjectHandler struct {
	projects service.ProjectService
	users    service.UserService
}

func NewProjectHandler(projects service.ProjectService, users service.UserService) *ProjectHandler {
	return &ProjectHandler{projects: projects, users: users}
}

type CreateProjectReq struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      float64   `json:"budget"`
	Status      string    `json:"status"`
	ClientID    uint      `json:"client_id" binding:"required"`
	EmployeeIDs []uint    `json:"employee_ids"`
}

type UpdateProjectReq struct {
	ID          uint      `json:"id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      float64   `json:"budget"`
	Status      string    `json:"status"`
	ClientID    uint      `json:"client_id" binding:"required"`
	// nil means leave the assignment set alone; a present list (even empty)
	// replaces it wholesale
	EmployeeIDs *[]uint `json:"employee_ids"`
	Version     int     `json:"version"`
}

// ListProjects godoc
//
//	@Summary	List projects
//	@Tags		projects
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetProject godoc
//
//	@Summary	Get project
//	@Tags		projects
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Success	200	{object}	serializer.Response{data=model.Project}
//	@Router		/projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item, err := h.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// CreateProject godoc
//
//	@Summary	Create project
//	@Tags		projects
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Success	201	{object}	serializer.Response{data=model.Project}
//	@Router		/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item := model.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Status:      req.Status,
		ClientID:    req.ClientID,
	}
	if err := h.projects.Create(c.Request.Context(), &item, req.EmployeeIDs); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	When employee_ids is present the assignment set is replaced wholesale
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer						true	"Project ID"
//	@Param			payload	body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}
	item := model.Project{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Status:      req.Status,
		ClientID:    req.ClientID,
		Version:     req.Version,
	}
	if err := h.projects.Update(c.Request.Context(), &item, req.EmployeeIDs); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	// item carries the incremented version for the next optimistic update
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// DeleteProject godoc
//
//	@Summary	Delete project
//	@Tags		projects
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Success	200	{object}	serializer.Response{}
//	@Router		/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// FinishProject godoc
//
//	@Summary		Finish project
//	@Description	Set the project status to Finished and create its report
//	@Tags			projects
//	@Produce		json
//	@Param			id	path	integer	true	"Project ID"
//	@Success		201	{object}	serializer.Response{data=model.Report}
//	@Router			/projects/{id}/finish [post]
func (h *ProjectHandler) Finish(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	report, err := h.projects.Finish(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: report})
}

// MyProjects godoc
//
//	@Summary		My projects
//	@Description	Projects assigned to the session user's linked employee
//	@Tags			projects
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/projects/mine [get]
func (h *ProjectHandler) Mine(c *gin.Context) {
	p, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), p.UserID)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	if user.EmployeeID == nil {
		c.JSON(http.StatusOK, serializer.Response{Data: []model.Project{}})
		return
	}
	items, err := h.projects.ListByEmployee(c.Request.Context(), *user.EmployeeID)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}
