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

type ReportHandler struct {
	reports service.ReportService
	users   service.UserService
}

func NewReportHandler(reports service.ReportService, users service.UserService) *ReportHandler {
	return &ReportHandler{reports: reports, users: users}
}

type CreateReportReq struct {
	ReportDate time.Time `json:"report_date"`
	Value      float64   `json:"value"`
	TotalHours int       `json:"total_hours"`
	ProjectID  uint      `json:"project_id" binding:"required"`
}

type UpdateReportReq struct {
	ID         uint      `json:"id" binding:"required"`
	ReportDate time.Time `json:"report_date"`
	Value      float64   `json:"value"`
	TotalHours int       `json:"total_hours"`
	ProjectID  uint      `json:"project_id" binding:"required"`
	Version    int       `json:"version"`
}

// ListReports godoc
//
//	@Summary	List reports
//	@Tags		reports
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Report}
//	@Router		/reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	items, err := h.reports.List(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetReport godoc
//
//	@Summary	Get report
//	@Tags		reports
//	@Produce	json
//	@Param		id	path	integer	true	"Report ID"
//	@Success	200	{object}	serializer.Response{data=model.Report}
//	@Router		/reports/{id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item, err := h.reports.GetByID(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// CreateReport godoc
//
//	@Summary	Create report
//	@Tags		reports
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateReportReq	true	"CreateReport payload"
//	@Success	201	{object}	serializer.Response{data=model.Report}
//	@Router		/reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	req := CreateReportReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	item := model.Report{
		ReportDate: req.ReportDate,
		Value:      req.Value,
		TotalHours: req.TotalHours,
		ProjectID:  req.ProjectID,
	}
	if err := h.reports.Create(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateReport godoc
//
//	@Summary	Update report
//	@Tags		reports
//	@Accept		json
//	@Produce	json
//	@Param		id		path	integer					true	"Report ID"
//	@Param		payload	body	handler.UpdateReportReq	true	"UpdateReport payload"
//	@Success	200	{object}	serializer.Response{data=model.Report}
//	@Router		/reports/{id} [put]
func (h *ReportHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateReportReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}
	item := model.Report{
		ID:         id,
		ReportDate: req.ReportDate,
		Value:      req.Value,
		TotalHours: req.TotalHours,
		ProjectID:  req.ProjectID,
		Version:    req.Version,
	}
	if err := h.reports.Update(c.Request.Context(), &item); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	// item carries the incremented version for the next optimistic update
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// DeleteReport godoc
//
//	@Summary	Delete report
//	@Tags		reports
//	@Produce	json
//	@Param		id	path	integer	true	"Report ID"
//	@Success	200	{object}	serializer.Response{}
//	@Router		/reports/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.reports.Delete(c.Request.Context(), id); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// MyReports godoc
//
//	@Summary		My reports
//	@Description	Reports of projects owned by the session user's linked client
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Report}
//	@Router			/reports/mine [get]
func (h *ReportHandler) Mine(c *gin.Context) {
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
	if user.ClientID == nil {
		c.JSON(http.StatusOK, serializer.Response{Data: []model.Report{}})
		return
	}
	items, err := h.reports.ListByClient(c.Request.Context(), *user.ClientID)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}
