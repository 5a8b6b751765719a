package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/config"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/service"
)

type AccountHandler struct {
	svc   service.AuthService
	store session.Store
	cfg   *config.Config
}

func NewAccountHandler(svc service.AuthService, store session.Store, cfg *config.Config) *AccountHandler {
	return &AccountHandler{svc: svc, store: store, cfg: cfg}
}

type LoginReq struct {
	Username string `form:"username" json:"username" binding:"required" example:"admin"`
	Password string `form:"password" json:"password" binding:"required" example:"secret"`
}

type LoginResp struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Validate credentials and open a server-side session
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.LoginReq	true	"Login payload"
//	@Success		200	{object}	serializer.Response{data=handler.LoginResp}
//	@Router			/account/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}

	id, err := h.store.Create(c.Request.Context(), session.Payload{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "session store error", err))
		return
	}

	maxAge := h.cfg.Session.TTLMinutes * 60
	c.SetCookie(h.cfg.Session.CookieName, id, maxAge, "/", "", h.cfg.Session.Secure, true)
	c.JSON(http.StatusOK, serializer.Response{Data: LoginResp{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Clear the session unconditionally; always succeeds
//	@Tags			account
//	@Produce		json
//	@Success		200	{object}	serializer.Response{}
//	@Router			/account/logout [get]
func (h *AccountHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.cfg.Session.CookieName); err == nil && id != "" {
		// best effort; logout always succeeds
		_ = h.store.Delete(c.Request.Context(), id)
	}
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", h.cfg.Session.Secure, true)
	c.JSON(http.StatusOK, serializer.Response{Msg: "logged out"})
}

// AccessDenied godoc
//
//	@Summary		Access denied
//	@Description	Target of role-gate redirects
//	@Tags			account
//	@Produce		json
//	@Success		403	{object}	serializer.Response{}
//	@Router			/account/access-denied [get]
func (h *AccountHandler) AccessDenied(c *gin.Context) {
	c.JSON(http.StatusForbidden, serializer.Err(http.StatusForbidden, "access denied", nil))
}
