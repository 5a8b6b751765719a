package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
)

const sessionKey = "session"

// SessionLoad resolves the session cookie to its stored payload and puts it
// in the request context. Requests without a valid session stay anonymous;
// denying them is the role gate's job.
func SessionLoad(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		p, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "session store error", err))
			return
		}

		c.Set(sessionKey, p)
		c.Next()
	}
}

// CurrentSession returns the payload loaded by SessionLoad, if any.
func CurrentSession(c *gin.Context) (*session.Payload, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*session.Payload)
	return p, ok
}
