package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"pastelaria/internal/domain"
	customersvc "pastelaria/internal/service/customer"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customersvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		customer, err := deps.CustomerSvc.Register(c.Request.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrAlreadyExists):
				c.JSON(http.StatusConflict, gin.H{"error": "this phone number is already registered"})
			case errors.Is(err, customersvc.ErrConsentRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": "you must accept the data handling terms"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"customer": customer,
			"message":  "registration complete, please log in",
		})
	}
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone and password are required"})
			return
		}

		customer, err := deps.CustomerSvc.Login(c.Request.Context(), in.Phone, in.Password)
		if err != nil {
			if errors.Is(err, customersvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid phone or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log in"})
			return
		}

		// Any previous session is discarded; identity and the cached admin
		// flag are fixed for the new session's lifetime.
		if old := currentSession(c); old != nil {
			deps.Sessions.Destroy(old.Token)
		}
		sess := deps.Sessions.Start()
		sess.CustomerID = customer.ID
		sess.CustomerName = customer.Name
		sess.IsAdmin = customer.IsAdmin
		sess.Flash("success", fmt.Sprintf("welcome back, %s!", customer.Name))
		deps.Sessions.Save(sess)

		c.SetCookie(sessionCookieName, sess.Token, int(deps.Sessions.TTL().Seconds()), "/", "", false, true)

		redirect := "/menu"
		if customer.IsAdmin {
			redirect = "/admin/dashboard"
		}
		c.JSON(http.StatusOK, gin.H{
			"customer": gin.H{
				"id":      customer.ID,
				"name":    customer.Name,
				"isAdmin": customer.IsAdmin,
			},
			"redirect": redirect,
		})
	}
}

func logoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := currentSession(c); sess != nil {
			deps.Sessions.Destroy(sess.Token)
		}
		c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "you have been logged out"})
	}
}
