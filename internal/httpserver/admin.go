package httpserver

import (
	"errors"
	"net/http"

	"pastelaria/internal/domain"
	ordersvc "pastelaria/internal/service/order"
	"github.com/gin-gonic/gin"
)

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func dashboardHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		totalOrders, err := deps.OrderSvc.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the dashboard"})
			return
		}
		totalProducts, err := deps.CatalogSvc.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the dashboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"totalOrders":   totalOrders,
			"totalProducts": totalProducts,
		})
	}
}

func listOrdersHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := deps.OrderSvc.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func updateOrderStatusHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in statusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		order, err := deps.OrderSvc.UpdateStatus(c.Request.Context(), id, in.Status)
		if err != nil {
			switch {
			case errors.Is(err, ordersvc.ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update the order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
