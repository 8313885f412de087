package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"pastelaria/internal/domain"
	ordersvc "pastelaria/internal/service/order"
	"github.com/gin-gonic/gin"
)

func viewCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		c.JSON(http.StatusOK, gin.H{
			"items":   sess.Cart,
			"total":   sess.Cart.Total(),
			"notices": deps.Sessions.PopNotices(sess),
		})
	}
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "productID")
		if !ok {
			return
		}
		sess := currentSession(c)

		product, err := deps.CartSvc.Add(c.Request.Context(), sess.Cart, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add the item"})
			return
		}

		sess.Flash("success", fmt.Sprintf("%q added to cart", product.Name))
		deps.Sessions.Save(*sess)

		c.JSON(http.StatusOK, gin.H{
			"items": sess.Cart,
			"total": sess.Cart.Total(),
		})
	}
}

func removeCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "productID")
		if !ok {
			return
		}
		sess := currentSession(c)

		deps.CartSvc.Remove(sess.Cart, id)
		sess.Flash("info", "item removed from cart")
		deps.Sessions.Save(*sess)

		c.JSON(http.StatusOK, gin.H{
			"items": sess.Cart,
			"total": sess.Cart.Total(),
		})
	}
}

func checkoutHandler(deps Deps, m *metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)

		order, err := deps.OrderSvc.Checkout(c.Request.Context(), sess.CustomerID, sess.Cart)
		if err != nil {
			if errors.Is(err, ordersvc.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "your cart is empty"})
				return
			}
			// The cart is left untouched so the customer can retry.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not complete your order"})
			return
		}

		sess.Cart.Clear()
		sess.Flash("success", "order placed successfully!")
		deps.Sessions.Save(*sess)
		m.ordersCommitted.Inc()

		c.JSON(http.StatusCreated, gin.H{
			"orderId": order.ID,
			"total":   order.Total,
			"status":  order.Status,
		})
	}
}

func orderConfirmationHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		sess := currentSession(c)

		order, err := deps.OrderSvc.Get(c.Request.Context(), id, sess.CustomerID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrForbidden):
				c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the order"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"order":   order,
			"notices": deps.Sessions.PopNotices(sess),
		})
	}
}
