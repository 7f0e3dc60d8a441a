package routes

import (
	"productivity_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathShopping = "/shopping"
)

func addShoppingRoutes(rg *gin.RouterGroup, h *handlers.ShoppingListHandler) {
	shopping := rg.Group(PathShopping)
	{
		shopping.GET("", h.ListShoppingLists)
		shopping.POST("", h.CreateShoppingList)
		shopping.GET("/recent", h.RecentShoppingLists)
		shopping.GET("/stats", h.ShoppingStats)
		shopping.GET("/analytics", h.ShoppingAnalytics)

		shopping.GET("/:id", h.GetShoppingList)
		shopping.PUT("/:id", h.UpdateShoppingList)
		shopping.DELETE("/:id", h.DeleteShoppingList)
		shopping.PATCH("/:id/archive", h.ArchiveShoppingList)
		shopping.POST("/:id/duplicate", h.DuplicateShoppingList)

		shopping.POST("/:id/items", h.AddShoppingItem)
		shopping.POST("/:id/items/bulk", h.BulkUpdateShoppingItems)
		shopping.PUT("/:id/items/:itemId", h.UpdateShoppingItem)
		shopping.DELETE("/:id/items/:itemId", h.RemoveShoppingItem)
		shopping.PATCH("/:id/items/:itemId/toggle", h.ToggleShoppingItem)
	}
}
