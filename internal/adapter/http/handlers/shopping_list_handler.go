package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	request "productivity_api/internal/adapter/http/dto/request"
	response "productivity_api/internal/adapter/http/dto/response"
	"productivity_api/internal/adapter/http/middleware"
	"productivity_api/internal/domain/entities"
	"productivity_api/internal/usecase"
	"productivity_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidShoppingPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidShoppingQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

// ShoppingListHandler serves the /shopping resource. Every route runs behind
// middleware.Auth; the owner is always the authenticated user.
type ShoppingListHandler struct {
	usecase usecase.IShoppingListUseCase
	now     func() time.Time
}

var jsonFieldNames sync.Once

func NewShoppingListHandler(uc usecase.IShoppingListUseCase) *ShoppingListHandler {
	jsonFieldNames.Do(useJSONFieldNames)
	return &ShoppingListHandler{usecase: uc, now: time.Now}
}

// ListShoppingLists godoc
// @Summary List shopping lists
// @Tags shopping
// @Produce json
// @Param status query string false "active|completed|archived|all"
// @Param category query string false "list category or all"
// @Param sortBy query string false "createdAt|updatedAt|name|dueDate|totalEstimatedCost"
// @Param sortOrder query string false "asc|desc"
// @Param page query int false "page, from 1"
// @Param limit query int false "page size, up to 100"
// @Success 200 {object} response.ShoppingListPageResponse
// @Failure 400 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping [get]
func (h *ShoppingListHandler) ListShoppingLists(c *gin.Context) {
	var q request.ListShoppingListsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidShoppingQuery.HTTPStatus, errInvalidShoppingQuery.ToHTTPError())
		return
	}

	page, err := h.usecase.List(c.Request.Context(), middleware.UserID(c), q.ToListQuery())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromListPage(page, h.now()))
}

// RecentShoppingLists godoc
// @Summary Most recently updated active or completed lists
// @Tags shopping
// @Produce json
// @Param limit query int false "default 3"
// @Success 200 {array} response.ShoppingListResponse
// @Security Bearer
// @Router /shopping/recent [get]
func (h *ShoppingListHandler) RecentShoppingLists(c *gin.Context) {
	var q request.RecentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidShoppingQuery.HTTPStatus, errInvalidShoppingQuery.ToHTTPError())
		return
	}

	lists, err := h.usecase.Recent(c.Request.Context(), middleware.UserID(c), q.Limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromShoppingLists(lists, h.now()))
}

// ShoppingStats godoc
// @Summary Per-user shopping statistics
// @Tags shopping
// @Produce json
// @Success 200 {object} response.StatsResponse
// @Security Bearer
// @Router /shopping/stats [get]
func (h *ShoppingListHandler) ShoppingStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStats(stats))
}

// ShoppingAnalytics godoc
// @Summary Item totals per category
// @Tags shopping
// @Produce json
// @Param startDate query string false "lists created at or after, RFC 3339 or YYYY-MM-DD"
// @Param endDate query string false "lists created at or before, RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} response.AnalyticsResponse
// @Failure 400 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/analytics [get]
func (h *ShoppingListHandler) ShoppingAnalytics(c *gin.Context) {
	var q request.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidShoppingQuery.HTTPStatus, errInvalidShoppingQuery.ToHTTPError())
		return
	}
	from, to, err := q.ToRange()
	if err != nil {
		h.fail(c, err)
		return
	}

	categories, err := h.usecase.Analytics(c.Request.Context(), middleware.UserID(c), from, to)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAnalytics(categories))
}

// CreateShoppingList godoc
// @Summary Create a shopping list
// @Tags shopping
// @Accept json
// @Produce json
// @Param payload body request.CreateShoppingListRequest true "list"
// @Success 201 {object} response.ShoppingListResponse
// @Failure 400 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping [post]
func (h *ShoppingListHandler) CreateShoppingList(c *gin.Context) {
	var payload request.CreateShoppingListRequest
	if !h.bindJSON(c, &payload) {
		return
	}

	list, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), payload.ToListInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromShoppingList(list, h.now()))
}

// GetShoppingList godoc
// @Summary Get a shopping list
// @Tags shopping
// @Produce json
// @Param id path string true "list id"
// @Success 200 {object} response.ShoppingListResponse
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id} [get]
func (h *ShoppingListHandler) GetShoppingList(c *gin.Context) {
	list, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	h.respond(c, http.StatusOK, list, err)
}

// UpdateShoppingList godoc
// @Summary Update list fields
// @Tags shopping
// @Accept json
// @Produce json
// @Param id path string true "list id"
// @Param payload body request.UpdateShoppingListRequest true "fields to change"
// @Success 200 {object} response.ShoppingListResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id} [put]
func (h *ShoppingListHandler) UpdateShoppingList(c *gin.Context) {
	var payload request.UpdateShoppingListRequest
	if !h.bindJSON(c, &payload) {
		return
	}

	list, err := h.usecase.UpdateList(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ToListPatch())
	h.respond(c, http.StatusOK, list, err)
}

// DeleteShoppingList godoc
// @Summary Delete a shopping list
// @Tags shopping
// @Produce json
// @Param id path string true "list id"
// @Success 200 {object} response.ShoppingListResponse
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id} [delete]
func (h *ShoppingListHandler) DeleteShoppingList(c *gin.Context) {
	list, err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	h.respond(c, http.StatusOK, list, err)
}

// AddShoppingItem godoc
// @Summary Add an item
// @Tags shopping
// @Accept json
// @Produce json
// @Param id path string true "list id"
// @Param payload body request.ItemRequest true "item"
// @Success 201 {object} response.ShoppingListResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id}/items [post]
func (h *ShoppingListHandler) AddShoppingItem(c *gin.Context) {
	var payload request.ItemRequest
	if !h.bindJSON(c, &payload) {
		return
	}

	list, err := h.usecase.AddItem(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ToItemInput())
	h.respond(c, http.StatusCreated, list, err)
}

// UpdateShoppingItem godoc
// @Summary Update an item
// @Tags shopping
// @Accept json
// @Produce json
// @Param id path string true "list id"
// @Param itemId path string true "item id"
// @Param payload body request.UpdateItemRequest true "fields to change"
// @Success 200 {object} response.ShoppingListResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id}/items/{itemId} [put]
func (h *ShoppingListHandler) UpdateShoppingItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if !h.bindJSON(c, &payload) {
		return
	}

	list, err := h.usecase.UpdateItem(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("itemId"), payload.ToItemPatch())
	h.respond(c, http.StatusOK, list, err)
}

// ToggleShoppingItem godoc
// @Summary Flip an item's completed flag
// @Tags shopping
// @Produce json
// @Param id path string true "list id"
// @Param itemId path string true "item id"
// @Success 200 {object} response.ShoppingListResponse
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id}/items/{itemId}/toggle [patch]
func (h *ShoppingListHandler) ToggleShoppingItem(c *gin.Context) {
	list, err := h.usecase.ToggleItem(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("itemId"))
	h.respond(c, http.StatusOK, list, err)
}

// RemoveShoppingItem godoc
// @Summary Remove an item
// @Tags shopping
// @Produce json
// @Param id path string true "list id"
// @Param itemId path string true "item id"
// @Success 200 {object} response.ShoppingListResponse
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id}/items/{itemId} [delete]
func (h *ShoppingListHandler) RemoveShoppingItem(c *gin.Context) {
	list, err := h.usecase.RemoveItem(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("itemId"))
	h.respond(c, http.StatusOK, list, err)
}

// BulkUpdateShoppingItems godoc
// @Summary Apply one action to many items
// @Tags shopping
// @Accept json
// @Produce json
// @Param id path string true "list id"
// @Param payload body request.BulkItemsRequest true "complete|uncomplete|delete|update"
// @Success 200 {object} response.BulkItemsResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id}/items/bulk [post]
func (h *ShoppingListHandler) BulkUpdateShoppingItems(c *gin.Context) {
	var payload request.BulkItemsRequest
	if !h.bindJSON(c, &payload) {
		return
	}

	list, updated, err := h.usecase.BulkUpdateItems(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ToBulkRequest())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBulkResult(list, updated, h.now()))
}

// ArchiveShoppingList godoc
// @Summary Archive a shopping list
// @Tags shopping
// @Produce json
// @Param id path string true "list id"
// @Success 200 {object} response.ShoppingListResponse
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id}/archive [patch]
func (h *ShoppingListHandler) ArchiveShoppingList(c *gin.Context) {
	list, err := h.usecase.Archive(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	h.respond(c, http.StatusOK, list, err)
}

// DuplicateShoppingList godoc
// @Summary Copy a list with every item reset to pending
// @Tags shopping
// @Produce json
// @Param id path string true "list id"
// @Success 201 {object} response.ShoppingListResponse
// @Failure 404 {object} pkg.HTTPError
// @Security Bearer
// @Router /shopping/{id}/duplicate [post]
func (h *ShoppingListHandler) DuplicateShoppingList(c *gin.Context) {
	list, err := h.usecase.Duplicate(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	h.respond(c, http.StatusCreated, list, err)
}

// bindJSON decodes the body into payload. Type mismatches and binding tag
// failures come back as VALIDATION_FAILED naming the field; anything else
// that is not valid JSON is INVALID_PAYLOAD.
func (h *ShoppingListHandler) bindJSON(c *gin.Context, payload any) bool {
	err := c.ShouldBindJSON(payload)
	if err == nil {
		return true
	}
	if fields := bindingFieldErrors(err); len(fields) > 0 {
		h.fail(c, entities.NewValidationError(fields...))
		return false
	}
	c.JSON(errInvalidShoppingPayload.HTTPStatus, errInvalidShoppingPayload.ToHTTPError())
	return false
}

func bindingFieldErrors(err error) []entities.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []entities.FieldError{{Field: typeErr.Field, Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]entities.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, entities.FieldError{Field: bindingFieldPath(fe), Message: bindingMessage(fe)})
	}
	return fields
}

// bindingFieldPath drops the request type from the namespace, so
// "CreateShoppingListRequest.items[0].name" becomes "items[0].name".
func bindingFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "is invalid"
	}
}

// useJSONFieldNames makes gin's validator report json names instead of Go
// field names.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

func (h *ShoppingListHandler) respond(c *gin.Context, status int, list entities.ShoppingList, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(status, response.FromShoppingList(list, h.now()))
}

func (h *ShoppingListHandler) fail(c *gin.Context, err error) {
	appErr := mapShoppingListError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapShoppingListError(err error) *pkg.AppError {
	var validationErr *entities.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusBadRequest).WithDetails(validationErr.Fields)
	case errors.Is(err, usecase.ErrInvalidListID), errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Malformed identifier", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "missing or invalid access token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrShoppingListNotFound):
		return pkg.NewDomainErrorSimple("SHOPPING_LIST_NOT_FOUND", "Shopping list not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrShoppingListConflict):
		return pkg.NewDomainErrorSimple("SHOPPING_LIST_CONFLICT", "Shopping list was modified concurrently, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
