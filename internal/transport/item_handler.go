package transport

import (
	"math/big"
	"net/http"

	"item-showcase/internal/domain"
	"item-showcase/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemQueryParam is the external name of the item lookup query
const ItemQueryParam = "item-query"

// itemQuery is the lookup input when item_id is unconstrained
type itemQuery struct {
	ItemID *big.Int `json:"item_id" validate:"-"`
	Q      string   `json:"item-query" validate:"required,min=3,max=50,pattern=fixedquery"`
}

// boundedItemQuery is the lookup input of the later snapshots
type boundedItemQuery struct {
	ItemID int      `json:"item_id" validate:"gte=1,lte=1000"`
	Q      string   `json:"item-query" validate:"required,min=3,max=50,pattern=fixedquery"`
	Size   *float64 `json:"size" validate:"omitempty,gt=0,lt=10.5"`
}

// ItemRules are the per-snapshot differences of the item routes
type ItemRules struct {
	// BoundedID restricts item_id to [1, 1000] and accepts the size query
	BoundedID bool
	// ResponseModel filters the create response down to the item fields
	ResponseModel bool
}

// ItemHandler handles the item routes for one item shape
type ItemHandler[T domain.Product] struct {
	newItem func() T
	rules   ItemRules
	logger  *zap.Logger
}

// NewItemHandler creates a new ItemHandler. newItem returns an item carrying
// its field defaults; request bodies are decoded over it.
func NewItemHandler[T domain.Product](logger *zap.Logger, newItem func() T, rules ItemRules) *ItemHandler[T] {
	return &ItemHandler[T]{
		newItem: newItem,
		rules:   rules,
		logger:  logger,
	}
}

// RegisterRoutes registers all item routes
func (h *ItemHandler[T]) RegisterRoutes(r chi.Router) {
	r.Get("/items/{item_id}", h.ReadItem)
	r.Post("/items/", h.CreateItem)
	r.Put("/items/{item_id}", h.UpdateItem)
}

// ReadItem godoc
// @Summary Read item
// @Description Echoes the validated lookup parameters. Snapshots 2 and 3 bound item_id to [1, 1000] and accept size.
// @Tags Items
// @Produce json
// @Param item_id path integer true "The ID of item to get"
// @Param item-query query string true "Awesome Item. This Item is absolutely awesome. Deprecated." minlength(3) maxlength(50)
// @Param size query number false "Snapshots 2 and 3 only, 0 < size < 10.5"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} middleware.ErrorResponse
// @Router /items/{item_id} [get]
func (h *ItemHandler[T]) ReadItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := middleware.ParseIntParam("item_id", chi.URLParam(r, "item_id"))
	if err != nil {
		h.reject(w, "Item lookup", err)
		return
	}
	q := r.URL.Query().Get(ItemQueryParam)

	if !h.rules.BoundedID {
		query := itemQuery{ItemID: itemID, Q: q}
		if err := middleware.ValidateRequest(query); err != nil {
			h.reject(w, "Item lookup", err)
			return
		}

		middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"item_id": query.ItemID,
			"q":       query.Q,
		})
		return
	}

	size, err := middleware.ParseFloatParam("size", r.URL.Query().Get("size"))
	if err != nil {
		h.reject(w, "Item lookup", err)
		return
	}

	query := boundedItemQuery{ItemID: middleware.ClampInt(itemID), Q: q, Size: size}
	if err := middleware.ValidateRequest(query); err != nil {
		h.reject(w, "Item lookup", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"item_id": query.ItemID,
		"q":       query.Q,
		"size":    query.Size,
	})
}

// CreateItem godoc
// @Summary Create item
// @Description Echoes the item, adding full_price when it carries a tax. Snapshots 2 and 3 filter the response to the item fields.
// @Tags Items
// @Accept json
// @Produce json
// @Param item body domain.Item true "Item"
// @Success 200 {object} domain.Item
// @Failure 422 {object} middleware.ErrorResponse
// @Router /items/ [post]
func (h *ItemHandler[T]) CreateItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.decodeItem(r)
	if err != nil {
		h.reject(w, "Item creation", err)
		return
	}

	result, err := CreateItemResult(item)
	if err != nil {
		h.logger.Error("Failed to build item result", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	if h.rules.ResponseModel {
		middleware.RespondWithModel[T](w, http.StatusOK, result)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, result)
}

// UpdateItem godoc
// @Summary Update item
// @Description Reports which item would be updated and under what name.
// @Tags Items
// @Accept json
// @Produce json
// @Param item_id path integer true "Item ID"
// @Param item body domain.Item true "Item"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} middleware.ErrorResponse
// @Router /items/{item_id} [put]
func (h *ItemHandler[T]) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := middleware.ParseIntParam("item_id", chi.URLParam(r, "item_id"))
	if err != nil {
		h.reject(w, "Item update", err)
		return
	}

	item, err := h.decodeItem(r)
	if err != nil {
		h.reject(w, "Item update", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"item_name": item.ItemName(),
		"item_id":   itemID,
	})
}

// defaulter is implemented by item shapes whose defaults must survive an
// explicit null in the body
type defaulter[T any] interface {
	WithDefaults() T
}

func (h *ItemHandler[T]) decodeItem(r *http.Request) (T, error) {
	item := h.newItem()
	if err := middleware.DecodeAndValidate(r, &item); err != nil {
		return item, err
	}
	if d, ok := any(item).(defaulter[T]); ok {
		item = d.WithDefaults()
	}
	return item, nil
}

func (h *ItemHandler[T]) reject(w http.ResponseWriter, operation string, err error) {
	h.logger.Debug(operation+" validation failed", zap.Error(err))
	middleware.RespondWithInvalidInput(w, err)
}

// CreateItemResult is the item as a mapping plus full_price when tax is
// non-null and non-zero.
func CreateItemResult(item domain.Product) (map[string]interface{}, error) {
	result, err := middleware.FilterToModel[map[string]interface{}](item)
	if err != nil {
		return nil, err
	}

	if fullPrice, ok := item.FullPrice(); ok {
		result["full_price"] = fullPrice
	}
	return result, nil
}
