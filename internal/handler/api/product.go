package api

import (
	"net/http"

	resdto "mercado-tracker/internal/handler/dto/response"
	"mercado-tracker/internal/handler/httperr"
	"mercado-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	q queries.ProductQueries
}

func NewProductHandler(q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{q: q}
}

// @Summary List products
// @Description List every product ever found, newest first
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductList(views))
}
