package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-manager/internal/usecase/inventory"
)

// ======================================================
// HANDLER
// ======================================================

type InventoryHandler struct {
	list    *inventory.ListProducts
	barcode *inventory.FindByBarcode
	save    *inventory.SaveProduct
	remove  *inventory.DeleteProduct
	adjust  *inventory.AdjustStock
	sell    *inventory.SellProduct
	sales   *inventory.ListSales
	stats   *inventory.SalesStats
	image   *inventory.UploadProductImage

	maxUpload int64
}

func NewInventoryHandler(
	list *inventory.ListProducts,
	barcode *inventory.FindByBarcode,
	save *inventory.SaveProduct,
	remove *inventory.DeleteProduct,
	adjust *inventory.AdjustStock,
	sell *inventory.SellProduct,
	sales *inventory.ListSales,
	stats *inventory.SalesStats,
	image *inventory.UploadProductImage,
	maxUpload int64,
) *InventoryHandler {
	return &InventoryHandler{
		list:      list,
		barcode:   barcode,
		save:      save,
		remove:    remove,
		adjust:    adjust,
		sell:      sell,
		sales:     sales,
		stats:     stats,
		image:     image,
		maxUpload: maxUpload,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Barcode     string          `json:"barcode"`
}

type StockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type SellRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (r ProductRequest) input() inventory.ProductInput {
	return inventory.ProductInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Cost:        r.Cost,
		Price:       r.Price,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		Barcode:     r.Barcode,
	}
}

// ======================================================
// PRODUCTS
// ======================================================

// List GET /products?low=true
func (h *InventoryHandler) List(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	products, err := h.list.Execute(c.Request.Context(), a, c.Query("low") == "true")
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, products)
}

func (h *InventoryHandler) FindByBarcode(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	p, err := h.barcode.Execute(c.Request.Context(), a, c.Param("barcode"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.save.Execute(c.Request.Context(), a, "", req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.save.Execute(c.Request.Context(), a, c.Param("id"), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), a, c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// AdjustStock PATCH /products/:id/stock {"delta": n}
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req StockRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.adjust.Execute(c.Request.Context(), a, c.Param("id"), req.Delta)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

// UploadImage recebe multipart com o campo "image".
func (h *InventoryHandler) UploadImage(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Envie a imagem no campo image.")
		return
	}
	if h.maxUpload > 0 && fh.Size > h.maxUpload {
		httperr.BadRequest(c, "image_too_large", "Imagem muito grande.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}
	defer f.Close()

	url, err := h.image.Execute(c.Request.Context(), a, c.Param("id"), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"image_url": url})
}

// ======================================================
// SALES
// ======================================================

func (h *InventoryHandler) Sell(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var req SellRequest
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.sell.Execute(c.Request.Context(), a, req.ProductID, req.Quantity)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, sale)
}

// ListSales GET /sales?from=YYYY-MM-DD&to=YYYY-MM-DD (UTC, to inclusivo)
func (h *InventoryHandler) ListSales(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	var from, to time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
			return
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Data final inválida.")
			return
		}
		to = t.AddDate(0, 0, 1)
	}

	sales, err := h.sales.Execute(c.Request.Context(), a, from, to)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, sales)
}

func (h *InventoryHandler) Stats(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}

	summary, err := h.stats.Execute(c.Request.Context(), a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, summary)
}
