package http

import (
	"net/http"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Services bundles what the handlers call into.
type Services struct {
	Orders   *services.OrderService
	Catalog  *services.CatalogService
	Pincodes *services.PincodeService
	Admin    *services.AdminService
	Seed     *services.SeedService
	Uploads  *services.UploadService
}

type Handler struct {
	Services
	live http.Handler
	log  zerolog.Logger
}

// NewHandler serves the JSON API. live answers websocket upgrades on /api/ws.
func NewHandler(s Services, live http.Handler, log zerolog.Logger) *Handler {
	return &Handler{Services: s, live: live, log: log}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("", h.Root)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)

	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products", h.CreateProduct)
	api.PUT("/products/:id", h.UpdateProduct)
	api.DELETE("/products/:id", h.DeleteProduct)

	api.POST("/upload", h.UploadImage)

	api.GET("/orders", h.ListOrders)
	api.POST("/orders", h.CreateOrder)
	api.PUT("/orders/:id/status", h.UpdateOrderStatus)

	api.GET("/pincodes", h.ListPincodes)
	api.POST("/pincodes", h.CreatePincode)
	api.DELETE("/pincodes/:id", h.DeletePincode)
	api.GET("/pincodes/verify/:code", h.VerifyPincode)

	api.POST("/admin/verify", h.VerifyAdmin)
	api.POST("/init-data", h.InitData)

	api.GET("/ws", gin.WrapH(h.live))
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Fresh Meat Hub API"})
}

func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if !h.bindJSON(c, &req, "Name is required") {
		return
	}
	cat, err := h.Catalog.CreateCategory(c.Request.Context(), req.Name, req.Image)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.Catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Catalog.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if !h.bindJSON(c, &req, "Name, price, and category are required") {
		return
	}
	p, err := h.Catalog.CreateProduct(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if !h.bindJSON(c, &req, "Invalid product update") {
		return
	}
	p, err := h.Catalog.UpdateProduct(c.Request.Context(), c.Param("id"), req.toPatch())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.Catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.fail(c, services.ErrNotAnImage)
		return
	}
	src, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer src.Close()

	saved, err := h.Uploads.SaveImage(fh.Filename, src)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) ListOrders(c *gin.Context) {
	filter := domain.OrderFilter{
		Date:   c.Query("date"),
		Status: domain.OrderStatus(c.Query("status")),
	}
	orders, err := h.Orders.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !h.bindJSON(c, &req, "All fields are required") {
		return
	}
	order, err := h.Orders.CreateOrder(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !h.bindJSON(c, &req, "Invalid status. Must be one of: "+domain.StatusList()) {
		return
	}
	if err := h.Orders.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateStatusResponse{Success: true, Status: req.Status})
}

func (h *Handler) ListPincodes(c *gin.Context) {
	pins, err := h.Pincodes.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pins)
}

func (h *Handler) CreatePincode(c *gin.Context) {
	var req CreatePincodeRequest
	if !h.bindJSON(c, &req, "Code is required") {
		return
	}
	p, err := h.Pincodes.Create(c.Request.Context(), req.Code, req.Active)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePincode(c *gin.Context) {
	if err := h.Pincodes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) VerifyPincode(c *gin.Context) {
	ok, err := h.Pincodes.Verify(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, VerifyPincodeResponse{Valid: ok})
}

func (h *Handler) VerifyAdmin(c *gin.Context) {
	var req AdminVerifyRequest
	if !h.bindJSON(c, &req, "Invalid request body") {
		return
	}
	if err := h.Admin.Verify(req.pin()); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "PIN verified"})
}

func (h *Handler) InitData(c *gin.Context) {
	msg, err := h.Seed.Init(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}
