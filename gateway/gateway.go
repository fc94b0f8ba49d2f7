// Package gateway exposes the marketplace over HTTP: storefront and
// administrator operations plus the AI advisor endpoints.
package gateway

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/example/agrimart/pkg/ai"
	"github.com/example/agrimart/pkg/commerce"
	"github.com/example/agrimart/pkg/config"
	"github.com/example/agrimart/pkg/i18n"
	"github.com/example/agrimart/pkg/models"
	"github.com/example/agrimart/pkg/repository"
)

const fallbackPrices = "Price information is currently unavailable. Please try again in a few minutes."

type Gateway struct {
	config   *config.Config
	commerce *commerce.Commerce
	advisor  *ai.Client
	audit    *repository.AuditTrail
	logger   *zap.Logger
	router   *gin.Engine
}

func NewGateway(cfg *config.Config, logger *zap.Logger, core *commerce.Commerce, advisor *ai.Client) *Gateway {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	return &Gateway{
		config:   cfg,
		commerce: core,
		advisor:  advisor,
		logger:   logger,
		router:   router,
	}
}

func (g *Gateway) SetupRoutes() {
	// Health check
	g.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := g.router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", g.register)
			auth.POST("/login", g.login)
			auth.POST("/logout", g.logout)
			auth.GET("/session", g.session)
		}

		products := v1.Group("/products")
		{
			products.GET("", g.listProducts)
			products.POST("", g.createProduct)
			products.PUT("/:id", g.updateProduct)
			products.DELETE("/:id", g.deleteProduct)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", g.placeOrder)
			orders.GET("", g.listOrders)
			orders.PUT("/:id/status", g.updateOrderStatus)
		}

		v1.GET("/profile/:role", g.getProfile)
		v1.PUT("/profile/:role", g.saveProfile)

		v1.GET("/language", g.getLanguage)
		v1.PUT("/language", g.setLanguage)

		v1.GET("/audit", g.auditLog)

		advisor := v1.Group("/advisor")
		{
			advisor.POST("/diagnose", g.diagnoseCrop)
			advisor.GET("/market-prices", g.marketPrices)
			advisor.GET("/weather", g.weather)
			advisor.POST("/advice", g.farmingAdvice)
		}
	}

	// Swagger
	g.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (g *Gateway) Start() error {
	addr := fmt.Sprintf("%s:%d", g.config.Server.Host, g.config.Server.Port)
	g.logger.Info("Gateway starting", zap.String("address", addr))
	return g.router.Run(addr)
}

// Router exposes the underlying engine for in-process serving and tests.
func (g *Gateway) Router() *gin.Engine {
	return g.router
}

// AttachAuditTrail enables the read side of the audit endpoint. Without it
// the endpoint reports the trail as unavailable.
func (g *Gateway) AttachAuditTrail(trail *repository.AuditTrail) {
	g.audit = trail
}

// --- auth ---

type registerRequest struct {
	Mobile   string      `json:"mobile" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Name     string      `json:"name" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

func (g *Gateway) register(c *gin.Context) {
	var req registerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be USER or ADMIN"})
		return
	}
	if err := g.commerce.Register(c.Request.Context(), req.Mobile, req.Password, req.Name, req.Role); err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"role": req.Role})
}

type loginRequest struct {
	Mobile   string      `json:"mobile" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

func (g *Gateway) login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := g.commerce.Login(c.Request.Context(), req.Mobile, req.Password, req.Role)
	if err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

func (g *Gateway) logout(c *gin.Context) {
	if err := g.commerce.Logout(c.Request.Context()); err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (g *Gateway) session(c *gin.Context) {
	session, err := g.commerce.Session(c.Request.Context())
	if err != nil {
		g.renderError(c, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "role": session.Role})
}

// --- catalog ---

func (g *Gateway) listProducts(c *gin.Context) {
	products, err := g.commerce.Products(c.Request.Context())
	if err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

func (g *Gateway) createProduct(c *gin.Context) {
	var form commerce.ProductForm
	if err := c.BindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := g.commerce.UpsertProduct(c.Request.Context(), form, "")
	if err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (g *Gateway) updateProduct(c *gin.Context) {
	var form commerce.ProductForm
	if err := c.BindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := g.commerce.UpsertProduct(c.Request.Context(), form, c.Param("id"))
	if err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (g *Gateway) deleteProduct(c *gin.Context) {
	if err := g.commerce.RemoveProduct(c.Request.Context(), c.Param("id")); err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- orders ---

type placeOrderRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (g *Gateway) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := g.commerce.PlaceOrder(c.Request.Context(), req.ProductID)
	if err != nil {
		g.renderError(c, err)
		return
	}
	lang, _ := g.commerce.Language(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"message": i18n.T(lang, i18n.MsgOrderPlaced),
	})
}

func (g *Gateway) listOrders(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		orders []models.Order
		err    error
	)
	if mobile := c.Query("mobile"); mobile != "" {
		orders, err = g.commerce.OrdersFor(ctx, mobile)
	} else {
		orders, err = g.commerce.AllOrders(ctx)
	}
	if err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (g *Gateway) updateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.commerce.SetOrderStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
}

// --- profile ---

func (g *Gateway) getProfile(c *gin.Context) {
	role := models.Role(c.Param("role"))
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be USER or ADMIN"})
		return
	}
	profile, err := g.commerce.Profile(c.Request.Context(), role)
	if err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (g *Gateway) saveProfile(c *gin.Context) {
	role := models.Role(c.Param("role"))
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be USER or ADMIN"})
		return
	}
	var profile models.Profile
	if err := c.BindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := g.commerce.SaveProfile(c.Request.Context(), role, profile)
	if err != nil {
		g.renderError(c, err)
		return
	}
	lang, _ := g.commerce.Language(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"profile": saved,
		"message": i18n.T(lang, i18n.MsgProfileSaved),
	})
}

// --- language ---

func (g *Gateway) getLanguage(c *gin.Context) {
	lang, err := g.commerce.Language(c.Request.Context())
	if err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang})
}

type setLanguageRequest struct {
	Language models.Language `json:"language" binding:"required"`
}

func (g *Gateway) setLanguage(c *gin.Context) {
	var req setLanguageRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.commerce.SetLanguage(c.Request.Context(), req.Language); err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}

// --- audit ---

func (g *Gateway) auditLog(c *gin.Context) {
	if g.audit == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit trail is not configured"})
		return
	}
	limit := int64(20)
	if n, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && n > 0 {
		limit = n
	}
	entries, err := g.audit.Recent(c.Request.Context(), c.Query("entity"), limit)
	if err != nil {
		g.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
}

// --- advisor ---

// diagnoseCrop accepts a multipart image and returns the agronomist report.
// Analysis failures degrade to the fixed fallback message, never an error
// status.
func (g *Gateway) diagnoseCrop(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	report, err := g.advisor.DiagnoseCrop(c.Request.Context(), image, g.requestLanguage(c))
	if err != nil {
		g.logger.Warn("crop diagnosis failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"report": ai.FallbackDiagnosis, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

func (g *Gateway) marketPrices(c *gin.Context) {
	crop := c.Query("crop")
	location := c.Query("location")
	if crop == "" || location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crop and location are required"})
		return
	}
	report, err := g.advisor.MarketPrices(c.Request.Context(), crop, location, g.requestLanguage(c))
	if err != nil {
		g.logger.Warn("market price lookup failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"text": fallbackPrices, "sources": []ai.Source{}, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, report)
}

// weather returns null on any adapter failure so the dashboard keeps its
// previous values.
func (g *Gateway) weather(c *gin.Context) {
	var lat, lng float64
	if _, err := fmt.Sscan(c.Query("lat"), &lat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}
	if _, err := fmt.Sscan(c.Query("lng"), &lng); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}
	weather, err := g.advisor.WeatherByLocation(c.Request.Context(), lat, lng)
	if err != nil {
		g.logger.Warn("weather lookup failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"weather": nil, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weather": weather})
}

type adviceRequest struct {
	Query string `json:"query" binding:"required"`
}

func (g *Gateway) farmingAdvice(c *gin.Context) {
	var req adviceRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	advice, err := g.advisor.FarmingAdvice(c.Request.Context(), req.Query, g.requestLanguage(c))
	if err != nil {
		g.logger.Warn("farming advice failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"advice": "", "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

// requestLanguage resolves the language for an advisor call: explicit query
// parameter first, then the stored preference.
func (g *Gateway) requestLanguage(c *gin.Context) models.Language {
	if lang := models.Language(c.Query("lang")); lang.Valid() {
		return lang
	}
	lang, err := g.commerce.Language(c.Request.Context())
	if err != nil {
		return models.LanguageEnglish
	}
	return lang
}

// renderError maps a commerce error to an HTTP status and a message in the
// user's language.
func (g *Gateway) renderError(c *gin.Context, err error) {
	lang, _ := g.commerce.Language(c.Request.Context())

	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, commerce.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = i18n.T(lang, i18n.MsgInvalidCredentials)
	case errors.Is(err, commerce.ErrAlreadyExists):
		status = http.StatusConflict
		message = i18n.T(lang, i18n.MsgUserExists)
	case errors.Is(err, commerce.ErrWeakPassword):
		status = http.StatusBadRequest
		message = i18n.T(lang, i18n.MsgPasswordReq)
	case errors.Is(err, commerce.ErrMissingProfile):
		status = http.StatusBadRequest
		message = i18n.T(lang, i18n.MsgMissingProfile)
	case errors.Is(err, commerce.ErrOutOfStock):
		status = http.StatusConflict
		message = i18n.T(lang, i18n.MsgOutOfStock)
	case errors.Is(err, commerce.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, commerce.ErrProductNotFound), errors.Is(err, commerce.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commerce.ErrUnsupportedLanguage):
		status = http.StatusBadRequest
	default:
		g.logger.Error("request failed", zap.Error(err))
		message = "internal error"
	}

	c.JSON(status, gin.H{"error": message})
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
