package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/merxlab/merx/pkg/services"
)

type createProductRequest struct {
	AgentID             string            `json:"agent_id" binding:"required"`
	Name                string            `json:"name" binding:"required"`
	Description         string            `json:"description"`
	DetailedDescription string            `json:"detailed_description"`
	Price               float64           `json:"price"`
	Currency            string            `json:"currency"`
	Category            string            `json:"category"`
	Features            []string          `json:"features"`
	Specifications      map[string]string `json:"specifications"`
	StockStatus         string            `json:"stock_status"`
	SKU                 string            `json:"sku"`
	IsFeatured          bool              `json:"is_featured"`
}

type updateProductRequest struct {
	Name                *string            `json:"name"`
	Description         *string            `json:"description"`
	DetailedDescription *string            `json:"detailed_description"`
	Price               *float64           `json:"price"`
	Currency            *string            `json:"currency"`
	Category            *string            `json:"category"`
	Features            *[]string          `json:"features"`
	Specifications      *map[string]string `json:"specifications"`
	StockStatus         *string            `json:"stock_status"`
	SKU                 *string            `json:"sku"`
	IsFeatured          *bool              `json:"is_featured"`
	IsActive            *bool              `json:"is_active"`
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	product, err := s.deps.Products.Create(c.Request.Context(), callerID(c), req.AgentID, services.ProductInput{
		Name:                req.Name,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Price:               req.Price,
		Currency:            req.Currency,
		Category:            req.Category,
		Features:            req.Features,
		Specifications:      req.Specifications,
		StockStatus:         req.StockStatus,
		SKU:                 req.SKU,
		IsFeatured:          req.IsFeatured,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, product)
}

func (s *Server) handleListProducts(c *gin.Context) {
	products, err := s.deps.Products.List(c.Request.Context(), callerID(c), c.Param("agent_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, paginate(products, intQuery(c, "limit", 100), offsetQuery(c)))
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	product, err := s.deps.Products.Update(c.Request.Context(), callerID(c), c.Param("id"), services.ProductUpdate{
		Name:                req.Name,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Price:               req.Price,
		Currency:            req.Currency,
		Category:            req.Category,
		Features:            req.Features,
		Specifications:      req.Specifications,
		StockStatus:         req.StockStatus,
		SKU:                 req.SKU,
		IsFeatured:          req.IsFeatured,
		IsActive:            req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	if err := s.deps.Products.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

// allowedImageExtensions is the accept list for product image uploads.
var allowedImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// handleUploadProductImage stores one image under the upload directory and
// records its public URL on the product.
func (s *Server) handleUploadProductImage(c *gin.Context) {
	productID := c.PostForm("product_id")
	if productID == "" {
		respondBadRequest(c, "product_id is required")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondBadRequest(c, "image file is required")
		return
	}
	if file.Size > s.deps.Config.Uploads.MaxBytes {
		respondError(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("image exceeds %d bytes", s.deps.Config.Uploads.MaxBytes))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		respondBadRequest(c, "unsupported image type: "+ext)
		return
	}

	// Server-assigned name; client filenames never touch the filesystem.
	name := uuid.New().String() + ext
	dest := filepath.Join(s.deps.Config.Uploads.Dir, name)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		respondServiceError(c, fmt.Errorf("failed to store uploaded image: %w", err))
		return
	}

	product, err := s.deps.Products.SetImageURL(c.Request.Context(), callerID(c), productID, "/uploads/"+name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, product)
}
