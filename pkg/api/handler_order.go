package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merxlab/merx/pkg/models"
	"github.com/merxlab/merx/pkg/services"
)

type createOrderRequest struct {
	AgentID         string             `json:"agent_id" binding:"required"`
	SessionID       string             `json:"session_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address"`
	Items           []models.OrderItem `json:"items" binding:"required"`
	Currency        string             `json:"currency"`
	Notes           string             `json:"notes"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	order, err := s.deps.Orders.Create(c.Request.Context(), callerID(c), req.AgentID, services.OrderInput{
		SessionID:       req.SessionID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		Currency:        req.Currency,
		Notes:           req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, order)
}

func (s *Server) handleListOrders(c *gin.Context) {
	agentID := c.Query("agent_id")
	if agentID == "" {
		respondBadRequest(c, "agent_id is required")
		return
	}
	orders, err := s.deps.Orders.List(c.Request.Context(), callerID(c), agentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, paginate(orders, intQuery(c, "limit", 100), offsetQuery(c)))
}

func (s *Server) handleGetOrder(c *gin.Context) {
	order, err := s.deps.Orders.Get(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// trackOrderResponse is the public tracking view. Customer contact details
// stay private; only progress is exposed.
type trackOrderResponse struct {
	OrderNumber   string                `json:"order_number"`
	Status        string                `json:"status"`
	StatusHistory []models.StatusChange `json:"status_history"`
	CreatedAt     string                `json:"created_at"`
}

func (s *Server) handleTrackOrder(c *gin.Context) {
	order, err := s.deps.Orders.TrackByNumber(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, trackOrderResponse{
		OrderNumber:   order.OrderNumber,
		Status:        string(order.Status),
		StatusHistory: order.StatusHistory,
		CreatedAt:     order.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleUpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	order, err := s.deps.Orders.UpdateStatus(c.Request.Context(), callerID(c), c.Param("id"), req.Status, req.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}
