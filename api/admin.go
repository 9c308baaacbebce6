package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/admin"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service admin.AdminUseCase
}

// flightRequest is the admin write payload. Cross-record rules (transit
// legs, code uniqueness) are checked by the service.
type flightRequest struct {
	Code         string `json:"code"`
	FlightNumber string `json:"flight_number" binding:"required"`

	DepartureCity string `json:"departure_city" binding:"required"`
	DepartureCode string `json:"departure_code" binding:"required,len=3,alpha"`
	ArrivalCity   string `json:"arrival_city" binding:"required"`
	ArrivalCode   string `json:"arrival_code" binding:"required,len=3,alpha,nefield=DepartureCode"`

	DepartureTime string `json:"departure_time" binding:"required,len=5"`
	ArrivalTime   string `json:"arrival_time" binding:"required,len=5"`
	StartDate     string `json:"start_date" binding:"omitempty,len=10"`
	Frequency     string `json:"frequency" binding:"omitempty,oneof=daily weekly"`

	Duration          string  `json:"duration"`
	Aircraft          string  `json:"aircraft"`
	SeatConfiguration string  `json:"seat_configuration"`
	Meal              string  `json:"meal"`
	Price             int64   `json:"price" binding:"min=0"`
	Status            string  `json:"status" binding:"omitempty,oneof=active completed cancelled"`
	Transits          []int64 `json:"transits" binding:"omitempty,max=2,dive,gt=0"`
}

func (r flightRequest) toFlight() domain.Flight {
	return domain.Flight{
		Code:              r.Code,
		FlightNumber:      r.FlightNumber,
		DepartureCity:     r.DepartureCity,
		DepartureCode:     r.DepartureCode,
		ArrivalCity:       r.ArrivalCity,
		ArrivalCode:       r.ArrivalCode,
		DepartureTime:     r.DepartureTime,
		ArrivalTime:       r.ArrivalTime,
		StartDate:         r.StartDate,
		Frequency:         domain.Frequency(r.Frequency),
		Duration:          r.Duration,
		Aircraft:          r.Aircraft,
		SeatConfiguration: r.SeatConfiguration,
		Meal:              r.Meal,
		Price:             r.Price,
		Status:            domain.FlightStatus(r.Status),
		LegBoundaryIDs:    r.Transits,
	}
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewAdminHandler(service admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.list)
	router.POST("/flights", h.create)
	router.POST("/flights/compose", h.compose)
	router.PUT("/flights/:id", h.update)
	router.DELETE("/flights/:id", h.delete)
	router.PATCH("/flights/:id/status", h.status)
	router.GET("/stats", h.stats)
}

func (h *AdminHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.Create(c.Request.Context(), req.toFlight())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) compose(c *gin.Context) {
	var req admin.ComposeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.Compose(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, req.toFlight())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) status(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.service.SetStatus(c.Request.Context(), id, domain.FlightStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
