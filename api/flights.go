package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/itinerary"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type searchQuery struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Date     string `form:"date"`
	MaxPrice int64  `form:"max_price"`
	Status   string `form:"status"`
}

type segmentResponse struct {
	domain.Flight
	DisplayDate string `json:"display_date"`
}

type itineraryResponse struct {
	Flight   domain.Flight     `json:"flight"`
	Segments []segmentResponse `json:"segments"`
	Layovers []domain.Layover  `json:"layovers"`
	Stops    int               `json:"stops"`
}

type layoverResponse struct {
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	Duration  string `json:"duration"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/itinerary", h.itinerary)
}

// RegisterTools mounts the stateless helpers used by the itinerary views.
func (h *FlightHandler) RegisterTools(router *gin.RouterGroup) {
	router.GET("/layover", h.layover)
}

func (h *FlightHandler) list(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := h.service.Search(c.Request.Context(), flights.SearchCriteria{
		From:     q.From,
		To:       q.To,
		Date:     q.Date,
		MaxPrice: q.MaxPrice,
		Status:   domain.FlightStatus(q.Status),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) itinerary(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	it, err := h.service.Itinerary(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := itineraryResponse{
		Flight:   it.Flight,
		Segments: make([]segmentResponse, 0, len(it.Segments)),
		Layovers: it.Layovers,
		Stops:    it.Stops,
	}
	for _, seg := range it.Segments {
		resp.Segments = append(resp.Segments, segmentResponse{Flight: seg, DisplayDate: itinerary.FormatDate(seg.StartDate)})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) layover(c *gin.Context) {
	arrival, departure := c.Query("arrival"), c.Query("departure")
	d, err := itinerary.Layover(arrival, departure)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, layoverResponse{Arrival: arrival, Departure: departure, Duration: d})
}
