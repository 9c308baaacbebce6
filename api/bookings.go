package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID   int64  `json:"flight_id" binding:"required"`
	Fare       string `json:"fare"`
	SeatNumber int    `json:"seat_number" binding:"required"`
	Email      string `json:"email" binding:"required"`
}

type passengerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Document  string `json:"document"`
}

type paymentRequest struct {
	CardHolder string `json:"card_holder" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
}

type bookingResponse struct {
	Token        string            `json:"token"`
	Status       string            `json:"status"`
	ExpiresAt    string            `json:"expires_at"`
	FlightID     int64             `json:"flight_id"`
	Fare         string            `json:"fare"`
	SeatNumber   int               `json:"seat_number"`
	PriceTotal   int64             `json:"price_total"`
	Email        string            `json:"email"`
	Passenger    *domain.Passenger `json:"passenger,omitempty"`
	PaymentLast4 string            `json:"payment_last4,omitempty"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:token", h.get)
	router.PUT("/:token/passenger", h.passenger)
	router.POST("/:token/payment", h.pay)
	router.DELETE("/:token", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID:   req.FlightID,
		Fare:       domain.FareClass(req.Fare),
		SeatNumber: req.SeatNumber,
		Email:      req.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(b))
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) passenger(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.service.AddPassenger(c.Request.Context(), c.Param("token"), domain.Passenger{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Document:  req.Document,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) pay(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.service.Pay(c.Request.Context(), c.Param("token"), booking.PaymentInput{
		CardHolder: req.CardHolder,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		Token:        b.Token,
		Status:       string(b.Status),
		ExpiresAt:    b.ExpiresAt.Format(time.RFC3339),
		FlightID:     b.FlightID,
		Fare:         string(b.Fare),
		SeatNumber:   b.SeatNumber,
		PriceTotal:   b.PriceTotal,
		Email:        b.Email,
		Passenger:    b.Passenger,
		PaymentLast4: b.PaymentLast4,
	}
}
