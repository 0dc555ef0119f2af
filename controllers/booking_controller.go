package controllers

import (
	"net/http"

	"car-rental-backend/middleware"
	"car-rental-backend/services"
	"car-rental-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type quotePayload struct {
	Car             entityID    `json:"car" binding:"required"`
	BookedTimeSlots slotPayload `json:"bookedTimeSlots"`
}

// bookingPayload serves bookcar and editbooking. totalDays/totalAmount are
// the client's own quote and only checked against the server's.
type bookingPayload struct {
	ID              entityID    `json:"_id"`
	Car             entityID    `json:"car"`
	User            entityID    `json:"user"`
	BookedTimeSlots slotPayload `json:"bookedTimeSlots"`
	TotalDays       flexNumber  `json:"totalDays"`
	TotalAmount     flexNumber  `json:"totalAmount"`
	TransactionID   string      `json:"transactionId"`
}

func (p bookingPayload) input() services.BookingInput {
	return services.BookingInput{
		CarID:             uint(p.Car),
		UserID:            uint(p.User),
		From:              p.BookedTimeSlots.From,
		To:                p.BookedTimeSlots.To,
		TransactionID:     p.TransactionID,
		ClientTotalDays:   int(p.TotalDays),
		ClientTotalAmount: float64(p.TotalAmount),
	}
}

type deleteBookingPayload struct {
	BookingID entityID `json:"bookingid" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// Quote handles POST /api/bookings/quote.
func (ctrl *BookingController) Quote(c *gin.Context) {
	var req quotePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	quote, err := ctrl.Bookings.Quote(uint(req.Car), req.BookedTimeSlots.From, req.BookedTimeSlots.To)
	if err != nil {
		respondServiceError(c, "quote", err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// BookCar handles POST /api/bookings/bookcar. The booking user defaults to
// the caller; only admins may book on behalf of someone else.
func (ctrl *BookingController) BookCar(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.missingToken", "login required")
		return
	}
	var req bookingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	in := req.input()
	if in.UserID == 0 {
		in.UserID = caller.ID
	}
	if in.UserID != caller.ID && !caller.IsAdmin() {
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "cannot book for another user")
		return
	}

	booking, err := ctrl.Bookings.Create(in)
	if err != nil {
		respondServiceError(c, "book car", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Your booking is successful",
		"booking": booking,
	})
}

// GetAllBookings handles GET /api/bookings/getallbookings.
func (ctrl *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.GetAllWithRelations()
	if err != nil {
		respondServiceError(c, "list bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) EditBooking(c *gin.Context) {
	var req bookingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	if req.ID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "_id is required")
		return
	}
	if _, err := ctrl.Bookings.Update(uint(req.ID), req.input()); err != nil {
		respondServiceError(c, "edit booking", err)
		return
	}
	c.JSON(http.StatusOK, "Booking updated successfully")
}

// DeleteBooking frees the booking's range on its car. Unknown ids succeed.
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	var req deleteBookingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	if err := ctrl.Bookings.Delete(uint(req.BookingID)); err != nil {
		respondServiceError(c, "delete booking", err)
		return
	}
	c.JSON(http.StatusOK, "Booking deleted successfully")
}
