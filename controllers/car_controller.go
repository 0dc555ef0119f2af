package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"car-rental-backend/models"
	"car-rental-backend/services"
	"car-rental-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type carPayload struct {
	Name        string          `json:"name" binding:"required"`
	Image       string          `json:"image"`
	Capacity    flexNumber      `json:"capacity"`
	FuelType    string          `json:"fuelType"`
	RentPerHour flexNumber      `json:"rentPerHour"`
	Specs       json.RawMessage `json:"specs"`
}

type editCarPayload struct {
	ID          entityID        `json:"_id" binding:"required"`
	Name        *string         `json:"name"`
	Image       *string         `json:"image"`
	Capacity    *flexNumber     `json:"capacity"`
	FuelType    *string         `json:"fuelType"`
	RentPerHour *flexNumber     `json:"rentPerHour"`
	Specs       json.RawMessage `json:"specs"`
}

type deleteCarPayload struct {
	CarID entityID `json:"carid" binding:"required"`
}

// specsBytes drops an absent or null specs field.
func specsBytes(raw json.RawMessage) []byte {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return []byte(trimmed)
}

// ---------------------------
// Controller
// ---------------------------

type CarController struct {
	Cars *services.CarService
}

func NewCarController(svc *services.CarService) *CarController {
	return &CarController{Cars: svc}
}

func carFilterFromQuery(c *gin.Context) (services.CarFilter, error) {
	filter := services.CarFilter{
		Brand:    strings.TrimSpace(c.Query("brand")),
		FuelType: strings.TrimSpace(c.Query("fuelType")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}
	if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &maxPrice
	}
	return filter, nil
}

// GetAllCars handles GET /api/cars/getallcars.
func (ctrl *CarController) GetAllCars(c *gin.Context) {
	filter, err := carFilterFromQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "maxPrice must be a number")
		return
	}
	cars, err := ctrl.Cars.List(filter)
	if err != nil {
		respondServiceError(c, "list cars", err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// GetCar handles GET /api/cars/:carId.
func (ctrl *CarController) GetCar(c *gin.Context) {
	id, err := parseEntityID(c.Param("carId"))
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "invalid car id")
		return
	}
	car, err := ctrl.Cars.Get(uint(id))
	if err != nil {
		respondServiceError(c, "get car", err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (ctrl *CarController) AddCar(c *gin.Context) {
	var req carPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	capacity, err := req.Capacity.wholeNumber()
	if err != nil {
		respondInvalidPayload(c, fmt.Errorf("capacity: %w", err))
		return
	}
	car := models.Car{
		Name:        req.Name,
		Image:       strings.TrimSpace(req.Image),
		Capacity:    capacity,
		FuelType:    strings.TrimSpace(req.FuelType),
		RentPerHour: float64(req.RentPerHour),
		Specs:       specsBytes(req.Specs),
	}
	if err := ctrl.Cars.Create(&car); err != nil {
		respondServiceError(c, "add car", err)
		return
	}
	c.JSON(http.StatusOK, "Car added successfully")
}

func (ctrl *CarController) EditCar(c *gin.Context) {
	var req editCarPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	var capacity *int
	if req.Capacity != nil {
		n, err := req.Capacity.wholeNumber()
		if err != nil {
			respondInvalidPayload(c, fmt.Errorf("capacity: %w", err))
			return
		}
		capacity = &n
	}
	upd := services.CarUpdate{
		Name:        req.Name,
		Image:       req.Image,
		Capacity:    capacity,
		FuelType:    req.FuelType,
		RentPerHour: req.RentPerHour.floatPtr(),
		Specs:       specsBytes(req.Specs),
	}
	if _, err := ctrl.Cars.Update(uint(req.ID), upd); err != nil {
		respondServiceError(c, "edit car", err)
		return
	}
	c.JSON(http.StatusOK, "Car details updated successfully")
}

// DeleteCar also removes the car's bookings. Unknown ids succeed.
func (ctrl *CarController) DeleteCar(c *gin.Context) {
	var req deleteCarPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	if err := ctrl.Cars.Delete(uint(req.CarID)); err != nil {
		respondServiceError(c, "delete car", err)
		return
	}
	c.JSON(http.StatusOK, "Car deleted successfully")
}
