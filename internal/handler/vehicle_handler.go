package handler

import (
	"github.com/gofiber/fiber/v2"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/middleware"
	"vehicle-service/internal/service"
)

type VehicleHandler struct {
	vehicleService service.VehicleService
}

func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// mutationResponse is the envelope returned by create/update/delete.
type mutationResponse struct {
	Message   string `json:"message"`
	VehicleID string `json:"vehicleId,omitempty"`
}

// vehicleListItem omits VIN and timestamps from list responses.
type vehicleListItem struct {
	VehicleID    string `json:"vehicleId"`
	CustomerID   string `json:"customerId"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
	Color        string `json:"color,omitempty"`
	Mileage      int    `json:"mileage"`
}

func toListItems(vehicles []domain.Vehicle) []vehicleListItem {
	items := make([]vehicleListItem, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, vehicleListItem{
			VehicleID:    v.ID,
			CustomerID:   v.CustomerID,
			Make:         v.Make,
			Model:        v.Model,
			Year:         v.Year,
			LicensePlate: v.LicensePlate,
			Color:        v.Color,
			Mileage:      v.Mileage,
		})
	}
	return items
}

func (h *VehicleHandler) Register(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.RegisterVehicleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	vehicle, err := h.vehicleService.Register(c.Context(), identity.Subject, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(mutationResponse{
		Message:   "Vehicle added",
		VehicleID: vehicle.ID,
	})
}

func (h *VehicleHandler) List(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	var vehicles []domain.Vehicle
	var err error

	if identity.IsPrivileged() {
		vehicles, err = h.vehicleService.ListAll(c.Context())
	} else {
		vehicles, err = h.vehicleService.ListForCustomer(c.Context(), identity.Subject)
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(toListItems(vehicles))
}

func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	vehicle, err := h.vehicleService.GetByID(c.Context(), c.Params("vehicleId"), identity.Scope())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(vehicle)
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateVehicleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	vehicleID := c.Params("vehicleId")
	if _, err := h.vehicleService.Update(c.Context(), vehicleID, identity.Scope(), input); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(mutationResponse{
		Message:   "Vehicle updated",
		VehicleID: vehicleID,
	})
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	vehicleID := c.Params("vehicleId")
	if err := h.vehicleService.Delete(c.Context(), vehicleID, identity.Scope()); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(mutationResponse{
		Message:   "Vehicle removed",
		VehicleID: vehicleID,
	})
}
