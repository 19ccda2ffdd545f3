package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/middleware"
)

// newTestApp wires the real middleware chain and routes around mocked services.
func newTestApp(vehicleSvc *mockVehicleService, photoSvc *mockPhotoService, historySvc *mockHistoryService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	h := &Handlers{
		Vehicle: NewVehicleHandler(vehicleSvc),
		Photo:   NewPhotoHandler(photoSvc, 10*1024*1024),
		History: NewHistoryHandler(historySvc),
	}

	vehicles := app.Group("/api/v1/vehicles", middleware.GatewayAuth())

	vehicles.Post("/",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleSuperAdmin),
		h.Vehicle.Register)
	vehicles.Get("/",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.Vehicle.List)

	vehicles.Delete("/photos/:photoId",
		middleware.RequireAnyRole(domain.RoleCustomer),
		h.Photo.DeleteSingle)

	vehicles.Get("/:vehicleId",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.Vehicle.Get)
	vehicles.Put("/:vehicleId",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.Vehicle.Update)
	vehicles.Delete("/:vehicleId",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.Vehicle.Delete)

	vehicles.Post("/:vehicleId/photos",
		middleware.RequireAnyRole(domain.RoleCustomer),
		h.Photo.Upload)
	vehicles.Get("/:vehicleId/photos",
		middleware.RequireAnyRole(domain.RoleCustomer),
		h.Photo.List)
	vehicles.Get("/:vehicleId/photos/:fileName",
		middleware.RequireAnyRole(domain.RoleCustomer),
		h.Photo.ServeFile)

	vehicles.Get("/:vehicleId/history",
		middleware.RequireAnyRole(domain.RoleCustomer, domain.RoleAdmin, domain.RoleEmployee),
		h.History.Get)

	return app
}

func asCustomer(req *http.Request, subject string) *http.Request {
	req.Header.Set(middleware.HeaderUserSubject, subject)
	req.Header.Set(middleware.HeaderUserRoles, "CUSTOMER")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}
