package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dronify/warehouse-api/internal/application/dto"
	"github.com/dronify/warehouse-api/internal/application/requests"
	"github.com/dronify/warehouse-api/internal/domain/entity"
)

// RequestHandler maneja las peticiones HTTP del workflow de solicitudes.
type RequestHandler struct {
	uc *requests.UseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *requests.UseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Create crea una solicitud en PENDING.
// POST /api/requests
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CreateRequest(in.UserID, in.ItemID, in.Quantity, in.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"request_id": id})
}

// List listado de solicitudes. Sin user_id devuelve la vista admin (filtro
// opcional por status); con user_id, las solicitudes de ese usuario.
// GET /api/requests
func (h *RequestHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")

	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "user_id inválido"})
		}
		list, err := h.uc.ListByUser(userID, limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"total": len(list), "requests": toRequestResponses(list)})
	}

	status := entity.RequestStatus(c.Query("status"))
	list, err := h.uc.ListAll(status, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "requests": toRequestResponses(list)})
}

// UpdateStatus aplica una transición de estado; COMPLETED retira el stock.
// POST /api/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateRequestStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), id, entity.RequestStatus(in.Status), in.AdminNote, in.ActorID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "solicitud actualizada"})
}

func toRequestResponses(list []*entity.Request) []dto.RequestResponse {
	out := make([]dto.RequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RequestResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			ItemID:    r.ItemID,
			Quantity:  r.Quantity,
			Message:   r.Message,
			Status:    string(r.Status),
			AdminNote: r.AdminNote,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			UserName:  r.UserName,
			UserEmail: r.UserEmail,
			ItemName:  r.ItemName,
			ItemType:  string(r.ItemType),
			ItemScan:  r.ItemScan,
		})
	}
	return out
}
