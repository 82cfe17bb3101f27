package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
)

// MovementHandler maneja las peticiones HTTP para el ledger de movimientos.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// GetByItem godoc
// @Summary      Listar movimientos de un ítem
// @Tags         movements
// @Produce      json
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {array}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{itemId}/movements [get]
func (h *MovementHandler) GetByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByItem(c.Params("itemId"))
	if err != nil {
		return errorJSON(c, err)
	}
	if len(out) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay movimientos para el ítem"})
	}
	return c.JSON(out)
}

// GetByPeriod godoc
// @Summary      Listar movimientos dentro de un período
// @Tags         movements
// @Produce      json
// @Param        startDate  query  string  true  "Inicio (YYYY-MM-DD o RFC3339)"
// @Param        endDate    query  string  true  "Fin (YYYY-MM-DD o RFC3339)"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) GetByPeriod(c *fiber.Ctx) error {
	start, _, ok := parseDateParam(c.Query("startDate"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate es requerido (YYYY-MM-DD o RFC3339)"})
	}
	end, endDateOnly, ok := parseDateParam(c.Query("endDate"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "endDate es requerido (YYYY-MM-DD o RFC3339)"})
	}
	// Un endDate solo-fecha cubre el día completo; un timestamp RFC3339 es un
	// instante exacto, aunque caiga en medianoche.
	if endDateOnly {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "endDate no puede ser anterior a startDate"})
	}

	out, err := h.uc.ListByPeriod(start, end)
	if err != nil {
		return errorJSON(c, err)
	}
	if len(out) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay movimientos en el período"})
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar un movimiento IN u OUT
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// parseDateParam acepta fecha simple o timestamp RFC3339, siempre en UTC.
// dateOnly indica qué formato coincidió: el llamador decide si una fecha sin
// hora abarca el día entero.
func parseDateParam(raw string) (t time.Time, dateOnly bool, ok bool) {
	if raw == "" {
		return time.Time{}, false, false
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
		return t, true, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), false, true
	}
	return time.Time{}, false, false
}
