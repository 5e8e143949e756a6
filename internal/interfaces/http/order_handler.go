package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ecommerce-manager/internal/application/dto"
	"github.com/tu-usuario/ecommerce-manager/internal/application/orders"
	"github.com/tu-usuario/ecommerce-manager/internal/domain"
)

// OrderHandler maneja la colocación y consulta de órdenes.
type OrderHandler struct {
	orderUC   *orders.OrderUseCase
	receiptUC *orders.ReceiptUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(orderUC *orders.OrderUseCase, receiptUC *orders.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, receiptUC: receiptUC}
}

// Place godoc
// @Summary      Colocar una orden (solo customer): valida stock y descuenta atómicamente
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.OrderResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente: incluye available"
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.orderUC.PlaceOrder(c.Context(), customerID, in.ProductID, in.Quantity)
	if err != nil {
		return h.placeOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// placeOrderError traduce la taxonomía de errores del caso de uso a HTTP.
func (h *OrderHandler) placeOrderError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser un entero positivo"})
	case errors.As(err, &insufficient):
		available := insufficient.Available
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   fmt.Sprintf("stock insuficiente: quedan %d unidades", available),
			Available: &available,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo los clientes pueden colocar órdenes"})
	case errors.Is(err, domain.ErrForeignKeyViolation):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "FK_VIOLATION", Message: "integridad referencial violada"})
	default:
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: err.Error()})
	}
}

// History godoc
// @Summary      Listar las órdenes del cliente autenticado
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders/mine [get]
func (h *OrderHandler) History(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.orderUC.History(c.Context(), customerID)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todas las órdenes (solo admin)
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.orderUC.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar el comprobante PDF de una orden propia
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  int  true  "Order ID"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	orderID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	pdfBytes, filename, err := h.receiptUC.DownloadReceiptPDF(c.Context(), orderID, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
