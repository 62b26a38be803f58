package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcsalazar/punto-venta-api/internal/application/catalogo"
	"github.com/jcsalazar/punto-venta-api/internal/application/dto"
)

// CategoriaHandler maneja las peticiones HTTP de categorías (protegido).
type CategoriaHandler struct {
	uc *catalogo.CategoriaUseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *catalogo.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Crear da de alta una categoría.
func (h *CategoriaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar devuelve todas las categorías.
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ImpuestoHandler maneja las peticiones HTTP del catálogo de impuestos (protegido).
type ImpuestoHandler struct {
	uc *catalogo.ImpuestoUseCase
}

// NewImpuestoHandler construye el handler.
func NewImpuestoHandler(uc *catalogo.ImpuestoUseCase) *ImpuestoHandler {
	return &ImpuestoHandler{uc: uc}
}

// Crear da de alta una tasa de impuesto.
func (h *ImpuestoHandler) Crear(c *fiber.Ctx) error {
	var in dto.TasaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar devuelve el catálogo de impuestos.
func (h *ImpuestoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar modifica una tasa de impuesto por ID.
func (h *ImpuestoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.TasaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Actualizar(c.UserContext(), int64(id), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "impuesto actualizado"})
}

// DeProducto devuelve las tasas aplicadas a un producto.
func (h *ImpuestoHandler) DeProducto(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "codigo es requerido"})
	}
	out, err := h.uc.ImpuestosDeProducto(c.UserContext(), codigo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Asociar aplica una tasa a un producto, reemplazando la asociación previa.
func (h *ImpuestoHandler) Asociar(c *fiber.Ctx) error {
	var in dto.AsociarImpuestoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Asociar(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Mensaje: "impuesto asociado"})
}

// DescuentoHandler maneja las peticiones HTTP de descuentos y reglas (protegido).
type DescuentoHandler struct {
	uc *catalogo.DescuentoUseCase
}

// NewDescuentoHandler construye el handler.
func NewDescuentoHandler(uc *catalogo.DescuentoUseCase) *DescuentoHandler {
	return &DescuentoHandler{uc: uc}
}

// CrearTasa da de alta una tasa en el catálogo de descuentos.
func (h *DescuentoHandler) CrearTasa(c *fiber.Ctx) error {
	var in dto.TasaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearTasa(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarCatalogo devuelve el catálogo de descuentos.
func (h *DescuentoHandler) ListarCatalogo(c *fiber.Ctx) error {
	out, err := h.uc.ListarCatalogo(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ActualizarTasa modifica una tasa del catálogo por ID.
func (h *DescuentoHandler) ActualizarTasa(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.TasaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ActualizarTasa(c.UserContext(), int64(id), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "descuento actualizado"})
}

// AplicarRegla aplica un descuento con ámbito producto, categoría o global.
func (h *DescuentoHandler) AplicarRegla(c *fiber.Ctx) error {
	var in dto.AplicarDescuentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AplicarRegla(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarReglas devuelve las reglas aplicadas.
func (h *DescuentoHandler) ListarReglas(c *fiber.Ctx) error {
	out, err := h.uc.ListarReglas(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EliminarRegla borra una regla aplicada.
func (h *DescuentoHandler) EliminarRegla(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.EliminarRegla(c.UserContext(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "regla eliminada"})
}
