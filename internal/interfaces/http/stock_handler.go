package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/application/usecase"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
)

// StockHandler trata as consultas de saldo e razão de movimentações (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetBalance obtém o saldo de um material num local.
// GET /api/estoque/:id_local/:id_material
func (h *StockHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.uc.GetBalance(c.Params("id_material"), c.Params("id_local"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(balance)
}

// ListByLocation lista os saldos positivos de um local. GET /api/estoque/:id_local
func (h *StockHandler) ListByLocation(c *fiber.Ctx) error {
	resp, err := h.uc.ListByLocation(c.Params("id_local"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetMovement obtém uma movimentação com o documento vinculado.
// GET /api/movimentacoes/:id
func (h *StockHandler) GetMovement(c *fiber.Ctx) error {
	detail, err := h.uc.GetMovement(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(detail)
}

// ListMovementsByMaterial lista o razão de um material.
// GET /api/movimentacoes/material/:id?de=...&ate=...
func (h *StockHandler) ListMovementsByMaterial(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	page.DefaultPage()
	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "datas inválidas (RFC 3339)"})
	}
	resp, err := h.uc.ListMovementsByMaterial(c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ListMovementsByLocation lista o razão de um local.
// GET /api/movimentacoes/local/:id?de=...&ate=...
func (h *StockHandler) ListMovementsByLocation(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	page.DefaultPage()
	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "datas inválidas (RFC 3339)"})
	}
	resp, err := h.uc.ListMovementsByLocation(c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ListUnits lista as unidades de medida. GET /api/unidades
func (h *StockHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.uc.ListUnits()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": units})
}

// dateRange lê os filtros opcionais de período (?de=&ate=) em RFC 3339.
func dateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if v := c.Query("de"); v != "" {
		t, perr := time.Parse(time.RFC3339, v)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if v := c.Query("ate"); v != "" {
		t, perr := time.Parse(time.RFC3339, v)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}
