package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/application/movement"
	"github.com/obrasoft/almoxarifado-api/internal/application/usecase"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
)

// MovementHandler trata as requisições de entrada e saída de material (protegido).
// Resolve a política exigir_os_na_saida e os saldos disponíveis antes de
// delegar ao motor de movimentação.
type MovementHandler struct {
	uc        *movement.RegisterMovementUseCase
	stockUC   *usecase.StockUseCase
	settingUC *usecase.SettingUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(uc *movement.RegisterMovementUseCase, stockUC *usecase.StockUseCase, settingUC *usecase.SettingUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, stockUC: stockUC, settingUC: settingUC}
}

// RegisterEntry registra um lote de entrada por nota fiscal.
// POST /api/movimentacoes/entrada
func (h *MovementHandler) RegisterEntry(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	input := movement.EntryInput{
		UserID:      userID,
		LocationID:  in.LocationID,
		InvoiceNum:  in.InvoiceNum,
		InvoiceSer:  in.InvoiceSer,
		InvoiceDate: in.InvoiceDate,
		SupplierID:  in.SupplierID,
		Note:        in.Note,
	}
	for _, line := range in.Lines {
		input.Lines = append(input.Lines, movement.EntryLine{
			MaterialID: line.MaterialID,
			Quantity:   line.Quantity,
			UnitCost:   line.UnitCost,
			LotNumber:  line.LotNumber,
			ExpiresAt:  line.ExpiresAt,
		})
	}

	result, err := h.uc.RegisterEntry(c.Context(), input)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResultResponse(result))
}

// RegisterExit registra um lote de saída, vinculado (opcionalmente) a uma OS.
// POST /api/movimentacoes/saida
func (h *MovementHandler) RegisterExit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	input := movement.ExitInput{
		UserID:           userID,
		LocationID:       in.LocationID,
		WorkOrderID:      in.WorkOrderID,
		Reason:           in.Reason,
		ResponsibleID:    in.ResponsibleID,
		Note:             in.Note,
		RequireWorkOrder: h.settingUC.RequireWorkOrder(),
	}
	if in.ExitDate != nil {
		input.ExitDate = *in.ExitDate
	}
	for _, line := range in.Lines {
		exitLine := movement.ExitLine{
			MaterialID:   line.MaterialID,
			MaterialName: line.MaterialName,
			Requested:    line.Quantity,
			LotID:        line.LotID,
		}
		if exitLine.MaterialName == "" {
			exitLine.MaterialName = line.MaterialID
		}
		// Saldo disponível lido aqui; o motor decide com base nele.
		balance, err := h.stockUC.GetBalance(line.MaterialID, in.LocationID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		exitLine.Available = balance.Quantity
		input.Lines = append(input.Lines, exitLine)
	}

	result, err := h.uc.RegisterExit(c.Context(), input)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResultResponse(result))
}

// movementError mapeia os erros do motor de movimentação para status HTTP.
func movementError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário não autenticado"})
	case errors.Is(err, domain.ErrWorkOrderRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WORK_ORDER_REQUIRED", Message: "ordem de serviço obrigatória para saída"})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "local não encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toBatchResultResponse(result *movement.BatchResult) dto.BatchResultResponse {
	resp := dto.BatchResultResponse{
		Movements: make([]dto.MovementResponse, 0, len(result.Movements)),
		Lines:     make([]dto.LineResultResponse, 0, len(result.Lines)),
	}
	for _, mov := range result.Movements {
		resp.Movements = append(resp.Movements, usecase.ToMovementResponse(mov))
	}
	for _, line := range result.Lines {
		lr := dto.LineResultResponse{MaterialID: line.MaterialID}
		if line.Movement != nil {
			mr := usecase.ToMovementResponse(line.Movement)
			lr.Movement = &mr
		}
		if line.Err != nil {
			lr.Error = line.Err.Error()
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}
