package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/gopidistributors/billing-api/internal/application/catalog"
	"github.com/gopidistributors/billing-api/internal/application/dto"
	"github.com/gopidistributors/billing-api/internal/domain"
)

// ImportHandler handles the bulk catalog upload and its status probe.
type ImportHandler struct {
	svc *catalog.ImportService
}

// NewImportHandler builds the handler.
func NewImportHandler(svc *catalog.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// Import godoc
// @Summary      Bulk import products from an Excel file
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Catalog .xlsx"
// @Success      200   {object}  dto.ImportReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ImportReportResponse
// @Router       /api/products/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "multipart field 'file' is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "cannot open uploaded file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "cannot read uploaded file"})
	}

	report, err := h.svc.Import(c.UserContext(), data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrImportInProgress):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IMPORT_IN_PROGRESS", Message: "another import is already running"})
		case errors.Is(err, domain.ErrNoValidRows):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_VALID_ROWS", Message: "no importable rows found in the file"})
		}
		// Parse or mid-persist failure: committed chunks stand, so the
		// report goes back with the error.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(toImportReport(report))
	}
	return c.JSON(toImportReport(report))
}

// Status godoc
// @Summary      Import session status
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ImportStatusResponse
// @Router       /api/products/import/status [get]
func (h *ImportHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.ImportStatusResponse{
		Active: h.svc.Active(),
		Report: toImportReport(h.svc.Status()),
	})
}

func toImportReport(r catalog.Report) dto.ImportReportResponse {
	out := dto.ImportReportResponse{
		State:           string(r.State),
		AcceptedRows:    r.AcceptedRows,
		CommittedChunks: r.CommittedChunks,
		CommittedRows:   r.CommittedRows,
		Progress:        r.Progress,
		FailedAtRow:     r.FailedAtRow,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}
