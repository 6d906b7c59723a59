package handlers

import (
	stderrors "errors"
	"net/http"

	"spending-tracker/internal/dto"
	"spending-tracker/internal/errors"
	"spending-tracker/internal/models"
	"spending-tracker/internal/store"

	"github.com/labstack/echo/v4"
)

// SpendingHandler handles the budget and expenditure endpoints. All of
// them read or mutate the shared aggregate through the store, which
// hands back owned snapshots so no JSON encoding happens under its
// lock.
type SpendingHandler struct {
	store *store.Store
}

// NewSpendingHandler creates a new spending handler
func NewSpendingHandler(s *store.Store) *SpendingHandler {
	return &SpendingHandler{store: s}
}

// Spend records one expenditure and reports the balance remaining
// after it.
//
// POST /spent {"amount": 1.23, "category": "Dining"}
func (h *SpendingHandler) Spend(c echo.Context) error {
	var req dto.SpentRequest
	if err := c.Bind(&req); err != nil {
		return sendBindError(c, err)
	}

	category := models.CategoryOther
	if req.Category != nil {
		category = *req.Category
	}

	snapshot := h.store.Spend(models.CentsFromDollars(req.Amount), category)
	return c.JSON(http.StatusOK, dto.SpentResponse{
		Total: models.FormatCents(snapshot.Remaining()),
	})
}

// SpentTotal reports the budget, the running total and the full
// transaction history.
//
// GET /spent
func (h *SpendingHandler) SpentTotal(c echo.Context) error {
	return c.JSON(http.StatusOK, snapshotResponse(h.store.Snapshot()))
}

// SetBudget replaces the budget, leaving the total and the transaction
// history untouched. A category in the body is ignored.
//
// POST /budget {"amount": 500}
func (h *SpendingHandler) SetBudget(c echo.Context) error {
	var req dto.SpentRequest
	if err := c.Bind(&req); err != nil {
		return sendBindError(c, err)
	}

	snapshot := h.store.SetBudget(models.CentsFromDollars(req.Amount))
	return c.JSON(http.StatusOK, snapshotResponse(snapshot))
}

// Reset restores the default aggregate. The verb is GET on purpose:
// the bundled client calls it with a plain fetch.
//
// GET /reset
func (h *SpendingHandler) Reset(c echo.Context) error {
	return c.JSON(http.StatusOK, snapshotResponse(h.store.Reset()))
}

// sendBindError maps a body decode failure to the matching client
// error code.
func sendBindError(c echo.Context, err error) error {
	if stderrors.Is(err, models.ErrUnknownCategory) {
		return SendError(c, errors.ValidationUnknownCategory, errors.WithDetails(err.Error()))
	}
	return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
}

func snapshotResponse(snapshot store.Snapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		Budget:       models.FormatCents(snapshot.Budget),
		Total:        models.FormatCents(snapshot.Total),
		Transactions: snapshot.Transactions,
	}
}
