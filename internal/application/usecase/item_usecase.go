package usecase

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ItemUseCase casos de uso para ítems (lotes) y sus reportes CSV.
type ItemUseCase struct {
	repo        repository.ItemRepository
	productRepo repository.ProductRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, productRepo repository.ProductRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, productRepo: productRepo}
}

// List lista todos los ítems.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// GetByID obtiene un ítem por ID. Devuelve nil si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	return toItemResponse(it), nil
}

// ListByProduct lista los ítems de un producto.
func (uc *ItemUseCase) ListByProduct(productID string) ([]dto.ItemResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// ListExpiring lista los ítems que vencen dentro de los próximos days días.
func (uc *ItemUseCase) ListExpiring(days int) ([]dto.ItemResponse, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days debe ser mayor o igual a cero", domain.ErrInvalidInput)
	}
	list, err := uc.repo.ListExpiringWithin(days)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// Create crea un ítem bajo un producto. El estado nace derivado de la cantidad
// y el mínimo del producto. Devuelve nil si el producto no existe.
func (uc *ItemUseCase) Create(productID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	now := time.Now().UTC()
	if err := validateItemInput(in, now); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	item := buildItem(product.ID, product.MinimumQuantity, in, now)
	if err := uc.repo.Create(&item); err != nil {
		return nil, err
	}
	item.Product = *product
	return toItemResponse(&item), nil
}

// Update actualiza batch, vencimiento y/o ubicación. Un ítem inactivo no puede
// actualizarse (ErrConflict). Devuelve nil si el ítem no existe.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if item.Status == entity.ItemStatusInactive {
		return nil, fmt.Errorf("%w: un ítem inactivo no puede ser actualizado", domain.ErrConflict)
	}

	now := time.Now().UTC()
	if in.Batch != nil {
		batch := strings.TrimSpace(*in.Batch)
		if batch == "" {
			return nil, fmt.Errorf("%w: batch no puede ser vacío", domain.ErrInvalidInput)
		}
		item.Batch = batch
	}
	if in.ExpirationDate != nil {
		if !in.ExpirationDate.After(now) {
			return nil, fmt.Errorf("%w: expiration_date debe ser una fecha futura", domain.ErrInvalidInput)
		}
		item.ExpirationDate = in.ExpirationDate
	}
	if in.Location != nil {
		location := strings.TrimSpace(*in.Location)
		if location == "" {
			return nil, fmt.Errorf("%w: location no puede ser vacía", domain.ErrInvalidInput)
		}
		item.Location = location
	}
	item.UpdatedAt = now

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Deactivate da de baja lógica un ítem. El estado inactivo es terminal: un
// ítem ya inactivo responde ErrConflict.
func (uc *ItemUseCase) Deactivate(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: ítem no encontrado", domain.ErrNotFound)
	}
	if item.Status == entity.ItemStatusInactive {
		return fmt.Errorf("%w: el ítem ya está inactivo", domain.ErrConflict)
	}

	item.Status = entity.ItemStatusInactive
	item.UpdatedAt = time.Now().UTC()
	return uc.repo.Update(item)
}

// GenerateExpirationReportCSV arma el CSV de ítems por vencer en days días.
// Un string vacío significa que no hay nada que reportar.
func (uc *ItemUseCase) GenerateExpirationReportCSV(days int) (string, error) {
	if days < 1 {
		return "", fmt.Errorf("%w: days debe ser mayor o igual a 1", domain.ErrInvalidInput)
	}
	rows, err := uc.repo.ExpirationReport(days)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}

	today := startOfToday()
	return writeReportCSV(rows, "Days Until Expiration", func(expiration time.Time) (string, int) {
		return "PROXIMO A VENCER", daysBetween(today, expiration)
	})
}

// GenerateExpiredItemsReportCSV arma el CSV de ítems ya vencidos, con los días
// transcurridos desde el vencimiento. String vacío = nada que reportar.
func (uc *ItemUseCase) GenerateExpiredItemsReportCSV() (string, error) {
	rows, err := uc.repo.ExpiredReport()
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}

	today := startOfToday()
	return writeReportCSV(rows, "Days Expired", func(expiration time.Time) (string, int) {
		return "VENCIDO", daysBetween(expiration, today)
	})
}

// writeReportCSV codifica las filas del reporte con encoding/csv (las comillas
// embebidas se duplican; el resultado es re-parseable sin pérdida).
func writeReportCSV(rows []*repository.ExpirationReportRow, lastColumn string, classify func(time.Time) (string, int)) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{
		"Item ID", "Batch", "Quantity", "Location", "Expiration Date",
		"Product Name", "Product SKU", "Category Name", "Status", lastColumn,
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		expiration := ""
		status := ""
		dayCount := 0
		if row.ExpirationDate != nil {
			expiration = row.ExpirationDate.UTC().Format("2006-01-02")
			status, dayCount = classify(*row.ExpirationDate)
		}
		location := row.Location
		if location == "" {
			location = "N/A"
		}
		record := []string{
			row.ItemID,
			row.Batch,
			strconv.Itoa(row.Quantity),
			location,
			expiration,
			row.ProductName,
			row.ProductSKU,
			row.CategoryName,
			status,
			strconv.Itoa(dayCount),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}

// validateItemInput valida los campos de un ítem nuevo antes de tocar la base.
func validateItemInput(in dto.CreateItemRequest, now time.Time) error {
	if strings.TrimSpace(in.Batch) == "" {
		return fmt.Errorf("%w: batch es requerido", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity debe ser mayor o igual a cero", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("%w: location es requerida", domain.ErrInvalidInput)
	}
	if in.ExpirationDate != nil && !in.ExpirationDate.After(now) {
		return fmt.Errorf("%w: expiration_date debe ser una fecha futura", domain.ErrInvalidInput)
	}
	return nil
}

// buildItem arma la entidad con el estado derivado de cantidad vs. mínimo.
func buildItem(productID string, minimumQuantity int, in dto.CreateItemRequest, now time.Time) entity.Item {
	return entity.Item{
		ID:             uuid.New().String(),
		Batch:          strings.TrimSpace(in.Batch),
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		Location:       strings.TrimSpace(in.Location),
		Status:         entity.CalculateItemStatus(in.Quantity, minimumQuantity),
		ProductID:      productID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func startOfToday() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween días calendario completos entre from y to (UTC, por fecha).
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.UTC().Date()
	ty, tm, td := to.UTC().Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:             it.ID,
		Batch:          it.Batch,
		Quantity:       it.Quantity,
		ExpirationDate: it.ExpirationDate,
		Location:       it.Location,
		Status:         it.Status,
		ProductID:      it.ProductID,
		ProductName:    it.Product.Name,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}

func toItemResponses(list []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out
}
