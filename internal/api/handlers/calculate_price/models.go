package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-RentalService/internal/usecase/calculate_price"
)

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	From    string            `json:"from"` // "2025-10-15T10:00:00Z" или "2025-10-15"
	To      string            `json:"to"`
	Options domain.CarOptions `json:"options"`
}

// TierResponse примененный тариф по датам
type TierResponse struct {
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	DailyPrice float64 `json:"dailyPrice"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CarID           int64         `json:"carId"`
	SupplierID      int64         `json:"supplierId"`
	Days            int           `json:"days"`
	BasePrice       float64       `json:"basePrice"`
	OptionsPrice    float64       `json:"optionsPrice"`
	PriceChangeRate float64       `json:"priceChangeRate"`
	Adjustment      float64       `json:"adjustment"`
	TotalPrice      float64       `json:"totalPrice"`
	Tier            *TierResponse `json:"tier,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest(carID int64) (*calculatePrice.Request, error) {
	from, err := parseTime(r.From)
	if err != nil {
		return nil, err
	}

	to, err := parseTime(r.To)
	if err != nil {
		return nil, err
	}

	return &calculatePrice.Request{
		CarID:   carID,
		From:    from,
		To:      to,
		Options: r.Options,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *QuoteResponse {
	quote := &QuoteResponse{
		CarID:           resp.CarID,
		SupplierID:      resp.SupplierID,
		Days:            resp.Days,
		BasePrice:       resp.BasePrice,
		OptionsPrice:    resp.OptionsPrice,
		PriceChangeRate: resp.PriceChangeRate,
		Adjustment:      resp.Adjustment,
		TotalPrice:      resp.TotalPrice,
	}

	if resp.Tier != nil {
		quote.Tier = &TierResponse{
			StartDate:  resp.Tier.StartDate.Format(domain.DateTimeFormat),
			EndDate:    resp.Tier.EndDate.Format(domain.DateTimeFormat),
			DailyPrice: resp.Tier.DailyPrice,
		}
	}

	return quote
}

// parseTime принимает дату со временем или только дату (полночь UTC)
func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(domain.DateTimeFormat, value); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, value)
}
