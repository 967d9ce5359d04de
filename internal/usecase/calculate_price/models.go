package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на расчет стоимости аренды
type Request struct {
	CarID   int64             // ID автомобиля
	From    time.Time         // Время получения
	To      time.Time         // Время возврата
	Options domain.CarOptions // Выбранные дополнительные опции
}

// Response модель ответа с расчетом стоимости
type Response struct {
	CarID           int64
	SupplierID      int64
	Days            int                    // Количество суток аренды
	BasePrice       float64                // Стоимость по тарифу
	OptionsPrice    float64                // Стоимость опций
	PriceChangeRate float64                // Наценка поставщика в процентах
	Adjustment      float64                // Сумма наценки или скидки
	TotalPrice      float64                // Итоговая стоимость, без округления
	Tier            *domain.DateBasedPrice // Тариф по датам, если применялся
}
