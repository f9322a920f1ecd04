package handlers

import (
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateFoodRequest struct {
	Date     *Date    `json:"date"`
	ShopName string   `json:"shopName" validate:"required,max=255"`
	Amount   *float64 `json:"amount" validate:"required,gte=0"`
	Comment  *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r CreateFoodRequest) toModel() *models.Food {
	return &models.Food{
		Date:     dateOrNow(r.Date),
		ShopName: r.ShopName,
		Amount:   *r.Amount,
		Comment:  r.Comment,
	}
}

type UpdateFoodRequest struct {
	Date     *Date    `json:"date"`
	ShopName *string  `json:"shopName" validate:"omitempty,min=1,max=255"`
	Amount   *float64 `json:"amount" validate:"omitempty,gte=0"`
	Comment  *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r UpdateFoodRequest) toPatch() services.Patch[models.Food] {
	return models.FoodPatch{
		Date:     timePtr(r.Date),
		ShopName: r.ShopName,
		Amount:   r.Amount,
		Comment:  r.Comment,
	}
}

type FoodHandler = RecordHandler[models.Food, CreateFoodRequest, UpdateFoodRequest]

func NewFoodHandler(service RecordService[models.Food], spec *listing.Spec) *FoodHandler {
	return NewRecordHandler[models.Food, CreateFoodRequest, UpdateFoodRequest](service, RecordConfig[models.Food]{
		Name:      "Food record",
		Title:     "Food purchases",
		Spec:      spec,
		Headers:   []string{"Date", "Shop", "Amount", "Comment"},
		Cells:     (*models.Food).ReportCells,
		SumLabels: map[string]string{"sumAmount": "Total spent"},
	})
}
