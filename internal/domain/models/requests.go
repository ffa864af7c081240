package models

// HTTP request models. Defined in domain for consistency and reuse.

type PriceFeedRequest struct {
	Symbols []string `json:"symbols" validate:"omitempty,max=50,dive,required,max=32"`
}

type LatestTicksRequest struct {
	Symbols string `query:"symbols" validate:"required"`
}

type TickHistoryRequest struct {
	Symbol string `query:"symbol" validate:"required,max=32"`
	From   string `query:"from"`
	To     string `query:"to"`
	Limit  int    `query:"limit" default:"500" validate:"gte=1,lte=10000"`
}
