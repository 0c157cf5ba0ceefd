package models

// Requests for dashboard HTTP endpoints. Defined in domain for consistency and reuse.

type TrendRequest struct {
	Days int `query:"days" json:"days" default:"7" validate:"gte=1,lte=365"`
}

type HotProjectsRequest struct {
	Limit int `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=50"`
}

type TopListRequest struct {
	Limit int `query:"limit" json:"limit" default:"10" validate:"gte=1,lte=100"`
}

type SignalsRequest struct {
	Query    string `query:"query" json:"query"`
	Category string `query:"category" json:"category" default:"any"`
	Status   string `query:"status" json:"status" default:"any"`
	From     string `query:"from" json:"from"`
	To       string `query:"to" json:"to"`
	Days     int    `query:"days" json:"days" default:"7" validate:"gte=1,lte=365"`
}

type ChartRequest struct {
	Days   int    `query:"days" json:"days" default:"7" validate:"gte=1,lte=365"`
	Width  int    `query:"w" json:"w" default:"800" validate:"gte=120,lte=4000"`
	Height int    `query:"h" json:"h" default:"320" validate:"gte=80,lte=2000"`
	Chart  string `query:"chart" json:"chart" default:"bar" validate:"oneof=bar line"`
}
