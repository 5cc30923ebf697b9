package models

// SignalsRequest binds the /dashboard/signals query string.
type SignalsRequest struct {
	League string `query:"league" default:"all"`
}

// CalibrationRequest selects which calibration series to chart.
type CalibrationRequest struct {
	Market string `query:"market" default:"h2h" validate:"omitempty,oneof=h2h totals"`
}

// BacktestRequest binds the /dashboard/backtest query string. The fields
// mirror the engine's backtest parameters and are forwarded verbatim.
type BacktestRequest struct {
	Seasons   string  `query:"seasons" default:"2021,2022,2023,2024,2025"`
	Leagues   string  `query:"leagues" default:"EPL,La Liga,Bundesliga,Serie A,Ligue 1"`
	Markets   string  `query:"markets" default:"totals"`
	Blend     float64 `query:"blend" default:"0.5" validate:"gte=0,lte=1"`
	Edge      float64 `query:"edge" default:"0.07" validate:"gte=0,lte=1"`
	SplitMode string  `query:"split_mode" default:"cross_val" validate:"omitempty,oneof=cross_val time_split"`
	Refresh   bool    `query:"refresh"`
}
