package domain

import "time"

// NormalizedMarketingRecord representa uma linha de marketing após a
// canonicalização do schema. Todos os campos numéricos estão presentes:
// valores ausentes ou não numéricos na fonte viram 0.
// Date nula indica data não interpretável; a linha é excluída de qualquer
// agregação, pois não pode ser agrupada nem cruzada
type NormalizedMarketingRecord struct {
	Date              *time.Time
	Channel           string
	Campaign          string
	Impressions       int
	Clicks            int
	Spend             float64
	AttributedRevenue float64
}

// DailyChannelMetric é o agregado de marketing por (data, canal).
// As métricas derivadas usam ponteiro: nil significa indefinida
// (denominador zero), nunca zero nem infinito
type DailyChannelMetric struct {
	Date              time.Time `json:"date"`
	Channel           string    `json:"channel"`
	Impressions       int       `json:"impressions"`
	Clicks            int       `json:"clicks"`
	Spend             float64   `json:"spend"`
	AttributedRevenue float64   `json:"attributed_revenue"`
	CTR               *float64  `json:"ctr"`
	CPC               *float64  `json:"cpc"`
	ROAS              *float64  `json:"roas"`
}

// DateRollup é o resumo diário de marketing somado entre todos os canais.
// É o lado esquerdo do join com os dados de negócio
type DateRollup struct {
	Date              time.Time `json:"date"`
	Impressions       int       `json:"impressions"`
	Clicks            int       `json:"clicks"`
	Spend             float64   `json:"spend"`
	AttributedRevenue float64   `json:"attributed_revenue"`
}

// ChannelRollup é o resumo por canal ao longo de todo o período, com as
// métricas de eficiência e a participação do canal no total geral
type ChannelRollup struct {
	Channel           string   `json:"channel"`
	Impressions       int      `json:"impressions"`
	Clicks            int      `json:"clicks"`
	Spend             float64  `json:"spend"`
	AttributedRevenue float64  `json:"attributed_revenue"`
	CTR               *float64 `json:"ctr"`
	CPC               *float64 `json:"cpc"`
	ROAS              *float64 `json:"roas"`
	SpendShare        float64  `json:"spend_share"`
	RevenueShare      float64  `json:"revenue_share"`
}

// CampaignMetric é o desempenho agregado por (canal, campanha)
type CampaignMetric struct {
	Channel           string   `json:"channel"`
	Campaign          string   `json:"campaign"`
	Impressions       int      `json:"impressions"`
	Clicks            int      `json:"clicks"`
	Spend             float64  `json:"spend"`
	AttributedRevenue float64  `json:"attributed_revenue"`
	CTR               *float64 `json:"ctr"`
	ROAS              *float64 `json:"roas"`
}

// MarketingAggregate reúne as visões agregadas de marketing de um refresh.
// ByDate e ByChannel são re-agregações de Daily, nunca calculadas de forma
// independente, o que garante consistência entre as visões
type MarketingAggregate struct {
	Daily      []DailyChannelMetric `json:"daily"`
	ByDate     []DateRollup         `json:"by_date"`
	ByChannel  []ChannelRollup      `json:"by_channel"`
	ByCampaign []CampaignMetric     `json:"by_campaign"`
}

// Empty indica se nenhuma fonte de marketing contribuiu com dados
func (a *MarketingAggregate) Empty() bool {
	return a == nil || len(a.Daily) == 0
}
