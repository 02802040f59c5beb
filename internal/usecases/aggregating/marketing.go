// Package aggregating computa os agregados diários e as métricas derivadas de
// eficiência a partir das tabelas normalizadas
package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

type MarketingService struct{}

func NewMarketingService() *MarketingService {
	return &MarketingService{}
}

type dailyKey struct {
	date    time.Time
	channel string
}

type campaignKey struct {
	channel  string
	campaign string
}

type sums struct {
	impressions       int
	clicks            int
	spend             float64
	attributedRevenue float64
}

// Aggregate une as tabelas normalizadas de marketing, agrupa por (data, canal)
// e computa ctr/cpc/roas. Linhas com data nula ficam fora de todos os
// agrupamentos. As visões por data e por canal são re-agregações das somas por
// (data, canal), o que garante que os números batem entre as visões
func (s *MarketingService) Aggregate(tables ...[]domain.NormalizedMarketingRecord) *domain.MarketingAggregate {
	daily := make(map[dailyKey]*sums)
	campaigns := make(map[campaignKey]*sums)

	for _, records := range tables {
		for _, record := range records {
			if record.Date == nil {
				continue
			}

			dk := dailyKey{date: *record.Date, channel: record.Channel}
			accumulate(daily, dk, record)

			ck := campaignKey{channel: record.Channel, campaign: record.Campaign}
			accumulate(campaigns, ck, record)
		}
	}

	aggregate := &domain.MarketingAggregate{
		Daily:      buildDaily(daily),
		ByCampaign: buildCampaigns(campaigns),
	}
	aggregate.ByDate = rollupByDate(aggregate.Daily)
	aggregate.ByChannel = rollupByChannel(aggregate.Daily)

	return aggregate
}

func accumulate[K comparable](groups map[K]*sums, key K, record domain.NormalizedMarketingRecord) {
	group, ok := groups[key]
	if !ok {
		group = &sums{}
		groups[key] = group
	}

	group.impressions += record.Impressions
	group.clicks += record.Clicks
	group.spend += record.Spend
	group.attributedRevenue += record.AttributedRevenue
}

func buildDaily(groups map[dailyKey]*sums) []domain.DailyChannelMetric {
	metrics := make([]domain.DailyChannelMetric, 0, len(groups))

	for key, group := range groups {
		metrics = append(metrics, domain.DailyChannelMetric{
			Date:              key.date,
			Channel:           key.channel,
			Impressions:       group.impressions,
			Clicks:            group.clicks,
			Spend:             group.spend,
			AttributedRevenue: group.attributedRevenue,
			CTR:               utils.Ratio(float64(group.clicks), float64(group.impressions)),
			CPC:               utils.Ratio(group.spend, float64(group.clicks)),
			ROAS:              utils.Ratio(group.attributedRevenue, group.spend),
		})
	}

	sort.Slice(metrics, func(i, j int) bool {
		if !metrics[i].Date.Equal(metrics[j].Date) {
			return metrics[i].Date.Before(metrics[j].Date)
		}
		return metrics[i].Channel < metrics[j].Channel
	})

	return metrics
}

// rollupByDate colapsa o agregado diário por canal em um resumo por data.
// É o lado esquerdo do join com os dados de negócio
func rollupByDate(daily []domain.DailyChannelMetric) []domain.DateRollup {
	groups := make(map[time.Time]*sums)

	for _, metric := range daily {
		group, ok := groups[metric.Date]
		if !ok {
			group = &sums{}
			groups[metric.Date] = group
		}

		group.impressions += metric.Impressions
		group.clicks += metric.Clicks
		group.spend += metric.Spend
		group.attributedRevenue += metric.AttributedRevenue
	}

	rollups := make([]domain.DateRollup, 0, len(groups))
	for date, group := range groups {
		rollups = append(rollups, domain.DateRollup{
			Date:              date,
			Impressions:       group.impressions,
			Clicks:            group.clicks,
			Spend:             group.spend,
			AttributedRevenue: group.attributedRevenue,
		})
	}

	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Date.Before(rollups[j].Date)
	})

	return rollups
}

// rollupByChannel colapsa o agregado diário em um resumo por canal ao longo do
// período inteiro, incluindo a participação de cada canal no total geral
func rollupByChannel(daily []domain.DailyChannelMetric) []domain.ChannelRollup {
	groups := make(map[string]*sums)
	var totalSpend, totalRevenue float64

	for _, metric := range daily {
		group, ok := groups[metric.Channel]
		if !ok {
			group = &sums{}
			groups[metric.Channel] = group
		}

		group.impressions += metric.Impressions
		group.clicks += metric.Clicks
		group.spend += metric.Spend
		group.attributedRevenue += metric.AttributedRevenue

		totalSpend += metric.Spend
		totalRevenue += metric.AttributedRevenue
	}

	rollups := make([]domain.ChannelRollup, 0, len(groups))
	for channel, group := range groups {
		rollup := domain.ChannelRollup{
			Channel:           channel,
			Impressions:       group.impressions,
			Clicks:            group.clicks,
			Spend:             group.spend,
			AttributedRevenue: group.attributedRevenue,
			CTR:               utils.Ratio(float64(group.clicks), float64(group.impressions)),
			CPC:               utils.Ratio(group.spend, float64(group.clicks)),
			ROAS:              utils.Ratio(group.attributedRevenue, group.spend),
		}

		if totalSpend > 0 {
			rollup.SpendShare = group.spend / totalSpend
		}
		if totalRevenue > 0 {
			rollup.RevenueShare = group.attributedRevenue / totalRevenue
		}

		rollups = append(rollups, rollup)
	}

	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Channel < rollups[j].Channel
	})

	return rollups
}

func buildCampaigns(groups map[campaignKey]*sums) []domain.CampaignMetric {
	metrics := make([]domain.CampaignMetric, 0, len(groups))

	for key, group := range groups {
		metrics = append(metrics, domain.CampaignMetric{
			Channel:           key.channel,
			Campaign:          key.campaign,
			Impressions:       group.impressions,
			Clicks:            group.clicks,
			Spend:             group.spend,
			AttributedRevenue: group.attributedRevenue,
			CTR:               utils.Ratio(float64(group.clicks), float64(group.impressions)),
			ROAS:              utils.Ratio(group.attributedRevenue, group.spend),
		})
	}

	// Maior investimento primeiro, como na tabela de campanhas do dashboard
	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].Spend != metrics[j].Spend {
			return metrics[i].Spend > metrics[j].Spend
		}
		if metrics[i].Channel != metrics[j].Channel {
			return metrics[i].Channel < metrics[j].Channel
		}
		return metrics[i].Campaign < metrics[j].Campaign
	})

	return metrics
}
