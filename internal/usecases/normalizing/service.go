// Package normalizing canonicaliza o schema das fontes heterogêneas para o
// schema interno fixo de cada categoria (marketing ou negócio)
package normalizing

import (
	"strings"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// Tabelas de sinônimos por categoria, aplicadas após normalizar caixa e
// espaços. Adicionar um sinônimo novo é uma mudança de dados, não de código.
// Colunas desconhecidas passam adiante sem mapeamento e são ignoradas
var marketingSynonyms = map[string]string{
	"impression":         "impressions",
	"impressions":        "impressions",
	"attributed revenue": "attributed_revenue",
	"revenue":            "attributed_revenue",
}

var businessSynonyms = map[string]string{
	"# of orders":     "orders",
	"# or new orders": "new_orders",
	"new orders":      "new_orders",
	"new customers":   "new_customers",
	"total revenue":   "total_revenue",
	"gross profit":    "gross_profit",
	"cogs":            "cogs",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// NormalizeMarketing converte uma tabela bruta de marketing para o schema
// canônico, estampando o canal informado pelo chamador em todas as linhas.
// Nenhuma etapa falha: valores não numéricos viram 0 e datas não
// interpretáveis ficam nulas (e fora de qualquer agregação)
func (s *Service) NormalizeMarketing(table domain.RawTable, channel string) []domain.NormalizedMarketingRecord {
	if table.Empty() {
		return nil
	}

	rows := canonicalizeRows(table, marketingSynonyms)

	records := make([]domain.NormalizedMarketingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.NormalizedMarketingRecord{
			Date:              utils.ParseCalendarDate(row["date"]),
			Channel:           channel,
			Campaign:          strings.TrimSpace(row["campaign"]),
			Impressions:       int(utils.CoerceNumber(row["impressions"])),
			Clicks:            int(utils.CoerceNumber(row["clicks"])),
			Spend:             utils.CoerceNumber(row["spend"]),
			AttributedRevenue: utils.CoerceNumber(row["attributed_revenue"]),
		})
	}

	return records
}

// NormalizeBusiness converte a tabela bruta de negócio para o schema canônico.
// Quando a fonte não traz a coluna de pedidos mas traz a de novos pedidos,
// os novos pedidos são usados como pedidos, replicando o comportamento do
// dashboard original
func (s *Service) NormalizeBusiness(table domain.RawTable) []domain.NormalizedBusinessRecord {
	if table.Empty() {
		return nil
	}

	rows := canonicalizeRows(table, businessSynonyms)

	hasOrders := false
	for _, column := range table.Columns {
		if canonicalizeColumn(column, businessSynonyms) == "orders" {
			hasOrders = true
			break
		}
	}

	records := make([]domain.NormalizedBusinessRecord, 0, len(rows))
	for _, row := range rows {
		record := domain.NormalizedBusinessRecord{
			Date:         utils.ParseCalendarDate(row["date"]),
			Orders:       int(utils.CoerceNumber(row["orders"])),
			NewOrders:    int(utils.CoerceNumber(row["new_orders"])),
			NewCustomers: int(utils.CoerceNumber(row["new_customers"])),
			TotalRevenue: utils.CoerceNumber(row["total_revenue"]),
			GrossProfit:  utils.CoerceNumber(row["gross_profit"]),
		}

		if !hasOrders {
			record.Orders = record.NewOrders
		}

		records = append(records, record)
	}

	return records
}

// canonicalizeColumn normaliza caixa e espaços do nome da coluna e aplica a
// tabela de sinônimos da categoria. Nomes desconhecidos passam adiante na
// forma normalizada
func canonicalizeColumn(name string, synonyms map[string]string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")

	if canonical, ok := synonyms[normalized]; ok {
		return canonical
	}

	return normalized
}

// canonicalizeRows reescreve cada linha com os nomes canônicos de coluna.
// Em caso de colisão (duas colunas da fonte mapeando para o mesmo nome
// canônico), a primeira com valor não vazio prevalece
func canonicalizeRows(table domain.RawTable, synonyms map[string]string) []map[string]string {
	renames := make(map[string]string, len(table.Columns))
	for _, column := range table.Columns {
		renames[column] = canonicalizeColumn(column, synonyms)
	}

	rows := make([]map[string]string, 0, len(table.Rows))
	for _, raw := range table.Rows {
		row := make(map[string]string, len(raw))
		for _, column := range table.Columns {
			canonical := renames[column]
			if existing, ok := row[canonical]; ok && existing != "" {
				continue
			}
			row[canonical] = raw[column]
		}
		rows = append(rows, row)
	}

	return rows
}
