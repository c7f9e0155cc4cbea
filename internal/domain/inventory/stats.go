package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

// DefaultTopN é o tamanho do ranking na tela de estoque.
const DefaultTopN = 5

type ProductRank struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Units       int             `json:"units"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
}

type Stats struct {
	Count       int             `json:"count"`
	Units       int             `json:"units"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
	TopProducts []ProductRank   `json:"top_products"`
}

// StatsForPeriod agrega as vendas com createdAt em [start, end).
// start ou end zero deixam o lado correspondente aberto.
func StatsForPeriod(sales []models.SaleRecord, start, end time.Time, topN int) Stats {
	st := Stats{Revenue: decimal.Zero, Profit: decimal.Zero}

	byProduct := map[string]*ProductRank{}
	for _, s := range sales {
		if !start.IsZero() && s.CreatedAt.Before(start) {
			continue
		}
		if !end.IsZero() && !s.CreatedAt.Before(end) {
			continue
		}

		st.Count++
		st.Units += s.Quantity
		st.Revenue = st.Revenue.Add(s.Price)
		st.Profit = st.Profit.Add(s.Profit)

		r, ok := byProduct[s.ProductID]
		if !ok {
			r = &ProductRank{
				ProductID:   s.ProductID,
				ProductName: s.ProductName,
				Revenue:     decimal.Zero,
				Profit:      decimal.Zero,
			}
			byProduct[s.ProductID] = r
		}
		r.Units += s.Quantity
		r.Revenue = r.Revenue.Add(s.Price)
		r.Profit = r.Profit.Add(s.Profit)
	}

	st.TopProducts = topProducts(byProduct, topN)
	return st
}

func topProducts(byProduct map[string]*ProductRank, n int) []ProductRank {
	ranks := make([]ProductRank, 0, len(byProduct))
	for _, r := range byProduct {
		ranks = append(ranks, *r)
	}

	sort.Slice(ranks, func(i, j int) bool {
		if c := ranks[i].Revenue.Cmp(ranks[j].Revenue); c != 0 {
			return c > 0
		}
		if ranks[i].ProductName != ranks[j].ProductName {
			return ranks[i].ProductName < ranks[j].ProductName
		}
		return ranks[i].ProductID < ranks[j].ProductID
	})

	if n > 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// Summary reúne hoje, mês corrente e todo o período, como na tela de estoque.
type Summary struct {
	Today   Stats `json:"today"`
	Month   Stats `json:"month"`
	AllTime Stats `json:"all_time"`
}

func Summarize(sales []models.SaleRecord, dayStart, dayEnd, monthStart, monthEnd time.Time) Summary {
	return Summary{
		Today:   StatsForPeriod(sales, dayStart, dayEnd, DefaultTopN),
		Month:   StatsForPeriod(sales, monthStart, monthEnd, DefaultTopN),
		AllTime: StatsForPeriod(sales, time.Time{}, time.Time{}, DefaultTopN),
	}
}
