package domain

import "github.com/shopspring/decimal"

// CombinedSales junta os agregados dos dois canais em uma visão única.
// Os dois agregados DEVEM se referir ao mesmo período; combinar períodos
// diferentes é erro do chamador e não é tratado aqui.
type CombinedSales struct {
	Online *SalesSummary
	Retail *SalesSummary
	Total  decimal.Decimal
	Period Period
}

// CombinedProductSales junta os agregados de produto dos dois canais.
type CombinedProductSales struct {
	Product  string
	Online   *ProductSummary
	Retail   *ProductSummary
	Revenue  decimal.Decimal
	Quantity int
	Period   Period
	// NoSales indica o caso explícito "sem vendas em nenhum canal":
	// quantidade e receita combinadas iguais a zero.
	NoSales bool
}

// CombineTotal soma a receita dos dois canais, preservando as contagens
// individuais de cada um.
func CombineTotal(online, retail *SalesSummary) *CombinedSales {
	return &CombinedSales{
		Online: online,
		Retail: retail,
		Total:  online.Revenue.Add(retail.Revenue),
		Period: online.Period,
	}
}

// CombineCompare produz os mesmos dados de CombineTotal, moldados para
// exibição lado a lado.
func CombineCompare(online, retail *SalesSummary) *CombinedSales {
	return CombineTotal(online, retail)
}

// CombineProduct soma quantidade e receita de um produto nos dois canais e
// sinaliza o caso "sem vendas em nenhum canal" quando ambas zeram.
func CombineProduct(online, retail *ProductSummary) *CombinedProductSales {
	revenue := online.Revenue.Add(retail.Revenue)
	quantity := online.Quantity + retail.Quantity

	return &CombinedProductSales{
		Product:  online.Product,
		Online:   online,
		Retail:   retail,
		Revenue:  revenue,
		Quantity: quantity,
		Period:   online.Period,
		NoSales:  quantity == 0 && revenue.IsZero(),
	}
}
