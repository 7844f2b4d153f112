package flourclouddomain

import "encoding/json"

// Document é um documento de venda (recibo) como retornado pela API do
// Flour Cloud. As datas são datas civis locais de Berlim, não instantes.
type Document struct {
	ID    string         `json:"id,omitempty"`
	Date  string         `json:"date"`
	Type  string         `json:"type,omitempty"`
	Items []DocumentItem `json:"items"`
}

// DocumentItem é um item de linha de um documento. Os campos numéricos
// chegam como json.Number para que um valor malformado invalide apenas o
// item, nunca a decodificação do documento inteiro.
type DocumentItem struct {
	Title       string      `json:"title"`
	Amount      json.Number `json:"amount"`
	TotalIncVat json.Number `json:"totalIncVat"`
	Cancelled   bool        `json:"cancelled,omitempty"`
}
