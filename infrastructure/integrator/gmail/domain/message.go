package gmaildomain

// Message é o resumo de uma mensagem devolvido pela busca: apenas os
// cabeçalhos de metadados, nunca o corpo.
type Message struct {
	ID      string
	Subject string
	From    string
	Date    string
}
