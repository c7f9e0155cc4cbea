package httperr

// messages dá a cada código de negócio um texto que diz ao usuário o que corrigir.
// Código fora da tabela cai na mensagem genérica do tipo.
var messages = map[string]string{
	// validação
	"name_required":           "Informe o nome.",
	"description_required":    "Informe a descrição.",
	"client_name_required":    "Informe o nome do cliente.",
	"client_phone_required":   "Informe o telefone do cliente.",
	"barcode_required":        "Informe o código de barras.",
	"invalid_input":           "Dados inválidos. Confira os campos enviados.",
	"invalid_date":            "Data inválida. Use o formato AAAA-MM-DD.",
	"invalid_from":            "Data inicial inválida. Use o formato AAAA-MM-DD.",
	"invalid_to":              "Data final inválida. Use o formato AAAA-MM-DD.",
	"invalid_month":           "Mês inválido. Use o formato AAAA-MM.",
	"invalid_slot":            "Horário fora da grade da barbearia. Escolha um dos horários disponíveis.",
	"invalid_timezone":        "Fuso horário inválido. Use um nome IANA, como America/Sao_Paulo.",
	"invalid_price":           "Preço inválido. Informe um valor maior que zero.",
	"invalid_cost":            "Custo inválido. Informe um valor maior ou igual a zero.",
	"price_must_exceed_cost":  "O preço de venda precisa ser maior que o custo.",
	"invalid_stock":           "Estoque inválido. Informe um número maior ou igual a zero.",
	"invalid_min_stock":       "Estoque mínimo inválido. Informe um número maior ou igual a zero.",
	"invalid_delta":           "Informe uma quantidade diferente de zero para ajustar o estoque.",
	"invalid_duration":        "Duração inválida. Informe os minutos do serviço.",
	"invalid_amount":          "Valor inválido. Informe um valor maior que zero.",
	"invalid_category":        "Categoria inválida.",
	"invalid_expense_type":    "Tipo de despesa inválido. Use monthly ou unexpected.",
	"invalid_payment_method":  "Forma de pagamento inválida. Use cash, card ou transfer.",
	"invalid_status":          "Status inválido.",
	"invalid_approval_status": "Status de aprovação inválido. Use pending, approved ou rejected.",
	"invalid_email_domain":    "O domínio do e-mail não recebe mensagens. Confira o endereço.",
	"weak_password":           "Senha muito curta.",
	"invalid_image":           "Imagem inválida. Envie JPEG, PNG ou WebP.",
	"image_upload_disabled":   "Upload de imagens não está configurado.",
	"payments_disabled":       "Pagamento online não está configurado.",
	"nothing_to_charge":       "Não há valor a cobrar neste agendamento.",
	"service_inactive":        "Serviço inativo. Escolha outro serviço.",
	"barber_not_active":       "Barbeiro indisponível. Escolha outro barbeiro.",

	// conflito
	"barcode_in_use":     "Já existe um produto com esse código de barras.",
	"email_in_use":       "E-mail já cadastrado.",
	"service_in_use":     "Serviço já usado em atendimentos: preço e duração não mudam mais. Desative-o e crie outro.",
	"appointment_closed": "Agendamento já encerrado.",

	// não encontrado
	"barber_not_found":     "Barbeiro não encontrado.",
	"barbershop_not_found": "Barbearia não encontrada.",
	"expense_not_found":    "Despesa não encontrada.",
	"product_not_found":    "Produto não encontrado.",
	"service_not_found":    "Serviço não encontrado.",
}

func messageFor(code, fallback string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return fallback
}
