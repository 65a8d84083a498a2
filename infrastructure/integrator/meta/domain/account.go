package metadomain

// AdAccount é a visão de cobrança da conta de anúncios. AccountStatus segue
// os códigos numéricos da API (1 ativa, 2 desativada, 3 pendência de
// pagamento, 101 encerrada).
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	DisableReason int    `json:"disable_reason"`
}
