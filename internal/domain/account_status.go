package domain

// AccountStatus é o status da conta de anúncios no provedor, reduzido a um
// conjunto fechado de valores.
type AccountStatus string

const (
	AccountStatusUnknown   AccountStatus = ""
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusDisabled  AccountStatus = "DISABLED"
	AccountStatusUnsettled AccountStatus = "UNSETTLED"
	AccountStatusClosed    AccountStatus = "CLOSED"
)

// AccountStatusFromCode mapeia o código numérico de account_status do
// provedor para o conjunto fechado.
func AccountStatusFromCode(code int) AccountStatus {
	switch code {
	case 1:
		return AccountStatusActive
	case 2:
		return AccountStatusDisabled
	case 3:
		return AccountStatusUnsettled
	case 101:
		return AccountStatusClosed
	default:
		return AccountStatusUnknown
	}
}

// Blocked informa se o status representa um bloqueio de cobrança que deve
// gerar alerta.
func (s AccountStatus) Blocked() bool {
	return s == AccountStatusDisabled || s == AccountStatusUnsettled
}
