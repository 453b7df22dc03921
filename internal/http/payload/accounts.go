package payload

import "chirper/internal/core"

// AccountRequest is the body of both register and login. It deliberately has
// no field rules: the account service owns the ordered checks (a taken
// username must be reported before a short password, and a failed login must
// not reveal which credential was wrong).
type AccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AccountRequest) ToAccount() core.Account {
	return core.Account{
		Username: a.Username,
		Password: a.Password,
	}
}
