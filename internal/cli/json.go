package cli

import (
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// JSON views for results that carry error values

type accountJSON struct {
	Network string `json:"network"`
	Index   int    `json:"index"`
	Address string `json:"address,omitempty"`
	Error   string `json:"error,omitempty"`
}

type unfundedJSON struct {
	Network     string   `json:"network"`
	MissingVars []string `json:"missingVars"`
}

type accountsJSON struct {
	Accounts []accountJSON  `json:"accounts"`
	Missing  []unfundedJSON `json:"missing"`
}

func toAccountsJSON(result *usecase.ListAccountsResult) *accountsJSON {
	out := &accountsJSON{
		Accounts: make([]accountJSON, 0, len(result.Accounts)),
		Missing:  make([]unfundedJSON, 0, len(result.Missing)),
	}
	for _, a := range result.Accounts {
		entry := accountJSON{Network: a.Network, Index: a.Index, Address: a.Address}
		if a.Error != nil {
			entry.Error = a.Error.Error()
			entry.Address = ""
		}
		out.Accounts = append(out.Accounts, entry)
	}
	for _, m := range result.Missing {
		vars := m.MissingVars
		if vars == nil {
			vars = []string{}
		}
		out.Missing = append(out.Missing, unfundedJSON{Network: m.Network, MissingVars: vars})
	}
	return out
}

type checkJSON struct {
	OK             bool     `json:"ok"`
	MissingEnv     []string `json:"missingEnv"`
	Errors         []string `json:"errors"`
	SecretFindings []string `json:"secretFindings"`
}

func toCheckJSON(result *usecase.CheckConfigResult) *checkJSON {
	out := &checkJSON{
		OK:             result.OK(),
		MissingEnv:     append([]string{}, result.MissingEnv...),
		Errors:         make([]string, 0, len(result.Errors)),
		SecretFindings: make([]string, 0, len(result.SecretFindings)),
	}
	for _, err := range result.Errors {
		out.Errors = append(out.Errors, err.Error())
	}
	for _, f := range result.SecretFindings {
		out.SecretFindings = append(out.SecretFindings, f.Error())
	}
	return out
}
