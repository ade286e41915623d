package employee

import (
	"regexp"
	"strings"
)

// Candidate is a roster record before it is accepted: every field still in
// its normalized string form, exactly as assembled from a form submission
// or an imported spreadsheet row.
type Candidate struct {
	Foto             string
	Nome             string
	Matricula        string
	CPF              string // digits only, or empty
	Especialidade    string
	Lotacao          string
	Coordenacao      string
	Sexo             string
	Telefone         string
	Endereco         string
	DataNascimento   string // ISO YYYY-MM-DD, or empty
	DataAdmissao     string // ISO YYYY-MM-DD, or empty
	EscalaDeTrabalho string
	Contrato         string
}

var digitsOnlyRe = regexp.MustCompile(`^[0-9]+$`)

// ValidateCandidate checks every rule independently and collects all
// violations keyed by field. No side effects; the same pass runs for a
// single form submission and for each spreadsheet row during import.
func ValidateCandidate(c Candidate) (bool, map[string]string) {
	errs := map[string]string{}

	if strings.TrimSpace(c.Nome) == "" {
		errs["nome"] = "Nome é obrigatório"
	}
	if c.Matricula == "" || !digitsOnlyRe.MatchString(c.Matricula) {
		errs["matricula"] = "Matrícula deve conter apenas números"
	}
	if len(NormalizeCPF(c.CPF)) != 11 {
		errs["cpf"] = "CPF é obrigatório e deve conter 11 dígitos"
	}
	if strings.TrimSpace(c.Especialidade) == "" {
		errs["especialidade"] = "Especialidade é obrigatória"
	}
	if _, err := ParseLotacao(c.Lotacao); err != nil {
		errs["lotacao"] = "Lotação inválida"
	}
	if _, err := ParseCoordenacao(c.Coordenacao); err != nil {
		errs["coordenacao"] = "Coordenação inválida"
	}
	if _, err := ParseContrato(c.Contrato); err != nil {
		errs["contrato"] = "Contrato inválido"
	}

	return len(errs) == 0, errs
}

// ValidationMessages flattens the field error map in a stable order aligned
// with the spreadsheet column order.
func ValidationMessages(errs map[string]string) []string {
	order := []string{"nome", "matricula", "cpf", "especialidade", "lotacao", "coordenacao", "contrato"}
	out := make([]string, 0, len(errs))
	for _, field := range order {
		if msg, ok := errs[field]; ok {
			out = append(out, msg)
		}
	}
	return out
}
