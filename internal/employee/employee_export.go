package employee

// Spreadsheet column order shared by the export and the import template.
var ExportHeaders = []string{
	"nome",
	"matricula",
	"cpf",
	"especialidade",
	"lotacao",
	"coordenacao",
	"sexo",
	"telefone",
	"endereco",
	"dataNascimento",
	"dataAdmissao",
	"escalaDeTrabalho",
	"contrato",
}

const (
	ExportSheetName   = "funcionarios"
	TemplateSheetName = "modelo"
)

// BuildExportRows renders employees into header-keyed rows with the
// display formats the operators expect: masked CPF and BR dates.
func BuildExportRows(emps []Employee) []map[string]string {
	rows := make([]map[string]string, len(emps))
	for i, e := range emps {
		rows[i] = map[string]string{
			"nome":             e.Nome,
			"matricula":        e.Matricula,
			"cpf":              FormatCPF(stringValue(e.CPF)),
			"especialidade":    e.Especialidade,
			"lotacao":          e.Lotacao,
			"coordenacao":      e.Coordenacao,
			"sexo":             stringValue(e.Sexo),
			"telefone":         stringValue(e.Telefone),
			"endereco":         stringValue(e.Endereco),
			"dataNascimento":   FormatDateBR(dateValue(e.DataNascimento)),
			"dataAdmissao":     FormatDateBR(dateValue(e.DataAdmissao)),
			"escalaDeTrabalho": stringValue(e.EscalaDeTrabalho),
			"contrato":         e.Contrato,
		}
	}
	return rows
}
