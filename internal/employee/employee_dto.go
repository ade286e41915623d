package employee

type CreateEmployeeRequest struct {
	Foto             string `json:"foto"`
	Nome             string `json:"nome" binding:"required"`
	Matricula        string `json:"matricula" binding:"required"`
	CPF              string `json:"cpf" binding:"required"`
	Especialidade    string `json:"especialidade" binding:"required"`
	Lotacao          string `json:"lotacao" binding:"required"`
	Coordenacao      string `json:"coordenacao" binding:"required"`
	Sexo             string `json:"sexo"`
	Telefone         string `json:"telefone"`
	Endereco         string `json:"endereco"`
	DataNascimento   string `json:"data_nascimento"`
	DataAdmissao     string `json:"data_admissao"`
	EscalaDeTrabalho string `json:"escala_de_trabalho"`
	Contrato         string `json:"contrato" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Foto             string `json:"foto"`
	Nome             string `json:"nome" binding:"required"`
	Matricula        string `json:"matricula" binding:"required"`
	CPF              string `json:"cpf" binding:"required"`
	Especialidade    string `json:"especialidade" binding:"required"`
	Lotacao          string `json:"lotacao" binding:"required"`
	Coordenacao      string `json:"coordenacao" binding:"required"`
	Sexo             string `json:"sexo"`
	Telefone         string `json:"telefone"`
	Endereco         string `json:"endereco"`
	DataNascimento   string `json:"data_nascimento"`
	DataAdmissao     string `json:"data_admissao"`
	EscalaDeTrabalho string `json:"escala_de_trabalho"`
	Contrato         string `json:"contrato" binding:"required"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	Foto             string `json:"foto,omitempty"`
	Nome             string `json:"nome"`
	Matricula        string `json:"matricula"`
	CPF              string `json:"cpf,omitempty"`
	Especialidade    string `json:"especialidade"`
	Lotacao          string `json:"lotacao"`
	Coordenacao      string `json:"coordenacao"`
	Sexo             string `json:"sexo,omitempty"`
	Telefone         string `json:"telefone,omitempty"`
	Endereco         string `json:"endereco,omitempty"`
	DataNascimento   string `json:"data_nascimento,omitempty"`
	DataAdmissao     string `json:"data_admissao,omitempty"`
	EscalaDeTrabalho string `json:"escala_de_trabalho,omitempty"`
	Contrato         string `json:"contrato"`
}

// EmployeeOptionResponse is the slim shape for pickers (vacation form,
// punch-adjustment flow).
type EmployeeOptionResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
}
