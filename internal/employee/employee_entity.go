package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome             string    `gorm:"not null"`
	Matricula        string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employees_matricula"`
	CPF              *string   `gorm:"column:cpf;type:varchar(11)"`
	Especialidade    string    `gorm:"not null"`
	Lotacao          string    `gorm:"type:varchar(60);not null"`
	Coordenacao      string    `gorm:"type:varchar(20);not null"`
	Sexo             *string   `gorm:"type:varchar(20)"`
	Telefone         *string   `gorm:"type:varchar(20)"`
	Endereco         *string
	DataNascimento   *time.Time `gorm:"type:date"`
	DataAdmissao     *time.Time `gorm:"type:date"`
	EscalaDeTrabalho *string    `gorm:"type:varchar(40)"`
	Contrato         string     `gorm:"not null"`
	Foto             *string    `gorm:"type:text"` // base64 data URL
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
