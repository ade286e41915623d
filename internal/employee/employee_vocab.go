package employee

import "fmt"

// Closed vocabularies for roster fields, taken from the CPR SUL / CMA SUL
// operation. Each is an explicit enumerated type with a total Parse/String
// mapping: anything outside the set fails at the parse boundary, before a
// record is accepted, never deep inside persistence.

type Lotacao int

const (
	LotacaoBoosterIpojuca Lotacao = iota
	LotacaoETAPirapama
	LotacaoETACharneca
	LotacaoRAPJordao
	LotacaoBoosterUtinga
	LotacaoETAGurjauMatapagipe
	LotacaoETAMuribequinha
	LotacaoETAIpojuca
	LotacaoETAMarcosFreire
	LotacaoEEABMarcosFreire
	LotacaoRAPPonteCarvalhos
	LotacaoETASuape
	LotacaoEEABPirapama
	LotacaoETAPortoGalinhas
	LotacaoEEABBita
	LotacaoETACamela
	LotacaoEEATGurjau
	LotacaoEEATAlgodoais
	LotacaoEEABMuribequinha
)

var lotacaoNames = [...]string{
	LotacaoBoosterIpojuca:      "BOOSTER IPOJUCA",
	LotacaoETAPirapama:         "ETA PIRAPAMA",
	LotacaoETACharneca:         "ETA CHARNECA",
	LotacaoRAPJordao:           "RAP DO JORDÃO",
	LotacaoBoosterUtinga:       "BOOSTER UTINGA",
	LotacaoETAGurjauMatapagipe: "ETA GURJAÚ/ETA MATAPAGIPE",
	LotacaoETAMuribequinha:     "ETA MURIBEQUINHA",
	LotacaoETAIpojuca:          "ETA IPOJUCA",
	LotacaoETAMarcosFreire:     "ETA MARCOS FREIRE-CONVENCIONAL",
	LotacaoEEABMarcosFreire:    "EEAB MARCOS FREIRE",
	LotacaoRAPPonteCarvalhos:   "RAP PONTE DOS CARVALHOS",
	LotacaoETASuape:            "ETA SUAPE",
	LotacaoEEABPirapama:        "EEAB PIRAPAMA",
	LotacaoETAPortoGalinhas:    "ETA PORTO DE GALINHAS",
	LotacaoEEABBita:            "EEAB BITA",
	LotacaoETACamela:           "ETA CAMELA",
	LotacaoEEATGurjau:          "EEAT GURJAÚ",
	LotacaoEEATAlgodoais:       "EEAT ALGODOAIS",
	LotacaoEEABMuribequinha:    "EEAB MURIBEQUINHA",
}

var lotacaoByName = indexByName(lotacaoNames[:], func(i int) Lotacao { return Lotacao(i) })

func (l Lotacao) String() string {
	if l < 0 || int(l) >= len(lotacaoNames) {
		return ""
	}
	return lotacaoNames[l]
}

// ParseLotacao maps the exact site name onto its enumerated value. The
// match is case- and accent-sensitive: these are fixed operational labels,
// not free text.
func ParseLotacao(s string) (Lotacao, error) {
	if l, ok := lotacaoByName[s]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("lotação desconhecida: %q", s)
}

func LotacaoValues() []Lotacao {
	return enumValues(len(lotacaoNames), func(i int) Lotacao { return Lotacao(i) })
}

type Coordenacao int

const (
	CoordenacaoCMASul Coordenacao = iota
	CoordenacaoCPRSul
)

var coordenacaoNames = [...]string{
	CoordenacaoCMASul: "CMA SUL",
	CoordenacaoCPRSul: "CPR SUL",
}

var coordenacaoByName = indexByName(coordenacaoNames[:], func(i int) Coordenacao { return Coordenacao(i) })

func (c Coordenacao) String() string {
	if c < 0 || int(c) >= len(coordenacaoNames) {
		return ""
	}
	return coordenacaoNames[c]
}

func ParseCoordenacao(s string) (Coordenacao, error) {
	if c, ok := coordenacaoByName[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("coordenação desconhecida: %q", s)
}

func CoordenacaoValues() []Coordenacao {
	return enumValues(len(coordenacaoNames), func(i int) Coordenacao { return Coordenacao(i) })
}

type Contrato int

const (
	ContratoOperacao Contrato = iota
	ContratoManutencao
	ContratoSupervisores
)

var contratoNames = [...]string{
	ContratoOperacao:     "CT.PS. 18.4.177 - SERVIÇOS DE OPERAÇÃO EM UNIDADES",
	ContratoManutencao:   "CT.PS.22.4.417 - MANUT DAS UNIDADES OPERACIONAIS",
	ContratoSupervisores: "CT.PS.22.2.205 - SERVIÇOS SUPERVISORES ADMINISTRATIVOS",
}

var contratoByName = indexByName(contratoNames[:], func(i int) Contrato { return Contrato(i) })

func (c Contrato) String() string {
	if c < 0 || int(c) >= len(contratoNames) {
		return ""
	}
	return contratoNames[c]
}

func ParseContrato(s string) (Contrato, error) {
	if c, ok := contratoByName[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("contrato desconhecido: %q", s)
}

func ContratoValues() []Contrato {
	return enumValues(len(contratoNames), func(i int) Contrato { return Contrato(i) })
}

type Sexo int

const (
	SexoMasculino Sexo = iota
	SexoFeminino
	SexoOutro
)

var sexoNames = [...]string{
	SexoMasculino: "Masculino",
	SexoFeminino:  "Feminino",
	SexoOutro:     "Outro",
}

var sexoByName = indexByName(sexoNames[:], func(i int) Sexo { return Sexo(i) })

func (s Sexo) String() string {
	if s < 0 || int(s) >= len(sexoNames) {
		return ""
	}
	return sexoNames[s]
}

func ParseSexo(s string) (Sexo, error) {
	if v, ok := sexoByName[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("sexo desconhecido: %q", s)
}

func SexoValues() []Sexo {
	return enumValues(len(sexoNames), func(i int) Sexo { return Sexo(i) })
}

type Escala int

const (
	Escala12x36 Escala = iota
	EscalaComercial
	Escala24x72
	Escala12x24e12x48
	Escala12x24
	Escala12x48
)

var escalaNames = [...]string{
	Escala12x36:       "12H x 36H",
	EscalaComercial:   "HORÁRIO COMERCIAL",
	Escala24x72:       "24H x 72H",
	Escala12x24e12x48: "12H x 24H e 12H x 48H",
	Escala12x24:       "12H x 24H",
	Escala12x48:       "12H x 48H",
}

var escalaByName = indexByName(escalaNames[:], func(i int) Escala { return Escala(i) })

func (e Escala) String() string {
	if e < 0 || int(e) >= len(escalaNames) {
		return ""
	}
	return escalaNames[e]
}

func ParseEscala(s string) (Escala, error) {
	if v, ok := escalaByName[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("escala desconhecida: %q", s)
}

func EscalaValues() []Escala {
	return enumValues(len(escalaNames), func(i int) Escala { return Escala(i) })
}

func indexByName[T comparable](names []string, value func(int) T) map[string]T {
	m := make(map[string]T, len(names))
	for i, name := range names {
		m[name] = value(i)
	}
	return m
}

func enumValues[T any](n int, value func(int) T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value(i)
	}
	return out
}
