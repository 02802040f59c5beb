package domain

// RawRecord representa uma linha de uma fonte como foi carregada: nomes de
// colunas definidos pela fonte e valores ainda em texto
type RawRecord map[string]string

// RawTable representa uma tabela bruta carregada de um CSV, antes de qualquer
// normalização de schema
type RawTable struct {
	Columns []string
	Rows    []RawRecord
}

// Empty indica se a tabela não possui linhas de dados
func (t RawTable) Empty() bool {
	return len(t.Rows) == 0
}
