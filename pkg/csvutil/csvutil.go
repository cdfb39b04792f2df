// Package csvutil produz texto tabular delimitado no estilo RFC 4180 a partir
// de linhas de campos nomeados. A escrita do resultado em arquivo, resposta
// HTTP ou área de transferência é responsabilidade do chamador.
package csvutil

import "strings"

// Row é uma linha de campos nomeados. Campos ausentes são serializados como
// string vazia.
type Row map[string]string

// Encode monta o texto delimitado: o cabeçalho é a junção literal dos nomes
// de coluna por vírgula; cada linha traz os valores das colunas, na ordem do
// cabeçalho, também unidos por vírgula; cabeçalho e linhas são unidos por
// quebra de linha. Valores numéricos devem chegar já formatados de forma
// independente de locale (strconv) — separadores decimais nunca são
// reformatados aqui, para manter round-trips determinísticos.
func Encode(columns []string, rows []Row) string {
	var sb strings.Builder

	for i, column := range columns {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(escapeField(column))
	}

	for _, row := range rows {
		sb.WriteByte('\n')
		for i, column := range columns {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(escapeField(row[column]))
		}
	}

	return sb.String()
}

// escapeField aplica a cotação RFC 4180: valores contendo vírgula, aspas
// duplas ou quebra de linha são envolvidos em aspas duplas, com aspas
// internas duplicadas.
func escapeField(value string) string {
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range value {
		if r == '"' {
			sb.WriteByte('"')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')

	return sb.String()
}
