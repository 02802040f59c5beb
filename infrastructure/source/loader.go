package source

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// LoadResult é o resultado tipado do carregamento de uma fonte. O pipeline
// nunca recebe um erro daqui: fonte ausente ou corrompida vira tabela vazia
// com o status correspondente, e o dashboard segue com as fontes presentes
type LoadResult struct {
	Table  domain.RawTable
	Status domain.SourceStatus
}

// Loader resolve uma fonte lógica para zero-ou-uma tabela de entrada
type Loader interface {
	Load(role domain.SourceRole) LoadResult
}

// CSVLoader carrega fontes CSV a partir de uma lista de diretórios de busca
type CSVLoader struct {
	dirs []string
}

func NewCSVLoader(dirs []string) *CSVLoader {
	return &CSVLoader{dirs: dirs}
}

// Load tenta os nomes canônicos na ordem configurada e, por último, um
// fallback insensível a maiúsculas dentro de cada diretório
func (l *CSVLoader) Load(role domain.SourceRole) LoadResult {
	path, ok := l.resolve(role.Filenames)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"source": role.Name,
			"dirs":   strings.Join(l.dirs, ","),
		}).Info("Fonte não encontrada, seguindo com tabela vazia")

		return LoadResult{
			Table: domain.RawTable{},
			Status: domain.SourceStatus{
				Role:     role.Name,
				Status:   domain.LoadStatusMissing,
				LoadedAt: time.Now(),
			},
		}
	}

	table, err := readCSV(path)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"source": role.Name,
			"path":   path,
		}).Warn("Fonte presente mas não tabular, seguindo com tabela vazia")

		return LoadResult{
			Table: domain.RawTable{},
			Status: domain.SourceStatus{
				Role:     role.Name,
				Status:   domain.LoadStatusMalformed,
				Path:     path,
				LoadedAt: time.Now(),
			},
		}
	}

	status := domain.SourceStatus{
		Role:     role.Name,
		Status:   domain.LoadStatusLoaded,
		Path:     path,
		Rows:     len(table.Rows),
		LoadedAt: time.Now(),
	}

	// Assinatura do arquivo usada pela invalidação do cache de snapshot
	if info, statErr := os.Stat(path); statErr == nil {
		status.Size = info.Size()
		status.ModTime = info.ModTime()
	}

	logrus.WithFields(logrus.Fields{
		"source": role.Name,
		"path":   path,
		"rows":   status.Rows,
	}).Debug("Fonte carregada")

	return LoadResult{Table: table, Status: status}
}

// Signature resolve a identidade atual dos arquivos das fontes sem carregá-los.
// Usada para decidir se o snapshot em cache ainda é válido
func (l *CSVLoader) Signature(roles []domain.SourceRole) string {
	var sb strings.Builder

	for _, role := range roles {
		sb.WriteString(role.Name)
		sb.WriteByte('=')

		if path, ok := l.resolve(role.Filenames); ok {
			if info, err := os.Stat(path); err == nil {
				sb.WriteString(path)
				sb.WriteByte(':')
				sb.WriteString(info.ModTime().UTC().Format(time.RFC3339Nano))
				sb.WriteByte(':')
				sb.WriteString(strconv.FormatInt(info.Size(), 10))
			}
		}

		sb.WriteByte(';')
	}

	return sb.String()
}

func (l *CSVLoader) resolve(filenames []string) (string, bool) {
	// Primeiro os nomes canônicos, na ordem declarada
	for _, dir := range l.dirs {
		for _, name := range filenames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
	}

	// Fallback insensível a maiúsculas no primeiro nível de cada diretório
	for _, dir := range l.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			for _, name := range filenames {
				if strings.EqualFold(entry.Name(), filepath.Base(name)) {
					return filepath.Join(dir, entry.Name()), true
				}
			}
		}
	}

	return "", false
}

func readCSV(path string) (domain.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.RawTable{}, errors.Wrapf(err, "falha ao abrir %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return domain.RawTable{}, errors.Wrapf(err, "falha ao ler cabeçalho de %s", path)
	}

	table := domain.RawTable{Columns: header}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.RawTable{}, errors.Wrapf(err, "falha ao ler registros de %s", path)
		}

		row := make(domain.RawRecord, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
