package domain

import "time"

// SourceCategory identifica a categoria de uma fonte de dados
type SourceCategory string

const (
	CategoryMarketing SourceCategory = "marketing"
	CategoryBusiness  SourceCategory = "business"
)

// LoadStatus representa o resultado tipado do carregamento de uma fonte.
// Permite que a camada de apresentação diferencie "arquivo ausente" de
// "arquivo presente mas corrompido" sem depender de logs
type LoadStatus string

const (
	LoadStatusLoaded    LoadStatus = "loaded"
	LoadStatusMissing   LoadStatus = "missing"
	LoadStatusMalformed LoadStatus = "malformed"
)

// SourceRole descreve uma fonte lógica de dados: qual categoria, qual canal
// (para marketing) e quais nomes de arquivo tentar, em ordem
type SourceRole struct {
	Name      string
	Channel   string
	Category  SourceCategory
	Filenames []string
}

// DefaultSourceRoles são as fontes esperadas pelo dashboard. Adicionar uma
// nova fonte de marketing é uma mudança de dados, não de código
var DefaultSourceRoles = []SourceRole{
	{
		Name:      "facebook",
		Channel:   "Facebook",
		Category:  CategoryMarketing,
		Filenames: []string{"Facebook.csv", "facebook.csv"},
	},
	{
		Name:      "google",
		Channel:   "Google",
		Category:  CategoryMarketing,
		Filenames: []string{"Google.csv", "data/Google.csv", "google.csv"},
	},
	{
		Name:      "tiktok",
		Channel:   "TikTok",
		Category:  CategoryMarketing,
		Filenames: []string{"TikTok.csv", "tiktok.csv"},
	},
	{
		Name:      "business",
		Channel:   "",
		Category:  CategoryBusiness,
		Filenames: []string{"Business.csv", "business.csv"},
	},
}

// SourceStatus descreve o resultado do carregamento de uma fonte em um refresh
type SourceStatus struct {
	Role     string     `json:"role"`
	Status   LoadStatus `json:"status"`
	Path     string     `json:"path,omitempty"`
	Rows     int        `json:"rows"`
	Size     int64      `json:"-"`
	ModTime  time.Time  `json:"-"`
	LoadedAt time.Time  `json:"loaded_at"`
}
