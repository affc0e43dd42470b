// pkg/queryparams/queryparams.go
package queryparams

// Sayfalama varsayılanları ve sınırları.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// CardFilterParams kart arama uç noktasının tanıdığı filtrelerdir.
// Tüm filtreler opsiyoneldir ve AND ile birleştirilir; tanınmayan
// parametreler sorguya hiçbir şekilde dahil edilmez.
type CardFilterParams struct {
	Name        string `query:"name"`           // isim içinde geçen metin (büyük/küçük harf duyarsız)
	Supertype   string `query:"supertype"`      // tam eşleşme
	Type        string `query:"type"`           // tam tip adı
	Subtype     string `query:"subtype"`        // tam alt tip adı
	Rarity      string `query:"rarity"`         // tam nadirlik adı
	SetName     string `query:"set_name"`       // tam set adı
	NumberInSet string `query:"number_in_set"`  // tam set numarası (örn: "1/132")
	AttackName  string `query:"attack_name"`    // herhangi bir saldırı adında geçen metin
	HPGte       *int   `query:"hp_gte"`         // hp >= değer
	HPLt        *int   `query:"hp_lt"`          // hp < değer

	Page    int `query:"page"`
	PerPage int `query:"page_size"`
}

// Validate sayfa ve sayfa boyutu değerlerini sınırlar içine çeker.
func (p *CardFilterParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 || p.PerPage > MaxPerPage {
		p.PerPage = DefaultPerPage
	}
}

// CalculateOffset mevcut sayfa için OFFSET değerini hesaplar.
func (p *CardFilterParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages toplam sayfa sayısını hesaplar (ceil).
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := totalItems / int64(perPage)
	if totalItems%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}

// PaginationMeta sayfalı cevapların üst verisidir.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// PaginatedResult sayfalı liste cevabı zarfıdır.
type PaginatedResult struct {
	Meta PaginationMeta
	Data interface{}
}
